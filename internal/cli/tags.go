package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyusu/tagsfn/internal/localfs"
	"github.com/kyusu/tagsfn/internal/tagger"
	stringutil "github.com/kyusu/tagsfn/internal/util/strings"
	"github.com/kyusu/tagsfn/internal/util/tags"
	"github.com/kyusu/tagsfn/internal/validation"
)

// newTagger builds a Tagger from the loaded configuration.
func newTagger() (*tagger.Tagger, error) {
	c := GetConfig()
	junk, err := localfs.NewJunkMatcher(c.JunkOptions())
	if err != nil {
		return nil, err
	}
	return tagger.New(localfs.NewOSProber(c.ProbeOptions()), junk, GetLogger()), nil
}

// newAddCmd creates the 'add' command.
func newAddCmd() *cobra.Command {
	return newChangeCmd(changeCmdDef{
		use:   "add <tags>",
		short: "Add tags to the files read from standard input",
		long: `Add comma-separated tags to every file whose path is read from standard input.

Tags already present are kept in place; new tags are appended in the given
order. Each processed path prints one line: the new base name, or a notice
explaining why the file was not renamed.

Examples:
  # Tag a single file
  echo report.pdf | tagsfn add draft,q3

  # Tag every PDF below the current directory
  find . -name '*.pdf' | tagsfn add archive

  # Preview the new names
  ls | tagsfn add todo --dry-run`,
		validate: validation.ValidateTags,
		mutation: tags.AddMutation,
	})
}

// newRemoveCmd creates the 'remove' command.
func newRemoveCmd() *cobra.Command {
	return newChangeCmd(changeCmdDef{
		use:   "remove <tags>",
		short: "Remove tags from the files read from standard input",
		long: `Remove comma-separated tags from every file whose path is read from standard input.

Tags a file does not carry are ignored. Removing the last tag drops the
bracketed suffix entirely.

Examples:
  ls | tagsfn remove draft
  find . -name '*.[*draft*]*' | tagsfn remove draft,wip`,
		validate: func(list []string) error {
			if len(list) == 0 {
				return fmt.Errorf("no tags given")
			}
			return nil
		},
		mutation: tags.RemoveMutation,
	})
}

type changeCmdDef struct {
	use      string
	short    string
	long     string
	validate func([]string) error
	mutation func([]string) tags.Mutation
}

func newChangeCmd(def changeCmdDef) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Long:  def.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := tags.ParseCommaSeparated(args[0])
			if err := def.validate(list); err != nil {
				return err
			}

			tg, err := newTagger()
			if err != nil {
				return err
			}

			warnIfInteractive(cmd.InOrStdin(), GetLogger())
			mutate := def.mutation(list)
			var stats tagger.RunStats

			err = forEachPath(GetContext(cmd), cmd.InOrStdin(), func(path string) {
				result := tg.Change(mutate, path)
				stats.Record(result)
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			})

			if summary {
				fmt.Fprintln(cmd.ErrOrStderr(), changeSummary(stats, GetConfig().DryRun))
			}
			return err
		},
	}

	cmd.Flags().Bool("dry-run", false, "Print the new names without renaming anything")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a summary to standard error when done")

	return cmd
}

func changeSummary(s tagger.RunStats, dryRun bool) string {
	verb := "renamed"
	if dryRun {
		verb = "would be renamed"
	}
	return fmt.Sprintf("%d %s %s, %d skipped, %d failed",
		s.Renamed, stringutil.Pluralize("file", s.Renamed), verb, s.Skipped, s.Failed)
}

// newFilterCmd creates the 'filter' command.
func newFilterCmd() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "filter <tags>",
		Short: "Print the paths of files carrying all given tags",
		Long: `Read file paths from standard input and print those whose file name carries
every one of the comma-separated tags. Missing files, directories and junk
files never match.

Examples:
  ls | tagsfn filter q3
  find ~/Documents -type f | tagsfn filter tax,2024 | xargs -I{} cp {} /tmp/tax`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			required := tags.ParseCommaSeparated(args[0])

			tg, err := newTagger()
			if err != nil {
				return err
			}

			warnIfInteractive(cmd.InOrStdin(), GetLogger())
			var stats tagger.RunStats

			err = forEachPath(GetContext(cmd), cmd.InOrStdin(), func(path string) {
				matched := tg.SatisfiesFilter(required, path)
				stats.RecordMatch(matched)
				if matched {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			})

			if summary {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d %s matched\n",
					stats.Matched, stats.Total, stringutil.Pluralize("path", stats.Total))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Print a summary to standard error when done")

	return cmd
}

// newShowCmd creates the 'show' command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the tags of the files read from standard input",
		Long: `Read file paths from standard input and print each file's tags, separated
from the path by a tab. Paths that are missing, directories or junk files are
skipped.

Example:
  ls | tagsfn show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tg, err := newTagger()
			if err != nil {
				return err
			}

			warnIfInteractive(cmd.InOrStdin(), GetLogger())

			return forEachPath(GetContext(cmd), cmd.InOrStdin(), func(path string) {
				info, err := tg.Describe(path)
				if err != nil {
					GetLogger().Debug().Str("path", path).Err(err).Msg("Skipping")
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, strings.Join(info.Tags, " "))
			})
		},
	}
}
