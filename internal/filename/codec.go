package filename

import (
	"regexp"
	"strings"
)

// tagSuffix matches ".[<content>]" at the end of a base name. The leftmost
// ".[" wins and ".+" is greedy, so brackets inside the content are kept.
var tagSuffix = regexp.MustCompile(`\.\[(.+)]$`)

// DecodeTags extracts the tags from the suffix of baseName. A missing,
// empty or unterminated suffix yields no tags. Duplicates are not removed.
func DecodeTags(baseName string) Tags {
	matches := tagSuffix.FindStringSubmatch(baseName)
	if matches == nil {
		return Tags{}
	}
	// Fields splits on whitespace runs and never yields empty strings.
	return Tags(strings.Fields(matches[1]))
}

// EncodeTags renders tags as a suffix. The result is ".[]" for no tags.
func EncodeTags(tags Tags) string {
	return ".[" + strings.Join(tags, " ") + "]"
}
