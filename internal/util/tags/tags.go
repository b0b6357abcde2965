// Package tags provides tag list utilities: parsing the comma-separated tag
// argument and the set operations applied to a file's tags.
package tags

import "strings"

// Mutation transforms a file's current tags into its new tags.
type Mutation func(existing []string) []string

// NormalizeTags normalizes a list of tags by trimming whitespace,
// removing empty strings, and deduplicating.
func NormalizeTags(raw []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !seen[tag] {
			seen[tag] = true
			result = append(result, tag)
		}
	}
	return result
}

// ParseCommaSeparated splits a comma-separated string into normalized tags.
func ParseCommaSeparated(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return NormalizeTags(parts)
}

// Merge appends the incoming tags that are not yet present to existing.
// The first occurrence of a tag wins, so existing keeps its order.
func Merge(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	result := make([]string, 0, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, tag := range list {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			result = append(result, tag)
		}
	}
	return result
}

// Subtract returns existing without any tag listed in toRemove.
func Subtract(existing, toRemove []string) []string {
	drop := make(map[string]bool, len(toRemove))
	for _, tag := range toRemove {
		drop[tag] = true
	}
	result := make([]string, 0, len(existing))
	for _, tag := range existing {
		if !drop[tag] {
			result = append(result, tag)
		}
	}
	return result
}

// ContainsAll reports whether every required tag is present in candidate.
// An empty required list is always satisfied.
func ContainsAll(required, candidate []string) bool {
	have := make(map[string]bool, len(candidate))
	for _, tag := range candidate {
		have[tag] = true
	}
	for _, tag := range required {
		if !have[tag] {
			return false
		}
	}
	return true
}

// AddMutation returns a Mutation merging toAdd into a file's tags.
func AddMutation(toAdd []string) Mutation {
	return func(existing []string) []string {
		return Merge(existing, toAdd)
	}
}

// RemoveMutation returns a Mutation dropping toRemove from a file's tags.
func RemoveMutation(toRemove []string) Mutation {
	return func(existing []string) []string {
		return Subtract(existing, toRemove)
	}
}
