// Package validation provides input validation utilities for tagsfn.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateTag checks that a tag can be written into a file name and read
// back as the same single tag.
//
// Returns an error if the tag:
//   - Is empty
//   - Contains whitespace (it would be read back as several tags)
//   - Contains path separators (/ or \)
//   - Contains null bytes
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}

	if strings.ContainsRune(tag, 0) {
		return fmt.Errorf("tag contains null byte: %q", tag)
	}

	if strings.IndexFunc(tag, unicode.IsSpace) >= 0 {
		return fmt.Errorf("tag cannot contain whitespace: %q", tag)
	}

	// Reject path separators (both Unix and Windows style)
	if strings.ContainsRune(tag, '/') || strings.ContainsRune(tag, '\\') {
		return fmt.Errorf("tag cannot contain path separators: %q", tag)
	}

	return nil
}

// ValidateTags runs ValidateTag on every tag and returns the first error.
func ValidateTags(tags []string) error {
	if len(tags) == 0 {
		return fmt.Errorf("no tags given")
	}
	for _, tag := range tags {
		if err := ValidateTag(tag); err != nil {
			return err
		}
	}
	return nil
}
