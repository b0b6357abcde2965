// Package strings provides string utility functions.
package strings

// Pluralize returns singular or plural form based on count.
// Example: Pluralize("file", 1) returns "file", Pluralize("file", 2) returns "files"
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
