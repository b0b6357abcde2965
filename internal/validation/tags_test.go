package validation

import (
	"strings"
	"testing"
)

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr string
	}{
		{"simple", "draft", ""},
		{"with dash", "unit-test", ""},
		{"brackets", "[x]", ""},
		{"unicode", "日本", ""},
		{"empty", "", "cannot be empty"},
		{"space", "two words", "whitespace"},
		{"tab", "a\tb", "whitespace"},
		{"slash", "a/b", "path separators"},
		{"backslash", `a\b`, "path separators"},
		{"null byte", "a\x00b", "null byte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.tag)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateTag(%q) unexpected error: %v", tt.tag, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateTag(%q) error = %v, want containing %q", tt.tag, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTags(t *testing.T) {
	if err := ValidateTags([]string{"a", "b"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTags(nil); err == nil {
		t.Error("expected error for no tags")
	}
	if err := ValidateTags([]string{"a", "b c"}); err == nil {
		t.Error("expected error for tag with whitespace")
	}
}
