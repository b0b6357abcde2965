package localfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJunkMatcherDefaults(t *testing.T) {
	m, err := NewJunkMatcher(JunkOptions{})
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{".DS_Store", true},
		{"/Users/kyusu/photos/.DS_Store", true},
		{"Thumbs.db", true},
		{"Desktop.ini", true},
		{"._report.pdf", true},
		{"notes.txt~", true},
		{".notes.txt.swp", true},
		{"__MACOSX", true},
		{"Icon\r", true},
		{"share/@eaDir", true},
		{"npm-debug.log", true},
		{"report.pdf", false},
		{"helper.test.[test unit-test jest].js", false},
		{".bashrc", false},
		{"Icon", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsJunk(tt.path))
		})
	}
}

func TestJunkMatcherOptions(t *testing.T) {
	t.Run("extra patterns", func(t *testing.T) {
		m, err := NewJunkMatcher(JunkOptions{Patterns: []string{"*.tmp", "~$*"}})
		require.NoError(t, err)

		assert.True(t, m.IsJunk("build/out.tmp"))
		assert.True(t, m.IsJunk("~$budget.xlsx"))
		assert.False(t, m.IsJunk("budget.xlsx"))
	})

	t.Run("skip hidden", func(t *testing.T) {
		m, err := NewJunkMatcher(JunkOptions{SkipHidden: true})
		require.NoError(t, err)

		assert.True(t, m.IsJunk(".bashrc"))
		assert.False(t, m.IsJunk("bashrc"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewJunkMatcher(JunkOptions{Patterns: []string{"[unclosed"}})
		assert.ErrorContains(t, err, "[unclosed")
	})
}
