package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompile_NoFlags(t *testing.T) {
	re, err := Compile(`^regex.*-test$`, "")
	require.NoError(t, err)
	require.True(t, re.MatchString("regex-pattern-test"))
	require.False(t, re.MatchString("REGEX-PATTERN-TEST"))
}

func TestCompile_CaseInsensitive(t *testing.T) {
	re, err := Compile(`^regex.*-test$`, "i")
	require.NoError(t, err)
	require.True(t, re.MatchString("REGEX-PATTERN-TEST"))
}

func TestCompile_IgnoredFlags(t *testing.T) {
	re, err := Compile(`^feature/`, "gu")
	require.NoError(t, err)
	require.True(t, re.MatchString("feature/x"))
}

func TestCompile_Sticky(t *testing.T) {
	re, err := Compile(`feature`, "y")
	require.NoError(t, err)
	require.True(t, re.MatchString("feature/x"))
	require.False(t, re.MatchString("my-feature"))
}

func TestCompile_StickyWithMultiline(t *testing.T) {
	re, err := Compile(`^b`, "my")
	require.NoError(t, err)
	require.False(t, re.MatchString("a\nb"))
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		flags string
		want  string
	}{
		{"invalid pattern", "[", "", "invalid regex"},
		{"unknown flag", "a", "x", "unknown regex flag"},
		{"duplicate flag", "a", "ii", "duplicate regex flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr, tt.flags)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
