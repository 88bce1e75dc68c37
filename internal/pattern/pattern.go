// Package pattern compiles branch-name regular expressions written with
// ECMAScript-style flag strings (e.g. "i", "ms") into RE2 expressions.
package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile compiles expr with the given flags.
//
// Supported flags:
//   - i, m, s map to the RE2 inline flags of the same name
//   - y anchors the match at the start of the branch name
//   - g, u, d and v are accepted and have no effect on a single match
//
// Unknown or repeated flags are an error.
func Compile(expr, flags string) (*regexp.Regexp, error) {
	var inline strings.Builder
	sticky := false
	seen := make(map[rune]bool, len(flags))

	for _, f := range flags {
		if seen[f] {
			return nil, fmt.Errorf("duplicate regex flag %q in %q", f, flags)
		}
		seen[f] = true

		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'y':
			sticky = true
		case 'g', 'u', 'd', 'v':
		default:
			return nil, fmt.Errorf("unknown regex flag %q in %q", f, flags)
		}
	}

	src := expr
	if sticky {
		src = `\A(?:` + src + `)`
	}
	if inline.Len() > 0 {
		src = "(?" + inline.String() + ")" + src
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", expr, err)
	}
	return re, nil
}
