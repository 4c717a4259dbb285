package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTemplate indicates a placeholder that cannot be substituted.
var ErrTemplate = errors.New("template error")

var placeholderPattern = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\}|)`)

// Substitute replaces $name and ${name} placeholders in tmpl with vars.
// "$$" yields a literal dollar sign. Unknown names and a "$" not starting
// a placeholder are errors.
func Substitute(tmpl string, vars map[string]string) (string, error) {
	var (
		out  strings.Builder
		last int
	)

	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(tmpl, -1) {
		out.WriteString(tmpl[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0:
			out.WriteByte('$')
		case m[4] >= 0 || m[6] >= 0:
			name := submatch(tmpl, m, 4)
			if name == "" {
				name = submatch(tmpl, m, 6)
			}
			value, ok := vars[name]
			if !ok {
				return "", fmt.Errorf("%w: unknown placeholder $%s", ErrTemplate, name)
			}
			out.WriteString(value)
		default:
			return "", fmt.Errorf("%w: invalid placeholder at offset %d", ErrTemplate, m[0])
		}
	}

	out.WriteString(tmpl[last:])
	return out.String(), nil
}

func submatch(s string, m []int, i int) string {
	if m[i] < 0 {
		return ""
	}
	return s[m[i]:m[i+1]]
}
