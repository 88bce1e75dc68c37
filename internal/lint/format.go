package lint

import (
	"encoding/json"
	"strings"
)

// Format fills a message template with args. Each %s, %d, %i, %f, %j, %o
// or %O verb consumes the next argument (%j quotes it as JSON), %c consumes
// one and prints nothing, and %% is a literal percent. A verb with no
// argument left is kept as written. Arguments that no verb consumed are
// appended, separated by spaces.
func Format(template string, args ...string) string {
	var b strings.Builder
	b.Grow(len(template))

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}

		verb := template[i+1]
		switch verb {
		case '%':
			b.WriteByte('%')
			i++
		case 's', 'd', 'i', 'f', 'j', 'o', 'O', 'c':
			if next >= len(args) {
				b.WriteByte('%')
				b.WriteByte(verb)
				i++
				continue
			}
			arg := args[next]
			next++
			i++
			switch verb {
			case 'c':
			case 'j':
				quoted, _ := json.Marshal(arg)
				b.Write(quoted)
			default:
				b.WriteString(arg)
			}
		default:
			b.WriteByte(c)
		}
	}

	for _, arg := range args[next:] {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	return b.String()
}
