package def

import "strings"

// CommentPrefix marks a comment line once leading whitespace is removed.
const CommentPrefix = "//"

// Normalize converts CRLF line endings to LF, removes every line that is a
// comment and trims surrounding whitespace from the result.
//
// Comment lines are removed entirely rather than blanked. A lone CR that is
// not part of a CRLF pair is left in place.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder

	b.Grow(len(s))

	first := true

	for line := range strings.SplitSeq(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), CommentPrefix) {
			continue
		}

		if !first {
			b.WriteByte('\n')
		}

		b.WriteString(line)

		first = false
	}

	return strings.TrimSpace(b.String())
}
