package utils

import (
	"strconv"
	"strings"
)

// DimsToString renders dimensions as a parenthesized tuple, e.g. "(2, 3)".
// Scalars render as "()". Negative dimensions mean "size not statically
// known" and render as "?".
func DimsToString(dims []int) string {
	var b strings.Builder
	b.Grow(2 + 4*len(dims))
	b.WriteByte('(')
	for i, d := range dims {
		if i > 0 {
			b.WriteString(", ")
		}
		if d < 0 {
			b.WriteByte('?')
		} else {
			b.WriteString(strconv.Itoa(d))
		}
	}
	b.WriteByte(')')
	return b.String()
}
