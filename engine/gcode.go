package engine

import (
	"fmt"
	"strconv"
)

// canonicalGCode normalises a G/M-word to a leading-zero-free form ("G01"
// and "G1" compare equal) without touching the parser's own output, which
// the external contract requires to preserve the source's leading-zero
// spelling.
func canonicalGCode(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	letter := raw[0]
	if letter != 'G' && letter != 'M' {
		return raw
	}
	n, err := strconv.Atoi(raw[1:])
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%c%d", letter, n)
}
