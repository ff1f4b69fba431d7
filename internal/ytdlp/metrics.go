package ytdlp

import (
	"fmt"
	"strconv"
)

// Abbrev formats a raw count compactly: values under a thousand print as
// is, under a million with a K suffix, above with an M suffix, both with
// one decimal. The thousands boundary rounds up, so 999999 prints as
// "1000.0K".
func Abbrev(n int) string {
	switch {
	case n < 1000:
		return strconv.Itoa(n)
	case n < 1000000:
		return fmt.Sprintf("%.1fK", float64(n)/1000.0)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1000000.0)
	}
}

// AbbrevString parses a raw numeric string and abbreviates it. Inputs that
// do not parse are returned untouched.
func AbbrevString(raw string) string {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return Abbrev(n)
}
