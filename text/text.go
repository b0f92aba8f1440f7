package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Str converts any into a string; nil becomes the empty string.
func Str(any interface{}) string {
	if any == nil {
		return ""
	}
	switch t := any.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// FirstNotEmpty returns the first non-empty string in choices.
func FirstNotEmpty(choices ...string) string {
	for _, val := range choices {
		if val != "" {
			return val
		}
	}
	return ""
}

// ParseInt parses the integer from the text; in case of error,
// returns the default value.
func ParseInt(text string, defval int) int {
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return defval
	}
	return int(v)
}

// ParseCount parses a non-negative integer that may contain thousands
// separators, such as "12,345".
func ParseCount(text string) (int, error) {
	v, err := strconv.ParseUint(strings.Replace(text, ",", "", -1), 10, 31)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
