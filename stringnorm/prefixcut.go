package stringnorm

import "strings"

// A PrefixCut truncates text at the first occurrence of Sep, keeping only
// the text before it. Text without Sep is returned unmodified.
type PrefixCut struct {
	Sep string
}

// Normalize returns the part of text before the first p.Sep.
func (p PrefixCut) Normalize(text string) (string, error) {
	if i := strings.Index(text, p.Sep); i >= 0 {
		return text[:i], nil
	}
	return text, nil
}
