package namegen

import "unicode"

// fold lower-cases s one rune at a time. Multi-rune and locale-specific
// case mappings are deliberately not applied.
func fold(s string) []rune {
	chars := []rune(s)
	for i, r := range chars {
		chars[i] = unicode.ToLower(r)
	}
	return chars
}

// windowContinuations returns the growing runs that follow chars[anchor]:
// chars[anchor+1:anchor+2], chars[anchor+1:anchor+3], ... up to maxChunkSize
// runes. The run that reaches the end of chars is returned End-marked and
// stops the growth. An anchor of -1 yields the leading runs of chars.
func windowContinuations(chars []rune, anchor, maxChunkSize int) []string {
	n := len(chars)
	out := make([]string, 0, maxChunkSize)
	for length := 1; length <= maxChunkSize; length++ {
		reach := anchor + length
		switch {
		case reach < n:
			out = append(out, string(chars[anchor+1:reach+1]))
		case reach == n:
			return append(out, string(chars[anchor+1:n])+End)
		default:
			return out
		}
	}
	return out
}

// Fold lower-cases s the same way Build folds training examples.
func Fold(s string) string {
	return string(fold(s))
}
