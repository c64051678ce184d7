package models

import "regexp"

// blankPattern matches {...} placeholders non-greedily; a placeholder
// must contain at least one character, so "{}" is plain text.
var blankPattern = regexp.MustCompile(`\{(.+?)\}`)

// DeriveBlanks extracts placeholder contents from a cloze sentence in
// left-to-right order. A sentence without placeholders yields an empty
// (non-nil) slice.
func DeriveBlanks(sentence string) []string {
	matches := blankPattern.FindAllStringSubmatch(sentence, -1)
	blanks := make([]string, 0, len(matches))
	for _, m := range matches {
		blanks = append(blanks, m[1])
	}
	return blanks
}

// SplitSentence splits a cloze sentence into alternating literal and
// placeholder segments. For n placeholders the result always has 2n+1
// entries: even indices are literal text (possibly empty), odd indices
// are placeholder contents. Odd indices are the fillable slots and
// serve as the answer keys for cloze responses.
func SplitSentence(sentence string) []string {
	locs := blankPattern.FindAllStringSubmatchIndex(sentence, -1)
	parts := make([]string, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		parts = append(parts, sentence[last:loc[0]])
		parts = append(parts, sentence[loc[2]:loc[3]])
		last = loc[1]
	}
	parts = append(parts, sentence[last:])
	return parts
}

// IsSlotIndex reports whether i addresses a fillable slot in the split
// produced by SplitSentence.
func IsSlotIndex(parts []string, i int) bool {
	return i > 0 && i < len(parts) && i%2 == 1
}
