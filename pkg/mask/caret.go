package mask

import "github.com/rivo/uniseg"

// Length counts user-perceived characters in s. Caret offsets in this
// package are expressed in the same unit.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// NextCaretOffset places the caret in the reformatted text. rawLen is the
// length of the text before formatting and caretFromEnd the number of
// characters that followed the caret in it. The caret keeps its distance
// from the end, never enters the suffix, and never sits before the first
// character after the prefix.
func NextCaretOffset(rawLen, caretFromEnd, formattedLen int, cfg Config) int {
	caretFromEnd = max(0, min(caretFromEnd, rawLen))
	fromEnd := max(caretFromEnd, Length(cfg.Suffix))
	pos := max(formattedLen-fromEnd, Length(cfg.Prefix)+1)
	return max(0, min(pos, formattedLen))
}

// FocusCaretOffset is where the caret goes when the field gains focus
// without an edit: just before the suffix.
func FocusCaretOffset(formattedLen int, cfg Config) int {
	return max(0, formattedLen-Length(cfg.Suffix))
}
