// Package terminal provides a masked single-line input field drawn with tcell.
package terminal

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/rpgo/money-mask/pkg/mask"
)

// Field is a single-line text input. It implements binding.Surface.
type Field struct {
	mu      sync.Mutex
	id      string
	label   string
	text    []string // grapheme clusters
	caret   int
	focused bool

	// OnInput is called after every edit, outside the field lock.
	OnInput func()
	// OnFocus is called when the field gains focus.
	OnFocus func()
}

// NewField creates an unfocused, empty field.
func NewField(id, label string) *Field {
	return &Field{id: id, label: label}
}

func (f *Field) ID() string { return f.id }

func (f *Field) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.text, "")
}

func (f *Field) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = mask.Graphemes(text)
	f.caret = min(f.caret, len(f.text))
}

func (f *Field) Caret() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caret
}

func (f *Field) SetCaret(pos int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.caret = max(0, min(pos, len(f.text)))
}

func (f *Field) Focused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

// Focus gives the field focus and fires OnFocus.
func (f *Field) Focus() {
	f.mu.Lock()
	already := f.focused
	f.focused = true
	cb := f.OnFocus
	f.mu.Unlock()
	if !already && cb != nil {
		cb()
	}
}

// Blur removes focus.
func (f *Field) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = false
}

// HandleKey applies an editing key. It reports whether the key was consumed.
func (f *Field) HandleKey(ev *tcell.EventKey) bool {
	f.mu.Lock()
	edited := false
	switch ev.Key() {
	case tcell.KeyRune:
		f.insert(string(ev.Rune()))
		edited = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if f.caret > 0 {
			f.text = append(f.text[:f.caret-1], f.text[f.caret:]...)
			f.caret--
			edited = true
		}
	case tcell.KeyDelete:
		if f.caret < len(f.text) {
			f.text = append(f.text[:f.caret], f.text[f.caret+1:]...)
			edited = true
		}
	case tcell.KeyLeft:
		f.caret = max(0, f.caret-1)
	case tcell.KeyRight:
		f.caret = min(len(f.text), f.caret+1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.caret = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.caret = len(f.text)
	default:
		f.mu.Unlock()
		return false
	}
	cb := f.OnInput
	f.mu.Unlock()

	if edited && cb != nil {
		cb()
	}
	return true
}

// insert must be called with f.mu held.
func (f *Field) insert(s string) {
	gs := mask.Graphemes(s)
	text := make([]string, 0, len(f.text)+len(gs))
	text = append(text, f.text[:f.caret]...)
	text = append(text, gs...)
	text = append(text, f.text[f.caret:]...)
	f.text = text
	f.caret += len(gs)
}

// Draw renders "label text" at (x, y) and places the terminal cursor at the
// caret when the field is focused. It returns the width drawn.
func (f *Field) Draw(s tcell.Screen, x, y int, style tcell.Style) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	col := drawString(s, x, y, f.label, style.Bold(true))
	if f.label != "" {
		col = drawString(s, col, y, " ", style)
	}
	cursor := col
	for i, g := range f.text {
		if i == f.caret {
			cursor = col
		}
		col = drawString(s, col, y, g, style)
	}
	if f.caret >= len(f.text) {
		cursor = col
	}
	if f.focused {
		s.ShowCursor(cursor, y)
	}
	return col - x
}

// drawString writes s cluster by cluster and returns the next column.
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	g := uniseg.NewGraphemes(str)
	for g.Next() {
		rs := g.Runes()
		s.SetContent(x, y, rs[0], rs[1:], style)
		x += max(1, g.Width())
	}
	return x
}
