package binding

import (
	"sync"

	"github.com/rpgo/money-mask/pkg/mask"
)

// MemorySurface is a Surface backed by a string. It is always focused, and
// it is used for scripted edits and replays.
type MemorySurface struct {
	mu    sync.Mutex
	id    string
	text  string
	caret int
}

// NewMemorySurface returns a surface holding text with the caret at caret.
func NewMemorySurface(id, text string, caret int) *MemorySurface {
	return &MemorySurface{id: id, text: text, caret: max(0, min(caret, mask.Length(text)))}
}

func (m *MemorySurface) ID() string { return m.id }

func (m *MemorySurface) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *MemorySurface) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.caret = min(m.caret, mask.Length(text))
}

func (m *MemorySurface) Caret() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.caret
}

func (m *MemorySurface) SetCaret(pos int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.caret = max(0, min(pos, mask.Length(m.text)))
}

func (m *MemorySurface) Focused() bool { return true }

// Type inserts s at the caret and moves the caret past it.
func (m *MemorySurface) Type(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gs := mask.Graphemes(m.text)
	m.text = join(gs[:m.caret]) + s + join(gs[m.caret:])
	m.caret += mask.Length(s)
}

// Backspace removes the character before the caret.
func (m *MemorySurface) Backspace() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.caret == 0 {
		return
	}
	gs := mask.Graphemes(m.text)
	m.text = join(gs[:m.caret-1]) + join(gs[m.caret:])
	m.caret--
}

func join(gs []string) string {
	n := 0
	for _, g := range gs {
		n += len(g)
	}
	b := make([]byte, 0, n)
	for _, g := range gs {
		b = append(b, g...)
	}
	return string(b)
}
