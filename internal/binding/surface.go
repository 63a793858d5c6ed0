package binding

import "errors"

// ErrNoSurface is returned when a binding is requested without an input surface.
var ErrNoSurface = errors.New("money mask requires an input surface")

// Surface is an editable single-line text field. Caret offsets are counted
// in the same units as mask.Length.
type Surface interface {
	// ID identifies the surface within a Registry.
	ID() string
	Text() string
	SetText(text string)
	Caret() int
	SetCaret(pos int)
	// Focused reports whether the surface currently owns the caret.
	Focused() bool
}
