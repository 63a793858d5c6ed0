package binding

import (
	"fmt"
	"sync"
	"time"

	"github.com/rpgo/money-mask/pkg/mask"
)

// DefaultReassertDelay is how long after an edit the caret is placed again.
// Some input surfaces reset the caret right after their text changes.
const DefaultReassertDelay = time.Millisecond

// Change is delivered to the change handler after every edit.
type Change struct {
	Text   string
	Value  float64
	Masked bool
}

// Model returns what consumers of the field see: the masked text when the
// binding is configured as masked, the number otherwise.
func (c Change) Model() any {
	if c.Masked {
		return c.Text
	}
	return c.Value
}

// Option customizes a Binding.
type Option func(*Binding)

// WithChangeHandler registers fn to be called after every edit.
func WithChangeHandler(fn func(Change)) Option {
	return func(b *Binding) { b.onChange = fn }
}

// WithLogger sets the binding logger.
func WithLogger(l Logger) Option {
	return func(b *Binding) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithReassertDelay sets the caret re-assert delay; zero disables it.
func WithReassertDelay(d time.Duration) Option {
	return func(b *Binding) { b.reassert = d }
}

// Binding keeps a Surface masked while it is edited. Surfaces call Input
// after every edit and Focus when they gain focus.
type Binding struct {
	mu       sync.Mutex
	surface  Surface
	cfg      mask.Config
	onChange func(Change)
	logger   Logger
	reassert time.Duration
	timer    *time.Timer
	closed   bool
	release  func(*Binding)
}

// Bind attaches cfg to surface, formats its current text and emits the
// initial change.
func Bind(surface Surface, cfg mask.Config, opts ...Option) (*Binding, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	b := &Binding{
		surface:  surface,
		cfg:      cfg,
		logger:   NopLogger{},
		reassert: DefaultReassertDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger.Debugf("binding %s: precision=%d prefix=%q suffix=%q", surface.ID(), cfg.Precision, cfg.Prefix, cfg.Suffix)
	b.Input()
	return b, nil
}

// Config returns the active configuration.
func (b *Binding) Config() mask.Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// Update replaces the configuration used by subsequent edits.
func (b *Binding) Update(cfg mask.Config) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = cfg
}

// Input reformats the surface text after an edit and repositions the caret.
func (b *Binding) Input() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	cfg := b.cfg
	raw := b.surface.Text()
	rawLen := mask.Length(raw)
	fromEnd := rawLen - b.surface.Caret()

	text := mask.Format(raw, cfg)
	b.surface.SetText(text)
	pos := mask.NextCaretOffset(rawLen, fromEnd, mask.Length(text), cfg)
	b.placeCaret(pos)
	b.mu.Unlock()

	b.emit(text, cfg)
}

// Focus moves the caret just before the suffix.
func (b *Binding) Focus() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.placeCaret(mask.FocusCaretOffset(mask.Length(b.surface.Text()), b.cfg))
}

// SetValue shows v in the surface. Nothing is emitted, and the text is left
// alone when it already shows v.
func (b *Binding) SetValue(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	text := mask.FormatFloat(v, b.cfg)
	if text != b.surface.Text() {
		b.surface.SetText(text)
	}
}

// Value returns the number currently shown.
func (b *Binding) Value() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return mask.Unformat(b.surface.Text(), b.cfg.Precision)
}

// Close detaches the binding from its surface. It is safe to call more than once.
func (b *Binding) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	release := b.release
	b.mu.Unlock()

	if release != nil {
		release(b)
	}
	b.logger.Debugf("binding %s: closed", b.surface.ID())
	return nil
}

func (b *Binding) String() string {
	return fmt.Sprintf("binding(%s)", b.surface.ID())
}

// placeCaret must be called with b.mu held.
func (b *Binding) placeCaret(pos int) {
	if !b.surface.Focused() {
		return
	}
	b.surface.SetCaret(pos)
	if b.reassert <= 0 {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.reassert, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if !b.closed && b.surface.Focused() {
			b.surface.SetCaret(pos)
		}
	})
}

func (b *Binding) emit(text string, cfg mask.Config) {
	if b.onChange == nil {
		return
	}
	b.onChange(Change{
		Text:   text,
		Value:  mask.Unformat(text, cfg.Precision),
		Masked: cfg.Masked,
	})
}
