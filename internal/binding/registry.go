package binding

import (
	"sync"

	"github.com/rpgo/money-mask/pkg/mask"
)

// Registry tracks the live binding of each surface by surface ID.
type Registry struct {
	mu       sync.Mutex
	base     mask.Config
	bindings map[string]*Binding
	logger   Logger
}

// Install creates a Registry whose base configuration is the defaults with
// global applied on top.
func Install(global *mask.Options) *Registry {
	return NewRegistry(mask.Merge(mask.DefaultConfig(), global), NopLogger{})
}

// NewRegistry creates a Registry with the given base configuration.
func NewRegistry(base mask.Config, logger Logger) *Registry {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Registry{
		base:     base,
		bindings: make(map[string]*Binding),
		logger:   logger,
	}
}

// SetLogger replaces the logger used for new bindings.
func (r *Registry) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	r.mu.Lock()
	r.logger = l
	r.mu.Unlock()
}

// Base returns the registry base configuration.
func (r *Registry) Base() mask.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.base
}

// Bind binds surface with the base configuration overridden by opts.
// A surface that is already bound has its previous binding closed first.
func (r *Registry) Bind(surface Surface, opts *mask.Options, bopts ...Option) (*Binding, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	r.mu.Lock()
	cfg := mask.Merge(r.base, opts)
	logger := r.logger
	prev := r.bindings[surface.ID()]
	r.mu.Unlock()

	if prev != nil {
		logger.Warnf("%s already bound, replacing", prev)
		_ = prev.Close()
	}

	b, err := Bind(surface, cfg, append([]Option{WithLogger(logger)}, bopts...)...)
	if err != nil {
		return nil, err
	}
	b.release = r.remove

	r.mu.Lock()
	r.bindings[surface.ID()] = b
	r.mu.Unlock()
	return b, nil
}

// Lookup returns the binding for a surface ID.
func (r *Registry) Lookup(id string) (*Binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bindings[id]
	return b, ok
}

// Update changes the configuration of a bound surface. It reports whether
// the surface was bound.
func (r *Registry) Update(id string, opts *mask.Options) bool {
	b, ok := r.Lookup(id)
	if !ok {
		return false
	}
	b.Update(mask.Merge(r.Base(), opts))
	return true
}

// Unbind closes the binding for a surface ID, if any.
func (r *Registry) Unbind(id string) {
	if b, ok := r.Lookup(id); ok {
		_ = b.Close()
	}
}

// Len returns the number of live bindings.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings)
}

// Close closes every binding.
func (r *Registry) Close() {
	r.mu.Lock()
	all := make([]*Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		all = append(all, b)
	}
	r.mu.Unlock()
	for _, b := range all {
		_ = b.Close()
	}
}

func (r *Registry) remove(b *Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.bindings[b.surface.ID()]; ok && cur == b {
		delete(r.bindings, b.surface.ID())
	}
}
