package style

import (
	"log/slog"
	"sync"
)

// ElementID returns the id of the <style> element carrying name's CSS.
func ElementID(name string) string {
	return name + "-style"
}

// Registry records the component styles injected into one document.
//
// Styles are keyed by component name and are never updated in place: once a
// name is present, further injections for it are skipped. A Registry is safe
// for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]string
	order  []string

	logger  *slog.Logger
	metrics *Metrics
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for injection events.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithMetrics records injections in m.
func WithMetrics(m *Metrics) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{styles: make(map[string]string)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Has reports whether name's style is already injected.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[name]
	return ok
}

// Inject stores css under name unless name is already present.
// It returns true when the style was stored.
func (r *Registry) Inject(name, css string) bool {
	r.mu.Lock()
	if _, ok := r.styles[name]; ok {
		r.mu.Unlock()
		r.metrics.skipped()
		return false
	}
	r.styles[name] = css
	r.order = append(r.order, name)
	n := len(r.order)
	r.mu.Unlock()

	r.metrics.injected(n)
	r.logger.Debug("style injected", "component", name, "element", ElementID(name), "bytes", len(css))
	return true
}

// Ensure compiles and injects sheet for name when name is not present yet.
// Empty sheets are never injected.
func (r *Registry) Ensure(name string, sheet Sheet) bool {
	if sheet.Empty() || r.Has(name) {
		return false
	}
	return r.Inject(name, Compile(sheet, name))
}

// Get returns the CSS injected for name.
func (r *Registry) Get(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	css, ok := r.styles[name]
	return css, ok
}

// Names returns the injected component names in injection order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of injected styles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Forget removes name so a later Inject stores fresh CSS. It is meant for
// development reloads.
func (r *Registry) Forget(name string) bool {
	r.mu.Lock()
	if _, ok := r.styles[name]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.styles, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	n := len(r.order)
	r.mu.Unlock()

	r.metrics.registered(n)
	return true
}

// Reset empties the registry, as for a fresh document.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.styles = make(map[string]string)
	r.order = nil
	r.mu.Unlock()

	r.metrics.registered(0)
}
