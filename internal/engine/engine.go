// Package engine adapts Markdown renderers to a common stdin/stdout-like
// contract so the conformance runner can drive them interchangeably.
package engine

import (
	"context"
	"errors"
	"sort"
)

// Sentinel errors for engine operations.
var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrEngineFailed  = errors.New("engine failed")
	ErrEngineTimeout = errors.New("engine timed out")
)

// Engine renders Markdown to HTML.
type Engine interface {
	Name() string
	// Available reports whether the engine can run here (binary present,
	// credentials configured).
	Available(ctx context.Context) bool
	// Output renders input and returns the HTML the engine produced.
	Output(ctx context.Context, input string) (string, error)
}

// Registry maps engine names to engines.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry returns a registry holding engines, keyed by Name().
func NewRegistry(engines ...Engine) *Registry {
	r := &Registry{engines: make(map[string]Engine, len(engines))}
	for _, e := range engines {
		r.engines[e.Name()] = e
	}
	return r
}

// Get returns the engine registered under name.
func (r *Registry) Get(name string) (Engine, error) {
	e, ok := r.engines[name]
	if !ok {
		return nil, ErrUnknownEngine
	}
	return e, nil
}

// Available reports whether name is registered and usable.
func (r *Registry) Available(ctx context.Context, name string) bool {
	e, err := r.Get(name)
	if err != nil {
		return false
	}
	return e.Available(ctx)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
