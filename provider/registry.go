package provider

import (
	"errors"
	"fmt"

	"github.com/picsan-cli/picsan/source"
	"github.com/samber/lo"
)

// Registration and lookup failures.
var (
	// ErrUnknownParser indicates a lookup for a code that was never registered.
	ErrUnknownParser = errors.New("unknown parser")

	// ErrDuplicateCode indicates an attempt to register a second parser under an
	// already-taken code. This is a programming error, fatal at startup.
	ErrDuplicateCode = errors.New("duplicate parser code")
)

// Registry owns the set of available parsers for the process lifetime.
// It is populated once during initialization and read-only afterward,
// which makes concurrent lookups safe without synchronization.
type Registry struct {
	ordered []*Provider
	byID    map[string]*Provider
}

// NewRegistry builds a registry from the given providers, preserving their order.
func NewRegistry(providers ...*Provider) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Provider, len(providers))}
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry holding all built-in providers.
func Default() *Registry {
	return lo.Must(NewRegistry(Builtins()...))
}

// Register adds a parser to the registry. Registration is only valid during
// initialization; a failed registration leaves the registry unchanged.
func (r *Registry) Register(p *Provider) error {
	if p == nil || p.ID == "" {
		return errors.New("provider must have a non-empty id")
	}
	if _, ok := r.byID[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCode, p.ID)
	}

	r.byID[p.ID] = p
	r.ordered = append(r.ordered, p)
	return nil
}

// List returns all registered providers in registration order.
func (r *Registry) List() []*Provider {
	return r.ordered
}

// Get finds a provider by its code.
func (r *Registry) Get(code string) (*Provider, bool) {
	p, ok := r.byID[code]
	return p, ok
}

// Source resolves a parser code into a ready-to-use scraping engine.
func (r *Registry) Source(code string) (source.Source, error) {
	p, ok := r.Get(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParser, code)
	}
	return p.CreateSource()
}
