// Package provider manages the set of built-in album parsers and their registration.
package provider

import (
	"github.com/picsan-cli/picsan/provider/dili360"
	"github.com/picsan-cli/picsan/provider/mzt"
	"github.com/picsan-cli/picsan/source"
)

// Provider describes a registered album parser: its stable code, display name,
// and a factory for the underlying scraping engine. Descriptors are immutable
// once registered and live for the process lifetime.
type Provider struct {
	ID           string
	Name         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in providers in their canonical order.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:           dili360.ID,
			Name:         dili360.Name,
			CreateSource: func() (source.Source, error) { return dili360.New(), nil },
		},
		{
			ID:           mzt.ID,
			Name:         mzt.Name,
			CreateSource: func() (source.Source, error) { return mzt.New(), nil },
		},
	}
}
