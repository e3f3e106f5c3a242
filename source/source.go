// Package source defines the domain models and interfaces for album discovery and picture retrieval.
package source

import "context"

// Source defines the required capabilities of an album parser: an adapter that
// encapsulates access to exactly one external album catalog.
type Source interface {
	// ID returns the stable, unique code identifying the parser.
	ID() string

	// Name returns the human-readable label of the parser.
	Name() string

	// Search executes a keyword query against the catalog and returns one page of albums
	// together with the total page count as reported by the source. Albums arrive in the
	// source's natural relevance order; page 1 is the first page.
	Search(ctx context.Context, keyword string, page, size int) (*SearchResult, error)

	// Pictures resolves an album reference into its ordered picture list.
	// A valid album with no pictures yields an empty slice, not an error.
	Pictures(ctx context.Context, ref string) ([]*Picture, error)
}

// SearchResult is one page of a keyword search.
type SearchResult struct {
	Albums []*Album `json:"albums"`

	// PageTotal is the source's own reported total page count for the query.
	// It is passed through untouched; live catalogs may report different
	// values across calls.
	PageTotal int `json:"page_total"`
}
