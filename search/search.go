// Package search implements keyword search orchestration over the parser registry.
package search

import (
	"context"
	"fmt"

	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
)

// Query is a caller-supplied search request, validated before dispatch.
type Query struct {
	// Parser is the code of the parser to dispatch to.
	Parser string `json:"parser"`
	// Keyword to search albums for.
	Keyword string `json:"keyword"`
	// Page is the 1-based page to fetch.
	Page int `json:"page"`
	// Size is the maximum number of albums per page.
	Size int `json:"size"`
}

// Validate checks the pagination window of the query.
func (q Query) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", source.ErrInvalidQuery, q.Page)
	}
	if q.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", source.ErrInvalidQuery, q.Size)
	}
	return nil
}

// Execute validates the query, dispatches it to the resolved parser and
// normalizes the page. Every call is freshly dispatched: sources are live,
// so results are never cached here.
//
// Termination is the caller's contract: stop paginating once the album list
// comes back empty or the requested page equals the reported PageTotal.
func Execute(ctx context.Context, registry *provider.Registry, q Query) (*source.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	src, err := registry.Source(q.Parser)
	if err != nil {
		return nil, err
	}

	result, err := src.Search(ctx, q.Keyword, q.Page, q.Size)
	if err != nil {
		return nil, err
	}

	clamp(result, q.Size)

	log.Infof("search %q via %s: page %d/%d, %d albums", q.Keyword, q.Parser, q.Page, result.PageTotal, len(result.Albums))
	return result, nil
}

// clamp trims the album window to the requested size. PageTotal stays
// exactly as the parser reported it.
func clamp(result *source.SearchResult, size int) {
	if len(result.Albums) > size {
		result.Albums = result.Albums[:size]
	}
}
