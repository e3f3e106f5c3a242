package search

import (
	"context"
	"fmt"

	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/util"
	"github.com/spf13/viper"
)

// Pager is a stateful pagination cursor over one keyword search against one
// parser. It belongs to the interactive client side of the application: the
// core stays stateless, all "load more" state lives here.
//
// Fetched pages are kept in a local cache so stepping back never re-hits the
// source. Not safe for concurrent use.
type Pager struct {
	src     source.Source
	keyword string
	size    int

	page      int
	pageTotal int

	pages map[int][]*source.Album
}

// NewPager creates a cursor for the given source and keyword.
// A non-positive size falls back to the configured default.
func NewPager(src source.Source, keyword string, size int) *Pager {
	if size < 1 {
		size = viper.GetInt(key.SearchDefaultSize)
	}
	if size < 1 {
		size = 10
	}

	return &Pager{
		src:     src,
		keyword: keyword,
		size:    size,
		pages:   make(map[int][]*source.Album),
	}
}

// Page returns the current 1-based page, 0 before the first fetch.
func (p *Pager) Page() int {
	return p.page
}

// PageTotal returns the highest page count reported by the source so far.
// Live catalogs may grow between calls; the value only ever widens.
func (p *Pager) PageTotal() int {
	return p.pageTotal
}

// Keyword returns the keyword this cursor iterates over.
func (p *Pager) Keyword() string {
	return p.keyword
}

// Current returns the albums of the current page, fetching it on first use.
func (p *Pager) Current(ctx context.Context) ([]*source.Album, error) {
	if p.page == 0 {
		p.page = 1
	}
	return p.fetch(ctx)
}

// Next advances to the following page, staying on the last known page at the end.
func (p *Pager) Next(ctx context.Context) ([]*source.Album, error) {
	switch {
	case p.page == 0:
		p.page = 1
	case p.page < p.pageTotal:
		p.page++
	}
	return p.fetch(ctx)
}

// Prev steps back one page, staying on the first.
func (p *Pager) Prev(ctx context.Context) ([]*source.Album, error) {
	if p.page > 1 {
		p.page--
	} else {
		p.page = 1
	}
	return p.fetch(ctx)
}

// First jumps to the first page.
func (p *Pager) First(ctx context.Context) ([]*source.Album, error) {
	p.page = 1
	return p.fetch(ctx)
}

// Last jumps to the last known page, probing the source first when the page
// count is not yet known.
func (p *Pager) Last(ctx context.Context) ([]*source.Album, error) {
	if p.pageTotal == 0 {
		if _, err := p.First(ctx); err != nil {
			return nil, err
		}
	}

	p.page = util.Max(p.pageTotal, 1)
	return p.fetch(ctx)
}

// Jump moves to an arbitrary page, clamped to the known page range.
func (p *Pager) Jump(ctx context.Context, page int) ([]*source.Album, error) {
	page = util.Max(page, 1)
	if p.pageTotal > 0 {
		page = util.Min(page, p.pageTotal)
	}

	p.page = page
	return p.fetch(ctx)
}

// Album returns the 1-based idx-th album of the current cached page.
func (p *Pager) Album(idx int) (*source.Album, error) {
	albums, ok := p.pages[p.page]
	if !ok {
		return nil, fmt.Errorf("current page has no data")
	}
	if idx < 1 || idx > len(albums) {
		return nil, fmt.Errorf("album index out of range: %d (page has %s)", idx, util.Quantify(len(albums), "album", "albums"))
	}
	return albums[idx-1], nil
}

func (p *Pager) fetch(ctx context.Context) ([]*source.Album, error) {
	if albums, ok := p.pages[p.page]; ok {
		return albums, nil
	}

	result, err := p.src.Search(ctx, p.keyword, p.page, p.size)
	if err != nil {
		return nil, err
	}
	clamp(result, p.size)

	// Some sources only reveal their real page count deeper into the
	// pagination; keep the widest value observed.
	p.pageTotal = util.Max(p.pageTotal, result.PageTotal)

	p.pages[p.page] = result.Albums
	return result.Albums, nil
}
