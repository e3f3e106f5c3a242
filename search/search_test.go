package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
	. "github.com/smartystreets/goconvey/convey"
)

// mockSource is a static in-memory parser used to pin orchestration semantics.
type mockSource struct {
	id        string
	name      string
	pages     map[int][]*source.Album
	pageTotal int
	searches  int
	err       error
}

func (m *mockSource) ID() string   { return m.id }
func (m *mockSource) Name() string { return m.name }

func (m *mockSource) Search(_ context.Context, keyword string, page, size int) (*source.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.searches++
	return &source.SearchResult{Albums: m.pages[page], PageTotal: m.pageTotal}, nil
}

func (m *mockSource) Pictures(_ context.Context, ref string) ([]*source.Picture, error) {
	return nil, fmt.Errorf("%w: %s", source.ErrNotFound, ref)
}

func albums(names ...string) []*source.Album {
	out := make([]*source.Album, len(names))
	for i, name := range names {
		out[i] = &source.Album{Name: name, Ref: "ref-" + name}
	}
	return out
}

func registryWith(srcs ...*mockSource) *provider.Registry {
	var providers []*provider.Provider
	for _, src := range srcs {
		src := src
		providers = append(providers, &provider.Provider{
			ID:           src.id,
			Name:         src.name,
			CreateSource: func() (source.Source, error) { return src, nil },
		})
	}
	reg, err := provider.NewRegistry(providers...)
	So(err, ShouldBeNil)
	return reg
}

func TestExecute(t *testing.T) {
	Convey("Given a registry with a static parser", t, func() {
		src := &mockSource{
			id:        "a",
			name:      "Source A",
			pages:     map[int][]*source.Album{1: albums("x", "y", "z")},
			pageTotal: 1,
		}
		reg := registryWith(src)

		Convey("A valid query returns the parser's page and its reported total", func() {
			result, err := Execute(context.Background(), reg, Query{Parser: "a", Keyword: "cats", Page: 1, Size: 10})
			So(err, ShouldBeNil)
			So(result.Albums, ShouldHaveLength, 3)
			So(result.PageTotal, ShouldEqual, 1)
		})

		Convey("Identical queries return identical results", func() {
			q := Query{Parser: "a", Keyword: "cats", Page: 1, Size: 10}
			first, err := Execute(context.Background(), reg, q)
			So(err, ShouldBeNil)
			second, err := Execute(context.Background(), reg, q)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})

		Convey("Every call dispatches to the parser, no caching in between", func() {
			q := Query{Parser: "a", Keyword: "cats", Page: 1, Size: 10}
			_, _ = Execute(context.Background(), reg, q)
			_, _ = Execute(context.Background(), reg, q)
			So(src.searches, ShouldEqual, 2)
		})

		Convey("Albums are clamped to the requested size, PageTotal untouched", func() {
			result, err := Execute(context.Background(), reg, Query{Parser: "a", Keyword: "cats", Page: 1, Size: 2})
			So(err, ShouldBeNil)
			So(result.Albums, ShouldHaveLength, 2)
			So(result.PageTotal, ShouldEqual, 1)
		})

		Convey("A page past the data yields an empty album list, not an error", func() {
			result, err := Execute(context.Background(), reg, Query{Parser: "a", Keyword: "cats", Page: 5, Size: 10})
			So(err, ShouldBeNil)
			So(result.Albums, ShouldHaveLength, 0)
		})

		Convey("Page below 1 fails with an invalid query", func() {
			_, err := Execute(context.Background(), reg, Query{Parser: "a", Keyword: "cats", Page: 0, Size: 10})
			So(errors.Is(err, source.ErrInvalidQuery), ShouldBeTrue)
		})

		Convey("Size below 1 fails with an invalid query", func() {
			_, err := Execute(context.Background(), reg, Query{Parser: "a", Keyword: "cats", Page: 1, Size: 0})
			So(errors.Is(err, source.ErrInvalidQuery), ShouldBeTrue)
		})

		Convey("An unknown parser code propagates from the registry", func() {
			_, err := Execute(context.Background(), reg, Query{Parser: "nope", Keyword: "cats", Page: 1, Size: 10})
			So(errors.Is(err, provider.ErrUnknownParser), ShouldBeTrue)
		})
	})

	Convey("Given a parser whose upstream is down", t, func() {
		src := &mockSource{id: "a", name: "Source A", err: fmt.Errorf("%w: dial tcp", source.ErrSourceUnavailable)}
		reg := registryWith(src)

		Convey("The failure surfaces as SourceUnavailable, never as an empty success", func() {
			_, err := Execute(context.Background(), reg, Query{Parser: "a", Keyword: "cats", Page: 1, Size: 10})
			So(errors.Is(err, source.ErrSourceUnavailable), ShouldBeTrue)
		})
	})
}
