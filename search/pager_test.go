package search

import (
	"context"
	"testing"

	"github.com/picsan-cli/picsan/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPager(t *testing.T) {
	ctx := context.Background()

	newSource := func() *mockSource {
		return &mockSource{
			id:   "a",
			name: "Source A",
			pages: map[int][]*source.Album{
				1: albums("a1", "a2"),
				2: albums("b1", "b2"),
				3: albums("c1"),
			},
			pageTotal: 3,
		}
	}

	Convey("Given a fresh pager", t, func() {
		src := newSource()
		p := NewPager(src, "cats", 10)

		Convey("It starts before the first page", func() {
			So(p.Page(), ShouldEqual, 0)
			So(p.PageTotal(), ShouldEqual, 0)
		})

		Convey("Next lands on page 1 and learns the page count", func() {
			albums, err := p.Next(ctx)
			So(err, ShouldBeNil)
			So(albums, ShouldHaveLength, 2)
			So(p.Page(), ShouldEqual, 1)
			So(p.PageTotal(), ShouldEqual, 3)

			Convey("Then Next walks forward and stops at the last page", func() {
				_, _ = p.Next(ctx)
				So(p.Page(), ShouldEqual, 2)

				_, _ = p.Next(ctx)
				So(p.Page(), ShouldEqual, 3)

				albums, err := p.Next(ctx)
				So(err, ShouldBeNil)
				So(p.Page(), ShouldEqual, 3)
				So(albums, ShouldHaveLength, 1)
			})
		})

		Convey("Prev from the start stays on page 1", func() {
			_, err := p.Prev(ctx)
			So(err, ShouldBeNil)
			So(p.Page(), ShouldEqual, 1)
		})

		Convey("Last probes the source before jumping when the count is unknown", func() {
			albums, err := p.Last(ctx)
			So(err, ShouldBeNil)
			So(p.Page(), ShouldEqual, 3)
			So(albums, ShouldHaveLength, 1)
		})

		Convey("Jump clamps into the known page range", func() {
			_, _ = p.Current(ctx)

			_, err := p.Jump(ctx, 99)
			So(err, ShouldBeNil)
			So(p.Page(), ShouldEqual, 3)

			_, err = p.Jump(ctx, -4)
			So(err, ShouldBeNil)
			So(p.Page(), ShouldEqual, 1)
		})

		Convey("Revisited pages come from the cache", func() {
			_, _ = p.Next(ctx)
			_, _ = p.Next(ctx)
			_, _ = p.Prev(ctx)
			So(src.searches, ShouldEqual, 2)
		})

		Convey("Album returns 1-based entries of the current page", func() {
			_, _ = p.Current(ctx)

			album, err := p.Album(2)
			So(err, ShouldBeNil)
			So(album.Name, ShouldEqual, "a2")

			_, err = p.Album(0)
			So(err, ShouldNotBeNil)
			_, err = p.Album(3)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a source that widens its page count while paginating", t, func() {
		src := newSource()
		p := NewPager(src, "cats", 10)

		_, _ = p.Current(ctx)
		So(p.PageTotal(), ShouldEqual, 3)

		// The live catalog grew.
		src.pageTotal = 5
		_, _ = p.Next(ctx)
		So(p.PageTotal(), ShouldEqual, 5)

		// A smaller momentary report never shrinks the known range.
		src.pageTotal = 2
		_, _ = p.Next(ctx)
		So(p.PageTotal(), ShouldEqual, 5)
	})

	Convey("Given a non-positive page size", t, func() {
		p := NewPager(newSource(), "cats", 0)

		Convey("The pager falls back to the default window", func() {
			So(p.size, ShouldBeGreaterThanOrEqualTo, 1)
		})
	})
}
