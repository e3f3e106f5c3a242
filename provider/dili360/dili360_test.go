package dili360

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/picsan-cli/picsan/source"
	. "github.com/smartystreets/goconvey/convey"
)

const searchPage = `
<html><body>
<div id="results">
	<div>
		<h3><a href="http://www.dili360.com/article/p1.htm">云南 秘境</a></h3>
		<img src="http://img.dili360.com/thumb/p1.jpg">
	</div>
	<div>
		<h3><a href="http://www.dili360.com/article/p2.htm">云南 梯田</a></h3>
	</div>
	<div>
		<h3><a href="http://www.dili360.com/article/p3.htm"></a></h3>
	</div>
</div>
<div id="pageFooter"><a>1</a><a>2</a><a>3</a></div>
</body></html>`

const galleryPage = `
<html><body>
<div class="imgbox"><div class="img"><img src="http://img.dili360.com/ga/1.jpg@!rw9"></div></div>
<div class="imgbox"><div class="img"><img src="http://img.dili360.com/ga/2.jpg@!rw9"></div></div>
</body></html>`

func TestSearch(t *testing.T) {
	Convey("Given a search front end", t, func(c C) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Upstream pages are 0-based.
			c.So(r.URL.Query().Get("p"), ShouldEqual, "0")
			_, _ = w.Write([]byte(searchPage))
		}))
		defer srv.Close()

		s := &Scraper{searchBase: srv.URL}

		Convey("When searching the first page", func() {
			result, err := s.Search(context.Background(), "云南", 1, 10)
			So(err, ShouldBeNil)

			Convey("Then albums with empty titles are skipped", func() {
				So(result.Albums, ShouldHaveLength, 2)
				So(result.Albums[0].Name, ShouldEqual, "云南 秘境")
				So(result.Albums[0].Ref, ShouldEqual, "http://www.dili360.com/article/p1.htm")
				So(result.Albums[0].Cover, ShouldEqual, "http://img.dili360.com/thumb/p1.jpg")
			})

			Convey("Then the reported page count comes from the pager anchors", func() {
				So(result.PageTotal, ShouldEqual, 3)
			})
		})

		Convey("When searching with an empty keyword", func() {
			_, err := s.Search(context.Background(), "  ", 1, 10)
			So(errors.Is(err, source.ErrInvalidQuery), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable front end", t, func() {
		s := &Scraper{searchBase: "http://127.0.0.1:1"}
		_, err := s.Search(context.Background(), "云南", 1, 10)
		So(errors.Is(err, source.ErrSourceUnavailable), ShouldBeTrue)
	})
}

func TestPictures(t *testing.T) {
	Convey("Given a gallery page", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/gallery":
				_, _ = w.Write([]byte(galleryPage))
			case "/empty":
				_, _ = w.Write([]byte("<html><body></body></html>"))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		s := New()

		Convey("When resolving the gallery", func() {
			pictures, err := s.Pictures(context.Background(), srv.URL+"/gallery")
			So(err, ShouldBeNil)

			Convey("Then picture urls are returned untouched", func() {
				So(pictures, ShouldHaveLength, 2)
				So(pictures[0].URL, ShouldEqual, "http://img.dili360.com/ga/1.jpg@!rw9")
			})
		})

		Convey("When the album has no pictures", func() {
			pictures, err := s.Pictures(context.Background(), srv.URL+"/empty")
			So(err, ShouldBeNil)
			So(pictures, ShouldHaveLength, 0)
		})

		Convey("When the reference is gone upstream", func() {
			_, err := s.Pictures(context.Background(), srv.URL+"/removed")
			So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
		})
	})
}
