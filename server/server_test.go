package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
	. "github.com/smartystreets/goconvey/convey"
)

type mockSource struct {
	albums  []*source.Album
	albums2 map[string][]*source.Picture
}

func (m *mockSource) ID() string   { return "a" }
func (m *mockSource) Name() string { return "Source A" }

func (m *mockSource) Search(_ context.Context, keyword string, _, _ int) (*source.SearchResult, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: empty keyword", source.ErrInvalidQuery)
	}
	return &source.SearchResult{Albums: m.albums, PageTotal: 7}, nil
}

func (m *mockSource) Pictures(_ context.Context, ref string) ([]*source.Picture, error) {
	pictures, ok := m.albums2[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", source.ErrNotFound, ref)
	}
	return pictures, nil
}

func testServer() *httptest.Server {
	src := &mockSource{
		albums: []*source.Album{
			{Name: "First", Cover: "http://x/cover.jpg", Ref: "http://x/a/1"},
		},
		albums2: map[string][]*source.Picture{
			"http://x/a/1": {{URL: "http://x/img.jpg@large"}},
		},
	}
	registry, err := provider.NewRegistry(&provider.Provider{
		ID:           src.ID(),
		Name:         src.Name(),
		CreateSource: func() (source.Source, error) { return src, nil },
	})
	So(err, ShouldBeNil)

	return httptest.NewServer(New(registry))
}

func get(t *httptest.Server, path string) (int, Response) {
	resp, err := http.Get(t.URL + path)
	So(err, ShouldBeNil)
	defer resp.Body.Close()

	var body Response
	So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
	return resp.StatusCode, body
}

func TestRoutes(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := testServer()
		defer srv.Close()

		Convey("GET /album serves the browser page", func() {
			resp, err := http.Get(srv.URL + "/album")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/html")
		})

		Convey("GET /album/parsers lists registered parsers", func() {
			status, body := get(srv, "/album/parsers")
			So(status, ShouldEqual, http.StatusOK)
			So(body.Code, ShouldEqual, codeOK)

			entries := body.Data.([]any)
			So(entries, ShouldHaveLength, 1)
			entry := entries[0].(map[string]any)
			So(entry["code"], ShouldEqual, "a")
			So(entry["name"], ShouldEqual, "Source A")
		})

		Convey("GET /album/search returns albums and the page count", func() {
			status, body := get(srv, "/album/search?parser_code=a&keyword=test&page=1&size=10")
			So(status, ShouldEqual, http.StatusOK)
			So(body.Code, ShouldEqual, codeOK)

			data := body.Data.(map[string]any)
			So(data["page_total"], ShouldEqual, float64(7))
			albums := data["albums"].([]any)
			So(albums, ShouldHaveLength, 1)
			So(albums[0].(map[string]any)["url"], ShouldEqual, "http://x/a/1")
		})

		Convey("GET /album/search with an empty keyword is a bad request", func() {
			status, body := get(srv, "/album/search?parser_code=a&keyword=")
			So(status, ShouldEqual, http.StatusBadRequest)
			So(body.Code, ShouldEqual, codeInvalidQuery)
		})

		Convey("GET /album/search with an unknown parser is a bad request", func() {
			status, body := get(srv, "/album/search?parser_code=nope&keyword=test")
			So(status, ShouldEqual, http.StatusBadRequest)
			So(body.Code, ShouldEqual, codeInvalidQuery)
		})

		Convey("GET /album/pictures rewrites pictures into forward links", func() {
			status, body := get(srv, "/album/pictures?parser_code=a&url="+url.QueryEscape("http://x/a/1"))
			So(status, ShouldEqual, http.StatusOK)
			So(body.Code, ShouldEqual, codeOK)

			links := body.Data.([]any)
			So(links, ShouldHaveLength, 1)
			// Normalized by the resolver before being wrapped.
			So(links[0], ShouldEqual, "/album/picture?url="+url.QueryEscape("http://x/img.jpg"))
		})

		Convey("GET /album/pictures for a stale reference is not found", func() {
			status, body := get(srv, "/album/pictures?parser_code=a&url="+url.QueryEscape("http://x/a/404"))
			So(status, ShouldEqual, http.StatusNotFound)
			So(body.Code, ShouldEqual, codeNotFound)
		})

		Convey("GET /album/picture proxies the upstream body", func() {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/jpeg")
				_, _ = w.Write([]byte("image-bytes"))
			}))
			defer upstream.Close()

			resp, err := http.Get(srv.URL + "/album/picture?url=" + url.QueryEscape(upstream.URL+"/img.jpg"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldEqual, "image/jpeg")
		})

		Convey("GET /album/picture without a url is a bad request", func() {
			resp, err := http.Get(srv.URL + "/album/picture")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}
