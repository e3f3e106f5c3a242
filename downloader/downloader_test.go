package downloader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/picsan-cli/picsan/filesystem"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type mockSource struct {
	albums map[string][]*source.Picture
}

func (m *mockSource) ID() string   { return "a" }
func (m *mockSource) Name() string { return "Source A" }

func (m *mockSource) Search(_ context.Context, _ string, _, _ int) (*source.SearchResult, error) {
	return &source.SearchResult{}, nil
}

func (m *mockSource) Pictures(_ context.Context, ref string) ([]*source.Picture, error) {
	pictures, ok := m.albums[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", source.ErrNotFound, ref)
	}
	return pictures, nil
}

func TestAlbum(t *testing.T) {
	Convey("Given an album with reachable pictures", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/broken.jpg" {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte("image-bytes"))
		}))
		defer srv.Close()

		src := &mockSource{albums: map[string][]*source.Picture{
			"ref-1": {
				{URL: srv.URL + "/one.jpg"},
				{URL: srv.URL + "/two.jpg@large"},
			},
			"ref-broken": {
				{URL: srv.URL + "/one.jpg"},
				{URL: srv.URL + "/broken.jpg"},
			},
		}}
		reg, err := provider.NewRegistry(&provider.Provider{
			ID:           "a",
			Name:         "Source A",
			CreateSource: func() (source.Source, error) { return src, nil },
		})
		So(err, ShouldBeNil)

		viper.Set(key.DownloadPath, "downloads")
		defer viper.Set(key.DownloadPath, "")

		album := &source.Album{Name: "Summer Set", Ref: "ref-1", Source: src}

		Convey("When downloading it", func() {
			var (
				calls  atomic.Int64
				totals atomic.Int64
			)
			result, err := Album(context.Background(), reg, album, func(done, total int) {
				calls.Add(1)
				totals.Store(int64(total))
			})
			So(err, ShouldBeNil)

			Convey("Then every picture lands under the sanitized album directory", func() {
				So(result.Downloaded, ShouldEqual, 2)
				So(result.Failed, ShouldEqual, 0)
				So(result.Dir, ShouldEqual, filepath.Join("downloads", "Summer_Set"))

				exists, _ := filesystem.API().Exists(filepath.Join(result.Dir, "one.jpg"))
				So(exists, ShouldBeTrue)

				// Fetched through the resolver, so the variant suffix is gone.
				exists, _ = filesystem.API().Exists(filepath.Join(result.Dir, "two.jpg"))
				So(exists, ShouldBeTrue)
			})

			Convey("Then progress was reported per picture", func() {
				So(calls.Load(), ShouldEqual, 2)
				So(totals.Load(), ShouldEqual, 2)
			})
		})

		Convey("When a single picture fails", func() {
			result, err := Album(context.Background(), reg, &source.Album{Name: "Flaky", Ref: "ref-broken", Source: src}, nil)

			Convey("Then the download still succeeds and reports the failure", func() {
				So(err, ShouldBeNil)
				So(result.Downloaded, ShouldEqual, 1)
				So(result.Failed, ShouldEqual, 1)
			})
		})

		Convey("When the album reference is stale", func() {
			_, err := Album(context.Background(), reg, &source.Album{Name: "Gone", Ref: "ref-404", Source: src}, nil)
			So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
		})
	})
}
