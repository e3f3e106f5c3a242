// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/util"
	"github.com/samber/mo"
)

type AlbumPicker func([]*source.Album) *source.Album

type Options struct {
	Out      io.Writer
	Registry *provider.Registry
	Parser   string
	Query    string
	Page     int
	Size     int
	// Pictures resolves the picture list of every selected album.
	Pictures    bool
	Json        bool
	AlbumPicker mo.Option[AlbumPicker]
}

func ParseAlbumPicker(kind, value string) (AlbumPicker, error) {
	switch kind {
	case "first":
		return func(albums []*source.Album) *source.Album {
			if len(albums) == 0 {
				return nil
			}
			return albums[0]
		}, nil
	case "last":
		return func(albums []*source.Album) *source.Album {
			if len(albums) == 0 {
				return nil
			}
			return albums[len(albums)-1]
		}, nil
	case "exact":
		return func(albums []*source.Album) *source.Album {
			for _, a := range albums {
				if a.Name == value {
					return a
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(albums []*source.Album) *source.Album {
			if len(albums) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(albums)-1))
			return albums[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
