// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/picsan-cli/picsan/resolve"
	"github.com/picsan-cli/picsan/search"
	"github.com/picsan-cli/picsan/source"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	result, err := search.Execute(ctx, options.Registry, search.Query{
		Parser:  options.Parser,
		Keyword: options.Query,
		Page:    options.Page,
		Size:    options.Size,
	})
	if err != nil {
		return err
	}

	selected := result.Albums
	if options.AlbumPicker.IsPresent() {
		picker := options.AlbumPicker.MustGet()
		if choice := picker(result.Albums); choice != nil {
			selected = []*source.Album{choice}
		} else {
			selected = nil
		}
	}

	var pictures map[string][]*source.Picture
	if options.Pictures {
		pictures = make(map[string][]*source.Picture, len(selected))
		for _, album := range selected {
			resolved, err := resolve.Pictures(ctx, options.Registry, options.Parser, album.Ref)
			if err != nil {
				return err
			}
			pictures[album.Ref] = resolved
		}
	}

	if options.Json {
		return writeJson(options.Out, selected, result.PageTotal, pictures, options)
	}

	for _, album := range selected {
		if options.Pictures {
			for _, picture := range pictures[album.Ref] {
				fmt.Fprintln(options.Out, picture.URL)
			}
		} else {
			fmt.Fprintln(options.Out, album.Ref)
		}
	}

	return nil
}
