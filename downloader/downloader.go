// Package downloader persists whole albums to the local filesystem.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/picsan-cli/picsan/filesystem"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/network"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/resolve"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/util"
	"github.com/picsan-cli/picsan/where"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// Result summarizes a finished album download.
type Result struct {
	// Dir is the directory the pictures were written to.
	Dir string
	// Downloaded and Failed count individual pictures.
	Downloaded int
	Failed     int
}

// Album resolves the album's pictures and fetches them concurrently into
// <downloads>/<sanitized album name>/. Individual picture failures are
// logged and skipped; the download as a whole only fails when nothing could
// be fetched or the context is cancelled.
//
// progress, when non-nil, is invoked after every finished picture.
func Album(ctx context.Context, registry *provider.Registry, album *source.Album, progress func(done, total int)) (Result, error) {
	pictures, err := resolve.Pictures(ctx, registry, album.Source.ID(), album.Ref)
	if err != nil {
		return Result{}, err
	}

	dir := filepath.Join(where.Downloads(), util.SanitizeFilename(album.Name))
	if err := filesystem.API().MkdirAll(dir, 0755); err != nil {
		return Result{}, err
	}

	limit := viper.GetInt(key.DownloadConcurrency)
	if limit < 1 {
		limit = 16
	}

	var done, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, picture := range pictures {
		i, picture := i, picture
		g.Go(func() error {
			if err := fetchPicture(ctx, dir, i, picture); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				log.Errorf("download picture %s: %v", picture.URL, err)
				failed.Add(1)
			}

			if progress != nil {
				progress(int(done.Add(1)), len(pictures))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{
		Dir:        dir,
		Downloaded: len(pictures) - int(failed.Load()),
		Failed:     int(failed.Load()),
	}

	if len(pictures) > 0 && result.Downloaded == 0 {
		return result, fmt.Errorf("%w: no picture could be fetched", source.ErrSourceUnavailable)
	}

	log.Infof("downloaded album %q: %s to %s", album.Name, util.Quantify(result.Downloaded, "picture", "pictures"), dir)
	return result, nil
}

func fetchPicture(ctx context.Context, dir string, idx int, picture *source.Picture) error {
	data, err := network.Get(ctx, picture.URL)
	if err != nil {
		return err
	}

	name, err := picture.Filename()
	if err != nil {
		// Unnameable URL, fall back to the picture's position.
		name = fmt.Sprintf("%03d", idx+1)
	}

	return filesystem.API().WriteFile(filepath.Join(dir, name), data, 0644)
}
