// Package resolve turns album references into normalized picture lists.
package resolve

import (
	"context"
	"strings"

	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/source"
)

// variantDelimiters mark the start of a size/quality qualifier appended to a
// picture URL by a source's CDN, e.g. "img.jpg@large" or "img.jpg!small".
var variantDelimiters = []string{"@", "!"}

// Pictures dispatches an album reference to the resolved parser and returns
// its ordered picture list with every URL normalized.
//
// This is the single normalization point: parsers return URLs exactly as
// scraped, so adding a parser never touches normalization logic. An empty
// list is a valid result for an existing album and is distinct from the
// ErrNotFound a stale reference produces.
func Pictures(ctx context.Context, registry *provider.Registry, code, ref string) ([]*source.Picture, error) {
	src, err := registry.Source(code)
	if err != nil {
		return nil, err
	}

	pictures, err := src.Pictures(ctx, ref)
	if err != nil {
		return nil, err
	}

	for _, p := range pictures {
		p.URL = Normalize(p.URL)
	}

	log.Infof("resolved %s via %s: %d pictures", ref, code, len(pictures))
	return pictures, nil
}

// Normalize strips a variant-suffix qualifier from a picture URL, yielding
// the canonical full-resolution form. The URL is truncated at the first
// delimiter found past the authority part, so userinfo in the rare
// "user@host" form survives.
func Normalize(raw string) string {
	offset := 0
	if i := strings.Index(raw, "://"); i >= 0 {
		if j := strings.IndexByte(raw[i+3:], '/'); j >= 0 {
			offset = i + 3 + j
		} else {
			return raw
		}
	}

	cut := len(raw)
	for _, delim := range variantDelimiters {
		if i := strings.Index(raw[offset:], delim); i >= 0 && offset+i < cut {
			cut = offset + i
		}
	}

	return raw[:cut]
}
