// Package mzt implements the album parser for the 妹子图 photo archive.
//
// Albums are paginated on the site itself: the archive lists one picture per
// page, so resolving an album walks its pagination trail.
package mzt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/network"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/util"
)

const (
	// ID is the stable parser code.
	ID = "mzt"
	// Name is the human-readable parser label.
	Name = "妹子图"
)

const defaultBase = "https://www.mzitu.com"

// Scraper is the scraping engine behind the mzt provider.
type Scraper struct {
	base string
}

// New returns a ready-to-use mzt scraping engine.
func New() *Scraper {
	return &Scraper{base: defaultBase}
}

func (s *Scraper) ID() string {
	return ID
}

func (s *Scraper) Name() string {
	return Name
}

// Search queries the archive's search listing. The listing uses a fixed
// upstream page size; the requested size is left to the orchestrator to clamp.
func (s *Scraper) Search(ctx context.Context, keyword string, page, size int) (*source.SearchResult, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: keyword must not be empty", source.ErrInvalidQuery)
	}

	endpoint := fmt.Sprintf("%s/search/%s/page/%d/", s.base, url.PathEscape(keyword), page)
	body, err := network.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrSourceUnavailable, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	result := &source.SearchResult{}

	doc.Find("#pins>li").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		img := sel.Find("img").First()
		name := strings.TrimSpace(img.AttrOr("alt", ""))
		if name == "" {
			name = strings.TrimSpace(sel.Find("span>a").Text())
		}
		if name == "" {
			return
		}

		result.Albums = append(result.Albums, &source.Album{
			Name: name,
			// Covers are lazy-loaded; the real URL lives in data-original.
			Cover:  img.AttrOr("data-original", img.AttrOr("src", "")),
			Ref:    href,
			Source: s,
		})
	})

	doc.Find(".nav-links a.page-numbers").Each(func(_ int, sel *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(sel.Text())); err == nil {
			result.PageTotal = util.Max(result.PageTotal, n)
		}
	})
	// A single results page renders no pagination links at all.
	if result.PageTotal == 0 && len(result.Albums) > 0 {
		result.PageTotal = 1
	}

	log.Debugf("mzt: %d albums for %q page %d", len(result.Albums), keyword, page)
	return result, nil
}

// Pictures walks the album's pagination trail and collects one picture per page.
func (s *Scraper) Pictures(ctx context.Context, ref string) ([]*source.Picture, error) {
	doc, err := s.fetchAlbumPage(ctx, ref)
	if err != nil {
		return nil, err
	}

	pictures := []*source.Picture{}
	collect := func(doc *goquery.Document) {
		if src, ok := doc.Find(".main-image img").First().Attr("src"); ok {
			pictures = append(pictures, &source.Picture{URL: src})
		}
	}
	collect(doc)

	for page := 2; page <= pageCount(doc); page++ {
		pageDoc, err := s.fetchAlbumPage(ctx, fmt.Sprintf("%s/%d", strings.TrimSuffix(ref, "/"), page))
		if err != nil {
			return nil, err
		}
		collect(pageDoc)
	}

	return pictures, nil
}

func (s *Scraper) fetchAlbumPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, err := network.Get(ctx, pageURL)
	if err != nil {
		var status *network.StatusError
		if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, pageURL)
		}
		return nil, fmt.Errorf("%w: %v", source.ErrSourceUnavailable, err)
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// pageCount reads the album's own pagination block; spans carry the numbers.
func pageCount(doc *goquery.Document) (count int) {
	doc.Find(".pagenavi a span").Each(func(_ int, sel *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(sel.Text())); err == nil {
			count = util.Max(count, n)
		}
	})
	return count
}
