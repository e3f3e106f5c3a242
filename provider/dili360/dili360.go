// Package dili360 implements the album parser for www.dili360.com.
//
// The site has no search endpoint of its own; discovery goes through the
// Baidu in-site search front end, which reports its own pagination.
package dili360

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/network"
	"github.com/picsan-cli/picsan/source"
)

const (
	// ID is the stable parser code.
	ID = "dili360"
	// Name is the human-readable parser label.
	Name = "中国地理"
)

const defaultSearchBase = "https://zhannei.baidu.com"

// Scraper is the scraping engine behind the dili360 provider.
// It holds only the search front-end base URL, so instances are safe for concurrent use.
type Scraper struct {
	searchBase string
}

// New returns a ready-to-use dili360 scraping engine.
func New() *Scraper {
	return &Scraper{searchBase: defaultSearchBase}
}

func (s *Scraper) ID() string {
	return ID
}

func (s *Scraper) Name() string {
	return Name
}

// Search queries the Baidu in-site search for dili360 galleries.
// The front end paginates from 0, so the requested page is shifted down by one.
func (s *Scraper) Search(ctx context.Context, keyword string, page, size int) (*source.SearchResult, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: keyword must not be empty", source.ErrInvalidQuery)
	}

	endpoint := fmt.Sprintf(
		"%s/cse/site?q=%s&p=%d&nsid=&cc=www.dili360.com",
		s.searchBase, url.QueryEscape(keyword), page-1,
	)

	body, err := network.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrSourceUnavailable, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	result := &source.SearchResult{
		// The front end renders one anchor per reachable page.
		PageTotal: doc.Find("#pageFooter>a").Length(),
	}

	doc.Find("#results>div").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("h3>a").First()
		href, ok := link.Attr("href")
		name := strings.TrimSpace(link.Text())
		if !ok || name == "" {
			return
		}

		result.Albums = append(result.Albums, &source.Album{
			Name:   name,
			Cover:  sel.Find("img").First().AttrOr("src", ""),
			Ref:    href,
			Source: s,
		})
	})

	log.Debugf("dili360: %d albums for %q page %d", len(result.Albums), keyword, page)
	return result, nil
}

// Pictures resolves a gallery page into its image list. Galleries on this
// site are single pages; every image sits inside an .imgbox block.
func (s *Scraper) Pictures(ctx context.Context, ref string) ([]*source.Picture, error) {
	body, err := network.Get(ctx, ref)
	if err != nil {
		var status *network.StatusError
		if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, ref)
		}
		return nil, fmt.Errorf("%w: %v", source.ErrSourceUnavailable, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	pictures := []*source.Picture{}
	doc.Find(".imgbox>.img>img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			pictures = append(pictures, &source.Picture{URL: src})
		}
	})

	return pictures, nil
}
