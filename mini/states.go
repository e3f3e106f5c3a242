// Package mini implements a lightweight, minimalist interface for album search and downloading.
package mini

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/picsan-cli/picsan/color"
	"github.com/picsan-cli/picsan/downloader"
	"github.com/picsan-cli/picsan/history"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/query"
	"github.com/picsan-cli/picsan/search"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/style"
	"github.com/picsan-cli/picsan/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type state int

const (
	albumsSearchState state = iota + 1
	albumSelectState
	parserSelectState
	downloadState
	historySelectState
	quitState
)

func (m *mini) handleParserSelectState() error {
	var err error

	if code := viper.GetString(key.ParsersDefault); code != "" {
		p, ok := m.registry.Get(code)
		if !ok {
			return fmt.Errorf("unknown parser \"%s\"", code)
		}

		m.selectedSource, err = p.CreateSource()
		if err != nil {
			return err
		}
	} else {
		providers := slices.Clone(m.registry.List())
		slices.SortFunc(providers, func(a, b *provider.Provider) int {
			return strings.Compare(a.String(), b.String())
		})

		title("Select Parser")
		b, p, err := menu(providers)
		if err != nil {
			return err
		}

		if quit.eq(b) {
			m.newState(quitState)
			return nil
		}

		erase := progress("Initializing Parser..")
		m.selectedSource, err = p.CreateSource()
		if err != nil {
			return err
		}
		erase()
	}

	m.newState(albumsSearchState)
	return nil
}

func (m *mini) handleAlbumsSearchState() error {
	var searchLoop func() error
	title("Search Albums")

	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return s != ""
		})

		if err != nil {
			return err
		}

		keyword := in.value

		erase := progress("Searching Query..")
		pager := search.NewPager(m.selectedSource, keyword, viper.GetInt(key.MiniSearchLimit))
		albums, err := pager.Current(m.ctx)
		erase()

		if err != nil {
			fail(fmt.Sprintf("Search failed: %v", err))
			return searchLoop()
		}

		if len(albums) == 0 {
			fail("No search results found")
			return searchLoop()
		}

		_ = query.Remember(keyword, 1)

		m.pager = pager
		m.newState(albumSelectState)
		return nil
	}

	return searchLoop()
}

func (m *mini) handleAlbumSelectState() error {
	albums, err := m.pager.Current(m.ctx)
	if err != nil {
		return err
	}

	title(fmt.Sprintf("Query Results >> %q, page %d/%d", m.pager.Keyword(), m.pager.Page(), m.pager.PageTotal()))
	b, album, err := menu(albums, prev, next, firstPage, lastPage, jump, newSearch)
	if err != nil {
		return err
	}

	if b == nil {
		m.selectedAlbum = album
		m.newState(downloadState)
		return nil
	}

	erase := progress("Fetching Page..")
	defer erase()

	switch {
	case prev.eq(b):
		_, err = m.pager.Prev(m.ctx)
	case next.eq(b):
		_, err = m.pager.Next(m.ctx)
	case firstPage.eq(b):
		_, err = m.pager.First(m.ctx)
	case lastPage.eq(b):
		_, err = m.pager.Last(m.ctx)
	case jump.eq(b):
		erase()
		pageInput := regexp.MustCompile(`^\d+$`)
		in, err := getInput(pageInput.MatchString)
		if err != nil {
			return err
		}
		page := lo.Must(strconv.Atoi(in.value))
		_, err = m.pager.Jump(m.ctx, page)
		if err != nil {
			fail(fmt.Sprintf("Jump failed: %v", err))
		}
	case newSearch.eq(b):
		m.newState(albumsSearchState)
	case quit.eq(b):
		m.newState(quitState)
	}

	if err != nil {
		fail(fmt.Sprintf("Pagination failed: %v", err))
	}
	return nil
}

func (m *mini) handleDownloadState() error {
	util.ClearScreen()
	title(fmt.Sprintf("Downloading %s", m.selectedAlbum.Name))

	erase := progress("Resolving Pictures..")
	result, err := downloader.Album(m.ctx, m.registry, m.selectedAlbum, func(done, total int) {
		erase()
		erase = progress(fmt.Sprintf("Downloading %d/%d..", done, total))
	})
	erase()

	if err != nil {
		fail(fmt.Sprintf("Download failed: %v", err))
		m.previousState()
		return nil
	}

	_ = history.Save(m.selectedAlbum, result.Downloaded, result.Dir)

	fmt.Println(style.Fg(color.Green)(fmt.Sprintf(
		"Saved %s to %s", util.Quantify(result.Downloaded, "picture", "pictures"), result.Dir,
	)))
	if result.Failed > 0 {
		fail(util.Quantify(result.Failed, "picture failed", "pictures failed"))
	}

	b, _, err := menu([]*source.Album{}, download, back, newSearch)
	if err != nil {
		return err
	}

	switch {
	case download.eq(b):
		return m.handleDownloadState()
	case back.eq(b):
		m.previousState()
	case newSearch.eq(b):
		m.newState(albumsSearchState)
	case quit.eq(b):
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleHistorySelectState() error {
	h, err := history.Get()
	if err != nil {
		return err
	}

	saved := lo.Values(h)

	title("History Results >>")
	b, record, err := menu(saved)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	p, ok := m.registry.Get(record.SourceID)
	if !ok {
		return fmt.Errorf("unknown parser \"%s\"", record.SourceID)
	}

	erase := progress("Initializing Parser..")
	s, err := p.CreateSource()
	if err != nil {
		return err
	}
	m.selectedSource = s
	erase()

	m.selectedAlbum = &source.Album{
		Name:   record.Name,
		Ref:    record.Ref,
		Source: s,
	}

	m.newState(downloadState)
	return nil
}
