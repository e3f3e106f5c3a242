// Package mini implements a lightweight, minimalist interface for album search and downloading.
package mini

import (
	"context"
	"os"

	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/search"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/util"
	"github.com/samber/lo"
)

var (
	truncateAt = 100
)

type Options struct {
	// Registry holds the parsers available for selection.
	Registry *provider.Registry
	// Continue starts from the download history instead of a fresh search.
	Continue bool
}

type mini struct {
	width, height int

	ctx      context.Context
	registry *provider.Registry

	state         state
	statesHistory util.Stack[state]

	selectedSource source.Source

	pager         *search.Pager
	selectedAlbum *source.Album
}

func newMini(options *Options) *mini {
	return &mini{
		ctx:           context.Background(),
		registry:      options.Registry,
		statesHistory: util.Stack[state]{},
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini(options)
	m.state = parserSelectState
	if options.Continue {
		m.state = historySelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case parserSelectState:
		return m.handleParserSelectState()
	case albumsSearchState:
		return m.handleAlbumsSearchState()
	case albumSelectState:
		return m.handleAlbumSelectState()
	case downloadState:
		return m.handleDownloadState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
