// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/picsan-cli/picsan/source"
)

type Album struct {
	// Parser is the code of the parser the album came from.
	Parser string `json:"parser"`
	// Album is the album object from the source.
	Album *source.Album `json:"album"`
	// Pictures is the resolved picture list (optional).
	Pictures []*source.Picture `json:"pictures,omitempty"`
}

type Output struct {
	Query     string   `json:"query"`
	PageTotal int      `json:"page_total"`
	Result    []*Album `json:"result"`
}

func writeJson(out io.Writer, albums []*source.Album, pageTotal int, pictures map[string][]*source.Picture, options *Options) error {
	var result = make([]*Album, len(albums))
	for i, a := range albums {
		result[i] = &Album{
			Parser:   options.Parser,
			Album:    a,
			Pictures: pictures[a.Ref],
		}
	}

	data, err := json.Marshal(&Output{
		Query:     options.Query,
		PageTotal: pageTotal,
		Result:    result,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
