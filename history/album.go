package history

import (
	"fmt"
	"time"

	"github.com/picsan-cli/picsan/source"
)

// SavedAlbum represents a single finished download preserved in the user's history.
type SavedAlbum struct {
	SourceID      string    `json:"source_id"`
	Name          string    `json:"name"`
	Ref           string    `json:"ref"`
	PicturesTotal int       `json:"pictures_total"`
	Dir           string    `json:"dir"`
	DownloadedAt  time.Time `json:"downloaded_at"`
}

func (s *SavedAlbum) encode() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.SourceID)
}

func (s *SavedAlbum) String() string {
	return fmt.Sprintf("%s : %d pictures", s.Name, s.PicturesTotal)
}

func newSavedAlbum(album *source.Album, pictures int, dir string) *SavedAlbum {
	return &SavedAlbum{
		SourceID:      album.Source.ID(),
		Name:          album.Name,
		Ref:           album.Ref,
		PicturesTotal: pictures,
		Dir:           dir,
		DownloadedAt:  time.Now(),
	}
}
