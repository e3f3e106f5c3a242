package source

import (
	"errors"
	"net/url"
	"path"
)

// Picture represents a single image within an album.
type Picture struct {
	URL string `json:"url"`
}

// Filename derives a filesystem name for the picture from the last segment of its URL path.
func (p *Picture) Filename() (string, error) {
	u, err := url.Parse(p.URL)
	if err != nil {
		return "", err
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", errors.New("picture url has no file name: " + p.URL)
	}
	return name, nil
}
