package source

// Album represents a named collection of pictures discovered through a parser search.
type Album struct {
	// Display name of the album.
	Name string `json:"name"`
	// Cover image URL, may be empty when the source exposes none.
	Cover string `json:"cover"`
	// Ref is the parser-specific opaque identifier used to resolve the album's pictures.
	Ref string `json:"url"`

	Source Source `json:"-"`
}

func (a *Album) String() string {
	return a.Name
}
