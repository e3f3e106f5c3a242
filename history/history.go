// Package history tracks and persists finished album downloads.
package history

import (
	"github.com/metafates/gache"
	"github.com/picsan-cli/picsan/filesystem"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/where"
)

// cacher provides an abstracted, disk-backed registry for download records.
var cacher = gache.New[map[string]*SavedAlbum](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedAlbum, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedAlbum), nil
	}
	return cached, nil
}

// Save persists a finished album download to the history registry.
// Re-downloading an album overwrites its previous record.
func Save(album *source.Album, pictures int, dir string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedAlbum(album, pictures, dir)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific download record from the history registry.
func Remove(album *SavedAlbum) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, album.encode())
	return cacher.Set(saved)
}
