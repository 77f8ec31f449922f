package seenstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"gmonteiro/olxwatcher/logger"
	"gmonteiro/olxwatcher/pkg/errors"
)

// FileStore implements SeenStore on a JSON file holding an array of
// listing identifiers
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a file-backed seen store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.ForStore(),
	}
}

// Load reads the persisted identifier set. A missing file or malformed
// content yields an empty set with a warning; the run proceeds treating
// all listings as unseen.
func (f *FileStore) Load(_ context.Context) (SeenSet, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Warn().Err(err).Str("path", f.path).Msg("Failed to read cache file, starting with empty set")
		}
		return SeenSet{}, nil
	}

	var set SeenSet
	if err := json.Unmarshal(data, &set); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("Malformed cache file, starting with empty set")
		return SeenSet{}, nil
	}
	return set, nil
}

// Save serializes the set back to the file, overwriting prior content.
// The write goes through a temp file and rename so a crash mid-write
// cannot leave a truncated cache behind.
func (f *FileStore) Save(_ context.Context, set SeenSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return errors.NewCache("save", "failed to serialize seen set", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp")
	if err != nil {
		return errors.NewCache("save", "failed to create temp cache file", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.NewCache("save", "failed to write cache file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.NewCache("save", "failed to close cache file", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return errors.NewCache("save", "failed to replace cache file", err)
	}
	return nil
}
