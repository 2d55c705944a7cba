package vecindex

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Save persists the index using GOB encoding. The write goes to a temp file
// first and is renamed into place for atomicity.
func (f *Flat) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	enc := gob.NewEncoder(file)
	if err := enc.Encode(f); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("encoding index: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Load reads an index from disk. Returns ErrIndexNotFound when the file does
// not exist and ErrUnsupportedVersion for incompatible formats.
func Load(path string) (*Flat, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("opening index file: %w", err)
	}
	defer file.Close()

	var idx Flat
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}

	if idx.Version != CurrentIndexVersion {
		return nil, fmt.Errorf("%w: got %d, want %d (rebuild with 'bookrec index build')",
			ErrUnsupportedVersion, idx.Version, CurrentIndexVersion)
	}

	return &idx, nil
}

// Exists reports whether an index file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Size returns the index file size in bytes.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrIndexNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}
