// Package fs provides flat-file storage for the corpus and crawl results.
// Files are JSON arrays replaced atomically on every write.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/newsroom"
)

// WriteJSON encodes v as indented JSON and atomically replaces path with it.
// The data is written to a temporary file in the same directory and renamed
// into place, so readers never observe a partial file.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadJSON decodes the JSON file at path into v.
// Returns ENOTFOUND if the file does not exist.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return newsroom.Errorf(newsroom.ENOTFOUND, "%s not found", path)
	} else if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return newsroom.Errorf(newsroom.EINVALID, "decode %s: %v", path, err)
	}
	return nil
}

// ListFiles returns the paths of regular files in dir whose names end in
// ext (case-insensitive), sorted by name.
// Returns ENOTFOUND if dir does not exist.
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, newsroom.Errorf(newsroom.ENOTFOUND, "directory %s not found", dir)
	} else if err != nil {
		return nil, err
	}

	ext = strings.ToLower(ext)
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}
