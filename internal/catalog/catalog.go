// Package catalog resolves bundled image references to raw asset bytes.
// References name files shipped with tabstrip; an optional on-disk
// directory lets users shadow or extend the embedded set.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/tabstrip/assets"
)

// extensions are tried, in order, when a reference carries none.
var extensions = []string{"", ".svg", ".png", ".jpg", ".jpeg", ".webp"}

// Catalog looks up image assets by reference.
type Catalog struct {
	dir string
}

// New creates a Catalog. dir may be empty; when set, files under it take
// precedence over the embedded assets.
func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Asset returns the raw bytes for a bundled image reference.
func (c *Catalog) Asset(ref string) ([]byte, error) {
	cleaned, err := cleanRef(ref)
	if err != nil {
		return nil, err
	}

	if c.dir != "" {
		for _, ext := range extensions {
			data, err := os.ReadFile(filepath.Join(c.dir, cleaned+ext))
			if err == nil {
				return data, nil
			}
		}
	}

	for _, ext := range extensions {
		data, err := assets.FS.ReadFile("bundled/" + cleaned + ext)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, ref)
}

// cleanRef normalizes a reference and rejects anything that would escape
// the catalog root.
func cleanRef(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrInvalidRef)
	}
	if filepath.IsAbs(ref) || strings.Contains(ref, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	cleaned := filepath.ToSlash(filepath.Clean(ref))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return cleaned, nil
}
