// Package symbols resolves symbolic icon names against the glyph set
// bundled with tabstrip. A name is valid when an embedded vector asset
// exists for it.
package symbols

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/cristianoliveira/tabstrip/assets"
)

// PlaceholderGlyph is shown for tabs whose icon could not be resolved.
const PlaceholderGlyph = "○"

// glyphs maps symbol names to the character the terminal renderer uses.
// Names without an entry fall back to a filled dot.
var glyphs = map[string]string{
	"house":     "⌂",
	"gear":      "⚙",
	"star":      "★",
	"bell":      "⍾",
	"person":    "☺",
	"magnifier": "⌕",
	"folder":    "▤",
	"envelope":  "✉",
	"circle":    "●",
	"square":    "■",
}

// Library answers which symbolic names exist and hands out their vector
// payloads.
type Library struct {
	available map[string]bool
}

// NewLibrary builds a Library from the embedded symbol assets.
func NewLibrary() *Library {
	available := make(map[string]bool)
	entries, err := fs.Glob(assets.FS, "symbols/*.svg")
	if err != nil {
		// The pattern is constant; Glob can only fail on a bad pattern.
		panic(fmt.Sprintf("symbols: globbing embedded assets: %v", err))
	}
	for _, entry := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(entry, "symbols/"), ".svg")
		available[name] = true
	}
	return &Library{available: available}
}

// Has reports whether name is part of the symbol set.
func (l *Library) Has(name string) bool {
	return l.available[name]
}

// SVG returns the vector payload for a known symbol name.
func (l *Library) SVG(name string) ([]byte, error) {
	if !l.available[name] {
		return nil, fmt.Errorf("unknown symbol %q", name)
	}
	return assets.FS.ReadFile("symbols/" + name + ".svg")
}

// Glyph returns the terminal character for a symbol name. Known names
// without a dedicated glyph render as a filled dot; unknown names render
// as the placeholder.
func (l *Library) Glyph(name string) string {
	if !l.available[name] {
		return PlaceholderGlyph
	}
	if glyph, ok := glyphs[name]; ok {
		return glyph
	}
	return "●"
}

// Names lists the available symbol names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.available))
	for name := range l.available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
