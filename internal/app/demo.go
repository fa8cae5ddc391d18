package app

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
	"github.com/pelletier/go-toml/v2"
)

// tabsFile is the on-disk TOML document describing demo tabs.
type tabsFile struct {
	Tabs []tabEntry `toml:"tabs"`
}

// tabEntry mirrors one [[tabs]] block. Badge stays untyped so the wire
// shape (integer | "dot" | absent) survives decoding.
type tabEntry struct {
	ID       string     `toml:"id"`
	Title    string     `toml:"title"`
	Symbolic string     `toml:"symbolic"`
	Bundled  string     `toml:"bundled"`
	Badge    any        `toml:"badge"`
	Icon     *iconEntry `toml:"icon"`
}

type iconEntry struct {
	Source    string  `toml:"source"`
	Shape     string  `toml:"shape"`
	Scale     string  `toml:"scale"`
	Ring      bool    `toml:"ring"`
	RingWidth float64 `toml:"ring_width"`
}

// LoadTabSpecs reads a TOML tabs file and converts it to validated specs.
func LoadTabSpecs(path string) ([]tabs.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: failed to read tabs file: %w", err)
	}

	var file tabsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("demo: failed to parse tabs file: %w", err)
	}

	specs := make([]tabs.Spec, 0, len(file.Tabs))
	for _, entry := range file.Tabs {
		spec, err := entry.toSpec()
		if err != nil {
			return nil, fmt.Errorf("demo: tab %q: %w", entry.ID, err)
		}
		specs = append(specs, spec)
	}

	if err := tabs.ValidateSpecs(specs); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	return specs, nil
}

func (e tabEntry) toSpec() (tabs.Spec, error) {
	badge, err := tabs.ParseBadge(e.Badge)
	if err != nil {
		return tabs.Spec{}, err
	}

	spec := tabs.Spec{
		ID:              e.ID,
		Title:           e.Title,
		SymbolicIcon:    e.Symbolic,
		BundledImageRef: e.Bundled,
		Badge:           badge,
	}

	if e.Icon != nil && e.Icon.Source != "" {
		shape := tabs.ShapeCircle
		if e.Icon.Shape != "" {
			shape, err = tabs.ParseShape(e.Icon.Shape)
			if err != nil {
				return tabs.Spec{}, err
			}
		}
		scale := tabs.ScaleCover
		if e.Icon.Scale != "" {
			scale, err = tabs.ParseScaleMode(e.Icon.Scale)
			if err != nil {
				return tabs.Spec{}, err
			}
		}
		spec.Icon = &tabs.IconSource{
			Raw:   e.Icon.Source,
			Shape: shape,
			Scale: scale,
			Ring:  tabs.RingSpec{Enabled: e.Icon.Ring, Width: e.Icon.RingWidth},
		}
	}

	return spec, nil
}

// DefaultTabSpecs returns the built-in demo tab set used when no tabs
// file is given.
func DefaultTabSpecs() []tabs.Spec {
	return []tabs.Spec{
		{ID: "home", Title: "Home", SymbolicIcon: "house", Badge: tabs.CountBadge(3)},
		{ID: "library", Title: "Library", SymbolicIcon: "folder"},
		{ID: "search", Title: "Search", SymbolicIcon: "magnifier"},
		{ID: "inbox", Title: "Inbox", SymbolicIcon: "envelope", Badge: tabs.DotBadge()},
		{ID: "profile", Title: "Profile", SymbolicIcon: "person"},
	}
}
