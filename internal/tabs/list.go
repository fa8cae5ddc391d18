package tabs

import "fmt"

// List is an ordered, validated tab configuration with id lookup.
// A List is immutable once built; each configuration call builds a new one.
type List struct {
	specs   []Spec
	indexOf map[string]int
}

// NewList validates the given specs and builds a List from them.
// Validation rejects an empty list and empty or duplicated ids; rejection
// is total, no partial configuration survives.
func NewList(specs []Spec) (*List, error) {
	if err := ValidateSpecs(specs); err != nil {
		return nil, err
	}
	copied := make([]Spec, len(specs))
	copy(copied, specs)
	indexOf := make(map[string]int, len(copied))
	for i, spec := range copied {
		indexOf[spec.ID] = i
	}
	return &List{specs: copied, indexOf: indexOf}, nil
}

// ValidateSpecs checks that a tab list is usable: non-empty, with unique,
// non-empty ids.
func ValidateSpecs(specs []Spec) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: tab list is empty", ErrInvalidConfiguration)
	}
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if spec.ID == "" {
			return fmt.Errorf("%w: tab at index %d has an empty id", ErrInvalidConfiguration, i)
		}
		if seen[spec.ID] {
			return fmt.Errorf("%w: duplicate tab id: %s", ErrInvalidConfiguration, spec.ID)
		}
		seen[spec.ID] = true
	}
	return nil
}

// Len returns the number of tabs.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.specs)
}

// At returns the spec at the given position.
func (l *List) At(index int) (Spec, bool) {
	if l == nil || index < 0 || index >= len(l.specs) {
		return Spec{}, false
	}
	return l.specs[index], true
}

// ByID returns the spec with the given id.
func (l *List) ByID(id string) (Spec, bool) {
	index, ok := l.IndexOf(id)
	if !ok {
		return Spec{}, false
	}
	return l.specs[index], true
}

// IndexOf returns the position of the tab with the given id.
func (l *List) IndexOf(id string) (int, bool) {
	if l == nil {
		return 0, false
	}
	index, ok := l.indexOf[id]
	return index, ok
}

// IDs returns the tab ids in display order.
func (l *List) IDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, len(l.specs))
	for i, spec := range l.specs {
		ids[i] = spec.ID
	}
	return ids
}

// Specs returns a copy of the specs in display order.
func (l *List) Specs() []Spec {
	if l == nil {
		return nil
	}
	copied := make([]Spec, len(l.specs))
	copy(copied, l.specs)
	return copied
}
