// Package tabs provides the domain layer for the tab strip.
// It contains the tab specification value objects and their validation.
package tabs

import "fmt"

// Spec describes a single tab as supplied by the host on configuration.
type Spec struct {
	ID              string
	Title           string
	SymbolicIcon    string
	BundledImageRef string
	Icon            *IconSource
	Badge           Badge
}

// SourceKind classifies where an icon source's bytes come from.
type SourceKind string

const (
	SourceInline SourceKind = "inline"
	SourceRemote SourceKind = "remote"
)

// IsValid checks if the source kind is valid.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceInline, SourceRemote:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k SourceKind) String() string {
	return string(k)
}

// Shape represents the mask applied to a rendered icon.
type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
)

// IsValid checks if the shape is valid.
func (s Shape) IsValid() bool {
	switch s {
	case ShapeCircle, ShapeSquare:
		return true
	default:
		return false
	}
}

// String returns the string representation of the shape.
func (s Shape) String() string {
	return string(s)
}

// ParseShape parses a string into a Shape.
func ParseShape(shape string) (Shape, error) {
	sh := Shape(shape)
	if !sh.IsValid() {
		return "", fmt.Errorf("invalid shape: %s", shape)
	}
	return sh, nil
}

// ScaleMode represents how source pixels are fitted into the target size.
type ScaleMode string

const (
	ScaleCover   ScaleMode = "cover"
	ScaleStretch ScaleMode = "stretch"
	ScaleFit     ScaleMode = "fit"
)

// IsValid checks if the scale mode is valid.
func (m ScaleMode) IsValid() bool {
	switch m {
	case ScaleCover, ScaleStretch, ScaleFit:
		return true
	default:
		return false
	}
}

// String returns the string representation of the scale mode.
func (m ScaleMode) String() string {
	return string(m)
}

// ParseScaleMode parses a string into a ScaleMode.
func ParseScaleMode(mode string) (ScaleMode, error) {
	sm := ScaleMode(mode)
	if !sm.IsValid() {
		return "", fmt.Errorf("invalid scale mode: %s", mode)
	}
	return sm, nil
}

// DefaultRingWidth is the ring stroke width used when none is given.
const DefaultRingWidth = 2.0

// RingSpec describes the optional selection ring drawn around an icon.
type RingSpec struct {
	Enabled bool
	Width   float64
}

// EffectiveWidth returns the ring width, substituting the default when the
// configured width is zero or negative.
func (r RingSpec) EffectiveWidth() float64 {
	if r.Width <= 0 {
		return DefaultRingWidth
	}
	return r.Width
}

// IconSource describes a rich icon image and how to render it.
// Kind is filled in by classification; host input supplies only the raw
// string and the rendering attributes.
type IconSource struct {
	Kind  SourceKind
	Raw   string
	Shape Shape
	Scale ScaleMode
	Ring  RingSpec
}

// Validate validates the icon source attributes.
func (s *IconSource) Validate() error {
	if s.Raw == "" {
		return fmt.Errorf("icon source raw string cannot be empty")
	}
	if !s.Shape.IsValid() {
		return fmt.Errorf("invalid icon shape: %s", s.Shape)
	}
	if !s.Scale.IsValid() {
		return fmt.Errorf("invalid icon scale mode: %s", s.Scale)
	}
	return nil
}
