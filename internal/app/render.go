package app

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/icon"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// RenderClient defines dependencies required to render icon variants.
type RenderClient interface {
	Resolve(ctx context.Context, key string) ([]byte, error)
	Asset(ref string) ([]byte, error)
}

// RenderInput represents render command inputs after flag parsing.
type RenderInput struct {
	Source          string
	Bundled         string
	Size            int
	Shape           string
	Scale           string
	Ring            bool
	RingWidth       float64
	SelectedColor   color.Color
	UnselectedColor color.Color
	OutputDir       string
	BaseName        string
}

// RenderResult reports where the rendered variants were written.
type RenderResult struct {
	SelectedPath   string
	UnselectedPath string
}

// RenderUseCase coordinates rendering icon variants to disk.
type RenderUseCase struct {
	client RenderClient
}

// NewRenderUseCase creates a new render use-case.
func NewRenderUseCase(client RenderClient) *RenderUseCase {
	if client == nil {
		panic("NewRenderUseCase: client dependency cannot be nil")
	}
	return &RenderUseCase{client: client}
}

// Execute resolves the icon bytes and writes both ring variants to disk.
func (u *RenderUseCase) Execute(ctx context.Context, input RenderInput) (RenderResult, error) {
	data, err := u.resolveBytes(ctx, input)
	if err != nil {
		return RenderResult{}, err
	}

	shape := tabs.ShapeCircle
	if input.Shape != "" {
		shape, err = tabs.ParseShape(input.Shape)
		if err != nil {
			return RenderResult{}, fmt.Errorf("render: %w", err)
		}
	}

	scale := tabs.ScaleCover
	if input.Scale != "" {
		scale, err = tabs.ParseScaleMode(input.Scale)
		if err != nil {
			return RenderResult{}, fmt.Errorf("render: %w", err)
		}
	}

	size := input.Size
	if size <= 0 {
		size = 48
	}

	opts := icon.RenderOptions{
		Shape:  shape,
		Scale:  scale,
		Target: image.Pt(size, size),
		Ring:   tabs.RingSpec{Enabled: input.Ring, Width: input.RingWidth},
	}
	selected, unselected, err := icon.RenderVariants(data, opts, input.SelectedColor, input.UnselectedColor)
	if err != nil {
		return RenderResult{}, fmt.Errorf("render: %w", err)
	}

	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	baseName := input.BaseName
	if baseName == "" {
		baseName = "icon"
	}

	if err := os.MkdirAll(outputDir, config.FileModeDir); err != nil {
		return RenderResult{}, fmt.Errorf("render: failed to create output directory: %w", err)
	}

	result := RenderResult{
		SelectedPath:   filepath.Join(outputDir, baseName+"-selected.png"),
		UnselectedPath: filepath.Join(outputDir, baseName+"-unselected.png"),
	}
	if err := os.WriteFile(result.SelectedPath, selected, config.FileModeFile); err != nil {
		return RenderResult{}, fmt.Errorf("render: failed to write %s: %w", result.SelectedPath, err)
	}
	if err := os.WriteFile(result.UnselectedPath, unselected, config.FileModeFile); err != nil {
		return RenderResult{}, fmt.Errorf("render: failed to write %s: %w", result.UnselectedPath, err)
	}

	colors.Success(fmt.Sprintf("rendered %s and %s", result.SelectedPath, result.UnselectedPath))
	return result, nil
}

// resolveBytes picks the icon payload: an explicit source wins over a
// bundled reference.
func (u *RenderUseCase) resolveBytes(ctx context.Context, input RenderInput) ([]byte, error) {
	source := strings.TrimSpace(input.Source)
	bundled := strings.TrimSpace(input.Bundled)

	switch {
	case source != "":
		src, err := icon.Classify(source)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		if src.Kind == tabs.SourceInline {
			return src.Data, nil
		}
		data, err := u.client.Resolve(ctx, src.Key)
		if err != nil {
			return nil, fmt.Errorf("render: failed to fetch %s: %w", src.Key, err)
		}
		return data, nil
	case bundled != "":
		data, err := u.client.Asset(bundled)
		if err != nil {
			return nil, fmt.Errorf("render: failed to load bundled asset %s: %w", bundled, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("render: a source or bundled reference is required")
	}
}
