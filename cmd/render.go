/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tabstrip/internal/app"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Theme color fallbacks when neither a flag nor configuration sets one.
const (
	defaultSelectedColor   = "#3478f6"
	defaultUnselectedColor = "#8e8e93"
)

// NewRenderCmd creates the render command with explicit dependencies.
func NewRenderCmd(client app.RenderClient) *cobra.Command {
	if client == nil {
		panic("NewRenderCmd: client dependency cannot be nil")
	}

	var (
		source        string
		bundled       string
		size          int
		shape         string
		scale         string
		ring          bool
		ringWidth     float64
		selectedHex   string
		unselectedHex string
		outputDir     string
		baseName      string
	)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render icon variants to PNG files",
		Long: `Render icon variants to PNG files.

Resolves an icon the same way the strip does, masks and scales it, and
writes the selected and unselected ring variants to disk.

USAGE:
    tabstrip render [OPTIONS]

OPTIONS:
    --source <ref>            Icon source: http(s) URL or data URI
    --bundled <ref>           Bundled asset reference instead of a source
    --size <px>               Output size in pixels (default: icon_size)
    --shape <shape>           Mask shape: circle, square (default: icon_shape)
    --scale <mode>            Scale mode: cover, stretch, fit (default: icon_mode)
    --ring                    Draw the selection ring (default: ring_enabled)
    --ring-width <px>         Ring stroke width (default: ring_width)
    --selected-color <hex>    Selected ring color (default: selected_color)
    --unselected-color <hex>  Unselected ring color (default: unselected_color)
    --output-dir <dir>        Directory for output files (default: .)
    --name <base>             Base name for output files (default: icon)
    -h, --help                Show this help

EXAMPLES:
    # Render a bundled asset with the configured theme
    tabstrip render --bundled star

    # Render a remote icon with a square mask at 64px
    tabstrip render --source https://example.com/logo.png --shape square --size 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			if size == 0 {
				size = config.GetInt("icon_size", 48)
			}
			if shape == "" {
				shape = config.Get("icon_shape", string(tabs.ShapeCircle))
			}
			if scale == "" {
				scale = config.Get("icon_mode", string(tabs.ScaleCover))
			}
			if !cmd.Flags().Changed("ring") {
				ring = config.GetBool("ring_enabled", true)
			}
			if !cmd.Flags().Changed("ring-width") {
				ringWidth = config.GetFloat("ring_width", tabs.DefaultRingWidth)
			}

			selected, err := themeColor(selectedHex, "selected_color", defaultSelectedColor)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			unselected, err := themeColor(unselectedHex, "unselected_color", defaultUnselectedColor)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			input := app.RenderInput{
				Source:          source,
				Bundled:         bundled,
				Size:            size,
				Shape:           shape,
				Scale:           scale,
				Ring:            ring,
				RingWidth:       ringWidth,
				SelectedColor:   selected,
				UnselectedColor: unselected,
				OutputDir:       outputDir,
				BaseName:        baseName,
			}
			_, err = app.NewRenderUseCase(client).Execute(cmd.Context(), input)
			return err
		},
	}

	flags := renderCmd.Flags()
	flags.StringVar(&source, "source", "", "Icon source: http(s) URL or data URI")
	flags.StringVar(&bundled, "bundled", "", "Bundled asset reference instead of a source")
	flags.IntVar(&size, "size", 0, "Output size in pixels")
	flags.StringVar(&shape, "shape", "", "Mask shape: circle, square")
	flags.StringVar(&scale, "scale", "", "Scale mode: cover, stretch, fit")
	flags.BoolVar(&ring, "ring", true, "Draw the selection ring")
	flags.Float64Var(&ringWidth, "ring-width", tabs.DefaultRingWidth, "Ring stroke width")
	flags.StringVar(&selectedHex, "selected-color", "", "Selected ring color as #rrggbb")
	flags.StringVar(&unselectedHex, "unselected-color", "", "Unselected ring color as #rrggbb")
	flags.StringVar(&outputDir, "output-dir", "", "Directory for output files")
	flags.StringVar(&baseName, "name", "", "Base name for output files")

	return renderCmd
}

// themeColor resolves a color from the flag value, the configuration
// key, and the built-in fallback, in that order.
func themeColor(flagValue, key, fallback string) (color.Color, error) {
	value := flagValue
	if value == "" {
		value = config.Get(key, fallback)
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return c, nil
}

// renderCmd represents the render command
var renderCmd = NewRenderCmd(&iconClient{})

func init() {
	rootCmd.AddCommand(renderCmd)
}
