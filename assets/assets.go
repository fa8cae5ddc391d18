// Package assets provides embedded files for tabstrip.
package assets

import "embed"

//go:embed symbols
//go:embed bundled
var FS embed.FS
