package app

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/format"
	"github.com/cristianoliveira/tabstrip/internal/icon"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// maxSourceDisplayLen caps how much of a raw source string shows up in
// the check output. Inline data URIs can run to kilobytes.
const maxSourceDisplayLen = 60

// CheckClient defines dependencies required to check icon sources.
type CheckClient interface {
	Resolve(ctx context.Context, key string) ([]byte, error)
}

// CheckInput represents check command inputs after flag parsing.
type CheckInput struct {
	Sources []string
	Fetch   bool
	Format  string
}

// CheckUseCase coordinates icon source validation.
type CheckUseCase struct {
	client CheckClient
}

// NewCheckUseCase creates a new check use-case.
func NewCheckUseCase(client CheckClient) *CheckUseCase {
	if client == nil {
		panic("NewCheckUseCase: client dependency cannot be nil")
	}
	return &CheckUseCase{client: client}
}

// Execute classifies each source and prints one row per result. With
// Fetch enabled remote sources are also downloaded through the cache.
func (u *CheckUseCase) Execute(ctx context.Context, input CheckInput, w io.Writer) error {
	if len(input.Sources) == 0 {
		return fmt.Errorf("check: at least one source is required")
	}

	rows := make([]format.Row, 0, len(input.Sources))
	invalid := 0
	for i, raw := range input.Sources {
		row := format.Row{Index: i, Title: truncateSource(raw)}
		src, err := icon.Classify(raw)
		switch {
		case err != nil:
			invalid++
			row.ID = "invalid"
			row.Detail = err.Error()
		case src.Kind == tabs.SourceInline:
			row.ID = src.Kind.String()
			row.Detail = fmt.Sprintf("%s, %d bytes", inlineMIME(raw), len(src.Data))
		default:
			row.ID = src.Kind.String()
			row.Detail = u.remoteDetail(ctx, src.Key, input.Fetch)
		}
		rows = append(rows, row)
	}

	formatter := format.GetFormatter(input.Format)
	if err := formatter.FormatRows(rows, w); err != nil {
		return fmt.Errorf("check: formatting error: %w", err)
	}

	if invalid > 0 {
		return fmt.Errorf("check: %d of %d sources invalid", invalid, len(input.Sources))
	}
	return nil
}

// remoteDetail describes a remote source, optionally fetching it to
// prove the URL serves a usable image.
func (u *CheckUseCase) remoteDetail(ctx context.Context, key string, fetch bool) string {
	parsed, err := url.Parse(key)
	host := key
	if err == nil {
		host = parsed.Host
	}
	if !fetch {
		return host
	}
	data, err := u.client.Resolve(ctx, key)
	if err != nil {
		return fmt.Sprintf("%s fetch failed: %v", host, err)
	}
	return fmt.Sprintf("%s %d bytes fetched", host, len(data))
}

// inlineMIME extracts the MIME token from a data URI prefix.
func inlineMIME(raw string) string {
	rest := strings.TrimPrefix(raw, "data:")
	if i := strings.IndexByte(rest, ';'); i > 0 {
		return rest[:i]
	}
	return ""
}

func truncateSource(raw string) string {
	if len(raw) <= maxSourceDisplayLen {
		return raw
	}
	return raw[:maxSourceDisplayLen-3] + "..."
}
