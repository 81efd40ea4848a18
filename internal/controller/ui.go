// Package controller renders javasee results as plain text, JSON or an
// interactive terminal view.
package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kmizu/JavaSee/internal/domain"
	"github.com/spf13/cobra"
)

// Format selects how results are written.
type Format string

// Available Format values.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatText, FormatJSON}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

// NewUI picks the renderer for format. Text output to a terminal gets the
// interactive view.
func NewUI(cmd *cobra.Command, format Format, useTTY bool) domain.UI {
	switch {
	case format == FormatJSON:
		return NewJSONUI(cmd.OutOrStdout())
	case useTTY:
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	default:
		return NewSimpleUI(cmd)
	}
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
