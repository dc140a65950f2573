// SPDX-License-Identifier: MIT

package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/rgex/export"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Summary renders the export summary for w: the styled table on a terminal,
// one plain line otherwise.
func Summary(w io.Writer, modelName, path string, s export.Stats) string {
	if IsTerminal(w) {
		return ExportSummary(modelName, path, s)
	}

	return PlainSummary(modelName, path, s)
}

// PlainSummary renders one unstyled line, suitable for logs and pipes.
func PlainSummary(modelName, path string, s export.Stats) string {
	line := fmt.Sprintf("%s: %d categories, %d terms (%d indexed)", modelName, len(s.Categories), s.Terms, s.Indexed)
	if s.SkippedMappings > 0 {
		line += fmt.Sprintf(", %d mapping entries skipped", s.SkippedMappings)
	}
	if path != "" {
		line += " -> " + path
	}

	return line + "\n"
}
