package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DetectPlain reports whether output should skip colors and styling:
// NO_COLOR set, output piped or redirected, or a terminal without color
// support.
func DetectPlain(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return true
	}

	return termenv.ColorProfile() == termenv.Ascii
}
