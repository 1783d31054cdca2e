// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"strings"

	"github.com/astella/napkin/internal/contract"
	"golang.org/x/term"
)

// Bounds for wrapped text under the tables.
const (
	minWrapWidth = 40
	maxWrapWidth = 120
)

// GetTerminalWidth returns the width used to wrap text output. An explicit
// width from flag/env wins, then the detected terminal, then 80 columns.
func GetTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}

// getWrapWidth clamps the terminal width into a readable range.
func getWrapWidth(cfg *contract.Config) int {
	return min(max(GetTerminalWidth(cfg), minWrapWidth), maxWrapWidth)
}

// wrapText greedily breaks text on spaces so no line exceeds width,
// unless a single word is longer than width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
