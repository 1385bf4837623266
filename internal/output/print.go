// Package output renders dockprune's terminal output: status lines,
// usage and cache tables, and a spinner for long docker calls.
//
// Color is emitted only when stdout is a TTY and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// Bold wraps text in a bold escape when color is enabled.
func Bold(text string) string { return colorize(colorBold, text) }

// Dim renders secondary text.
func Dim(text string) string { return colorize(colorGray, text) }

// Green highlights a figure the operator will like.
func Green(text string) string { return colorize(colorGreen, text) }

// FormatBytes renders a byte count in decimal SI units, matching how
// docker itself reports sizes.
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}

// Info prints a bullet status line.
func Info(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(colorCyan, "•"), fmt.Sprintf(format, args...))
}

// Success prints a check-marked status line.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(colorGreen, "✓"), fmt.Sprintf(format, args...))
}

// Warning prints an exclamation status line.
func Warning(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(colorYellow, "!"), fmt.Sprintf(format, args...))
}

// Error prints a cross-marked status line to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(colorRed, "✗"), fmt.Sprintf(format, args...))
}

// DryRunBanner announces that no changes will be made.
func DryRunBanner() {
	fmt.Println(colorize(colorYellow, "[DRY RUN] No changes will be made"))
	fmt.Println()
}

// SpaceSaved prints the before/after delta of a purge, clamped at zero
// when usage grew during execution.
func SpaceSaved(before, after uint64) {
	var freed uint64
	if before > after {
		freed = before - after
	}
	fmt.Println()
	fmt.Printf("%s %s\n", Bold("Space freed:"), Green(FormatBytes(freed)))
}
