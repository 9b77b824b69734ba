package ui

import (
	"fmt"
	"os"
	"strings"
)

// Plain-terminal helpers for the non-interactive subcommands.

var (
	reset   = "\033[0m"
	fgGray  = "\033[90m"
	fgGreen = "\033[32m"
	fgRed   = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var disableColor bool

// SetColorDisabled turns off ANSI colors (for pipes and dumb terminals).
func SetColorDisabled(disable bool) { disableColor = disable }

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in an ANSI color when stdout is a terminal.
func C(color, s string) string {
	if disableColor || !isTTY() {
		return s
	}
	return color + s + reset
}

func OK(msg string)   { fmt.Println(C(fgGreen, symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, symCross+" "+msg)) }

// Panel draws a framed box around the lines.
func Panel(lines []string) {
	fmt.Println(panelStyle.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders purchased progress, e.g. [███░░░] 1/3.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		fmt.Sprintf("] %d/%d", done, total)
}
