package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// useColor reports whether w is a terminal that can render ANSI colors.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes errs to w, one per line, colorized when w is a terminal.
func Print(w io.Writer, errs []*DiagnosticError) {
	PrintColor(w, errs, "auto")
}

// PrintColor is Print with an explicit color mode: "always", "never" or
// "auto" (detect from w).
func PrintColor(w io.Writer, errs []*DiagnosticError, mode string) {
	var color bool
	switch mode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		color = useColor(w)
	}
	for _, err := range errs {
		if color {
			fmt.Fprintf(w, "- %s%s%s\n", ansiRed, err.Error(), ansiReset)
		} else {
			fmt.Fprintf(w, "- %s\n", err.Error())
		}
	}
}
