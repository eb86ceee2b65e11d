package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Publisher line printed under every game title.
const Publisher = "CREATIVE COMPUTING MORRISTOWN, NEW JERSEY"

// Intro returns the game header for title. Printed with a trailing newline it
// leaves one blank line before the game starts.
func Intro(title string) string {
	return fmt.Sprintf("\n\n\t\t%s\n%s\n", title, Publisher)
}

// PrintBanner writes the gameinput logo to w. Colors follow the terminal profile
// of w, so piped output stays plain ASCII.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	lines := []struct {
		text  string
		color string
	}{
		{`   __ _  __ _ _ __ ___   ___`, "#818cf8"},
		{`  / _' |/ _' | '_ ' _ \ / _ \`, "#a78bfa"},
		{` | (_| | (_| | | | | | |  __/`, "#c084fc"},
		{`  \__, |\__,_|_| |_| |_|\___| input`, "#e879f9"},
		{`  |___/`, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
