package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"       _                              ", "#fbbf24"},
	{"      (_)___  __ _ _   _  ___ _ __ _   _ ", "#f59e0b"},
	{"      | / __|/ _` | | | |/ _ \\ '__| | | |", "#f97316"},
	{"      | \\__ \\ (_| | |_| |  __/ |  | |_| |", "#ef4444"},
	{"     _/ |___/\\__, |\\__,_|\\___|_|   \\__, |", "#0ea5e9"},
	{"    |__/        |_|                |___/ ", "#0769ad"},
}

// PrintBanner writes the jsquery banner to w, colored for the terminal profile.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
