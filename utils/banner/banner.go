// Package banner draws the self-check banner and build metadata.
package banner

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/hermetic-selfcheck/model"
	"github.com/thirukguru/hermetic-selfcheck/utils/ansi"
	"golang.org/x/term"
)

const tableTitle = "Hermetic toolchain self-check"

// DrawBanner writes the banner text followed by a newline.
func DrawBanner(w io.Writer, b model.Banner) error {
	_, err := fmt.Fprintln(w, b.Text)
	return err
}

// DrawBannerTable renders the banner lines and inspection commands in a table.
// On a terminal the commands are highlighted and rows are clipped to its width.
func DrawBannerTable(w io.Writer, b model.Banner) error {
	f, width := terminal(w)
	if f != nil {
		ansi.EnableANSI(f)
	}

	t := table.NewWriter()
	t.SetTitle(tableTitle)
	t.AppendHeader(table.Row{"#", "Message"})

	for i, line := range b.Lines {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), line})
	}

	t.AppendSeparator()

	for _, cmd := range b.Commands {
		if f != nil {
			cmd = text.FgCyan.Sprint(cmd)
		}
		t.AppendRow(table.Row{"$", cmd})
	}

	t.SetStyle(table.StyleRounded)
	if width > 0 {
		t.SetAllowedRowLength(width)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// DrawVersion writes the build metadata of the named program.
func DrawVersion(w io.Writer, name string, info model.VersionInfo) error {
	_, err := fmt.Fprintf(w, "%s version %s\ncommit: %s\nbuilt at: %s\n", name, info.Version, info.Commit, info.Date)
	return err
}

// terminal returns the file behind w and its width when w is a terminal.
func terminal(w io.Writer) (*os.File, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return f, 0
	}

	return f, width
}
