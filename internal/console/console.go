// Package console prints the human facing lines of the server: the startup
// banner, the bind failure diagnostic and the shutdown notice.
package console

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const separatorWidth = 50

var (
	title   = color.New(color.FgGreen, color.Bold)
	label   = color.New(color.FgCyan)
	failure = color.New(color.FgRed, color.Bold)
	hint    = color.New(color.FgYellow)
)

type Banner struct {
	Name string
	Addr net.Addr
	Root string
}

// URL is the address a local browser should open.
func (b Banner) URL() string {
	port := 0
	if tcp, ok := b.Addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return "http://localhost:" + strconv.Itoa(port)
}

func PrintBanner(w io.Writer, b Banner) {
	title.Fprintf(w, "%s started on %s\n", b.Name, b.URL())
	label.Fprint(w, "Root directory: ")
	fmt.Fprintln(w, b.Root)
	label.Fprint(w, "Open your browser at: ")
	fmt.Fprintln(w, b.URL())
	label.Fprint(w, "Press Ctrl+C to stop the server")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
}

// Hinter is implemented by errors that know how to remedy themselves.
type Hinter interface {
	Hint() string
}

func PrintError(w io.Writer, err error) {
	failure.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)

	var h Hinter
	if errors.As(err, &h) {
		hint.Fprintln(w, h.Hint())
	}
}

func PrintShutdown(w io.Writer, name string, served int64) {
	fmt.Fprintln(w)
	title.Fprintf(w, "%s stopped by user after %d request(s)\n", name, served)
}
