package fileserver

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/static-server/internal/errors"
)

var listingPage = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Name}}</a></li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

type listingEntry struct {
	Name string
	Href string
}

func (h *Handler) serveListing(eCtx echo.Context, urlPath, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return internalerrors.NewServerError(http.StatusNotFound, "No permission to list directory", err)
		}
		return notFound(err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	list := make([]listingEntry, 0, len(entries))
	for _, e := range entries {
		list = append(list, h.listingEntry(dir, e))
	}

	var buf bytes.Buffer
	if err := listingPage.Execute(&buf, struct {
		Title   string
		Entries []listingEntry
	}{
		Title:   "Directory listing for " + urlPath,
		Entries: list,
	}); err != nil {
		return internalerrors.NewServerError(http.StatusInternalServerError, "cannot render listing", err)
	}

	return eCtx.HTMLBlob(http.StatusOK, buf.Bytes())
}

// listingEntry appends "/" to directories and "@" to symlinks, as the classic
// Python listing does. Directory symlinks link with a trailing slash.
func (h *Handler) listingEntry(dir string, e fs.DirEntry) listingEntry {
	name := e.Name()
	display, link := name, name

	isDir := e.IsDir()
	if e.Type()&fs.ModeSymlink != 0 {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			h.lg.Debug("dangling symlink", zap.String("dir", dir), zap.String("name", name), zap.Error(err))
		}
		isDir = err == nil && fi.IsDir()
		display = name + "@"
	}

	if isDir {
		link += "/"
		if e.Type()&fs.ModeSymlink == 0 {
			display += "/"
		}
	}

	return listingEntry{
		Name: display,
		Href: (&url.URL{Path: link}).String(),
	}
}
