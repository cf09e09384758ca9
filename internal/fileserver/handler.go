package fileserver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/static-server/internal/errors"
)

const (
	allowedMethods = "GET, HEAD, OPTIONS"
)

var DefaultIndexFiles = []string{"index.html", "index.htm"}

//go:generate options-gen -out-filename=handler_options.gen.go -from-struct=Options
type Options struct {
	logger     *zap.Logger `option:"mandatory" validate:"required"`
	resolver   *Resolver   `option:"mandatory" validate:"required"`
	indexFiles []string    `validate:"dive,required,excludesall=/\\"`
	listing    bool        `default:"true"`
}

// Handler serves files, index files and directory listings below the resolver root.
type Handler struct {
	lg         *zap.Logger
	resolver   *Resolver
	indexFiles []string
	listing    bool
}

func New(opts Options) (*Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	indexFiles := opts.indexFiles
	if len(indexFiles) == 0 {
		indexFiles = DefaultIndexFiles
	}

	return &Handler{
		lg:         opts.logger,
		resolver:   opts.resolver,
		indexFiles: indexFiles,
		listing:    opts.listing,
	}, nil
}

func (h *Handler) Serve(eCtx echo.Context) error {
	req := eCtx.Request()

	switch req.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodOptions:
		eCtx.Response().Header().Set(echo.HeaderAllow, allowedMethods)
		return eCtx.NoContent(http.StatusNoContent)
	default:
		eCtx.Response().Header().Set(echo.HeaderAllow, allowedMethods)
		return echo.ErrMethodNotAllowed
	}

	urlPath := req.URL.Path
	if urlPath == "" {
		urlPath = "/"
	}

	p, err := h.resolver.Resolve(urlPath)
	if err != nil {
		return notFound(err)
	}

	fi, err := os.Stat(p)
	if err != nil {
		return notFound(err)
	}

	if fi.IsDir() {
		return h.serveDir(eCtx, urlPath, p)
	}

	if !fi.Mode().IsRegular() || strings.HasSuffix(urlPath, "/") {
		return notFound(fmt.Errorf("%q is not a regular file: %w", urlPath, fs.ErrNotExist))
	}

	return h.serveFile(eCtx, p)
}

func (h *Handler) serveDir(eCtx echo.Context, urlPath, dir string) error {
	if !strings.HasSuffix(urlPath, "/") {
		target := url.URL{
			Path:     "/" + strings.TrimLeft(urlPath, "/") + "/",
			RawQuery: eCtx.Request().URL.RawQuery,
		}
		return eCtx.Redirect(http.StatusMovedPermanently, target.String())
	}

	for _, name := range h.indexFiles {
		p, err := h.resolver.Resolve(path.Join(urlPath, name))
		if err != nil {
			continue
		}
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return h.serveFile(eCtx, p)
		}
	}

	if !h.listing {
		return notFound(fmt.Errorf("listing of %q is disabled: %w", urlPath, fs.ErrNotExist))
	}

	return h.serveListing(eCtx, urlPath, dir)
}

func (h *Handler) serveFile(eCtx echo.Context, p string) (errReturned error) {
	f, err := os.Open(p)
	if err != nil {
		return notFound(err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(f))

	fi, err := f.Stat()
	if err != nil {
		return internalerrors.NewServerError(http.StatusInternalServerError, "cannot stat file", err)
	}

	ctype, err := contentType(f, p)
	if err != nil {
		h.lg.Error("detect content type", zap.String("path", p), zap.Error(err))
		return internalerrors.NewServerError(http.StatusInternalServerError, "cannot read file", err)
	}

	eCtx.Response().Header().Set(echo.HeaderContentType, ctype)
	http.ServeContent(eCtx.Response(), eCtx.Request(), fi.Name(), fi.ModTime(), f)
	return nil
}

// contentType guesses by extension and falls back to sniffing the content.
// The read offset of f is restored.
func contentType(f io.ReadSeeker, p string) (string, error) {
	if ctype := mime.TypeByExtension(filepath.Ext(p)); ctype != "" {
		return ctype, nil
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("sniff: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind: %w", err)
	}

	return mt.String(), nil
}

func notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return internalerrors.NewServerError(http.StatusNotFound, "File not found", err)
	}
	return internalerrors.NewServerError(http.StatusInternalServerError, "cannot access file", err)
}
