package fileserver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned for paths escaping the root. It matches fs.ErrNotExist
// so callers answer it exactly like a missing file.
var ErrOutsideRoot = fmt.Errorf("path is outside of root: %w", fs.ErrNotExist)

// Resolver maps URL paths onto files below a fixed root directory.
type Resolver struct {
	root string
}

func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("absolute root: %v", err)
	}

	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("eval root symlinks: %w", err)
	}

	fi, err := os.Stat(real)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	return &Resolver{root: real}, nil
}

func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the real filesystem path for an already unescaped URL path.
// Dot segments are collapsed against "/" first, and symlinks are followed and
// the target re-checked, so no result can lie outside the root.
func (r *Resolver) Resolve(urlPath string) (string, error) {
	if strings.ContainsRune(urlPath, 0) {
		return "", ErrOutsideRoot
	}

	// A separator other than "/" would bypass path.Clean.
	if filepath.Separator != '/' && strings.ContainsRune(urlPath, filepath.Separator) {
		return "", ErrOutsideRoot
	}

	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if rel == "" {
		rel = "."
	}
	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", ErrOutsideRoot
	}

	real, err := filepath.EvalSymlinks(filepath.Join(r.root, rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", err
		}
		// ENOTDIR and friends: some prefix of the path is a regular file.
		return "", fmt.Errorf("%v: %w", err, fs.ErrNotExist)
	}

	if !r.contains(real) {
		return "", ErrOutsideRoot
	}

	return real, nil
}

func (r *Resolver) contains(p string) bool {
	rel, err := filepath.Rel(r.root, p)
	if err != nil {
		return false
	}
	return filepath.IsLocal(rel)
}
