// Package assets serves the project-wide static assets every dashboard
// shares (icons, fonts, extra stylesheets) from a pluggable store.
package assets

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"
)

// Store resolves an asset name to its content and content type.
type Store interface {
	// Open returns the asset's reader and content type. The caller closes
	// the reader. A missing asset returns ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// ErrNotFound is returned by stores for unknown assets.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "asset not found" }

// Handler serves GET/HEAD requests for assets from the store. The request
// path (with leading slash stripped) is the asset name.
func Handler(s Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		name, ok := sanitize(strings.TrimPrefix(r.URL.Path, "/"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		rc, contentType, err := s.Open(r.Context(), name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer rc.Close()

		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		if r.Method == http.MethodHead {
			return
		}
		io.Copy(w, rc)
	})
}

// sanitize returns a safe relative asset name. It rejects traversal and
// absolute-path tricks so no store can be asked to escape its root.
func sanitize(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// A leading "/" indicates an absolute-path attempt
	// (e.g. "/assets//etc/passwd" => "/etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away" traversal
	// attempts and changing the meaning of the request path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	return clean, true
}
