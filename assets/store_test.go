package assets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"style.css", true, "style.css"},
		{"fonts/mono.woff2", true, "fonts/mono.woff2"},
		{"", false, ""},
		{"/etc/passwd", false, ""},
		{"../secret", false, ""},
		{"a/../../b", false, ""},
		{"./style.css", false, ""},
		{"a\\b", false, ""},
		{"a\x00b", false, ""},
	}

	for _, tt := range tests {
		got, ok := sanitize(tt.in)
		if ok != tt.ok {
			t.Errorf("sanitize(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirStore(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "style.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewDir(root)

	rc, contentType, err := store.Open(context.Background(), "style.css")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "body{}" {
		t.Errorf("content = %q", data)
	}
	if !strings.HasPrefix(contentType, "text/css") {
		t.Errorf("content type = %q, want text/css", contentType)
	}
}

func TestDirStoreMissing(t *testing.T) {
	store := NewDir(t.TempDir())

	if _, _, err := store.Open(context.Background(), "nope.css"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDirStoreRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	secret := filepath.Join(root, "..", "secret.txt")
	os.WriteFile(secret, []byte("x"), 0644)
	defer os.Remove(secret)

	store := NewDir(filepath.Join(root))
	if _, _, err := store.Open(context.Background(), "../secret.txt"); err != ErrNotFound {
		t.Errorf("traversal should be rejected, got %v", err)
	}
}

func TestDirStoreRejectsDirectory(t *testing.T) {
	root := t.TempDir()
	os.Mkdir(filepath.Join(root, "sub"), 0755)

	store := NewDir(root)
	if _, _, err := store.Open(context.Background(), "sub"); err != ErrNotFound {
		t.Errorf("directories should not be served, got %v", err)
	}
}

func TestHandlerServesAssets(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "app.js"), []byte("x()"), 0644)

	h := Handler(NewDir(root))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "x()" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Errorf("content type should be set")
	}
}

func TestHandlerHead(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "app.js"), []byte("x()"), 0644)

	h := Handler(NewDir(root))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/app.js", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD should not carry a body, got %d bytes", rec.Body.Len())
	}
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := Handler(NewDir(t.TempDir()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/app.js", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandlerNotFound(t *testing.T) {
	h := Handler(NewDir(t.TempDir()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.css", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
