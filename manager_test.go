package portico

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

func staticApp(name, prefix, text string) *board.App {
	return board.New(name,
		board.WithPrefix(prefix),
		board.WithStaticLayout(el.Div(el.Text(text))),
	)
}

func TestAddViewMountsUnderPrefix(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	m.AddView(NewView(staticApp("First", "/", "first board")))
	m.AddView(NewView(staticApp("Second", "/two/", "second board")))

	for path, want := range map[string]string{
		"/":     "first board",
		"/two/": "second board",
	} {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("GET %s missing %q", path, want)
		}
	}
}

func TestMenuRegistrationOrder(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	m.AddView(NewView(staticApp("Zeta", "/z/", "z")))
	m.AddView(NewView(staticApp("Alpha", "/a/", "a")))

	menu := m.Menu(httptest.NewRequest(http.MethodGet, "/", nil))
	if len(menu) != 2 {
		t.Fatalf("got %d items, want 2", len(menu))
	}
	if menu[0].Name() != "Zeta" || menu[1].Name() != "Alpha" {
		t.Errorf("menu order should be registration order, got %q then %q", menu[0].Name(), menu[1].Name())
	}
}

func TestHiddenViewMountedButNotListed(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	m.AddView(NewView(staticApp("Ghost", "/ghost/", "boo"), Hidden()))

	if menu := m.Menu(httptest.NewRequest(http.MethodGet, "/", nil)); len(menu) != 0 {
		t.Errorf("hidden view should not appear in the menu, got %d items", len(menu))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ghost/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("hidden view should still be routable, status = %d", rec.Code)
	}
}

func TestCategoryCreatedLazily(t *testing.T) {
	icon := el.I(el.Class("bi", "bi-graph-up"))
	m := New(WithLogger(quietLogger()), WithCategoryIcon("Reports", icon))
	m.AddView(NewView(staticApp("Sales", "/sales/", "s"), WithCategory("Reports")))
	m.AddView(NewView(staticApp("Costs", "/costs/", "c"), WithCategory("Reports")))

	menu := m.Menu(httptest.NewRequest(http.MethodGet, "/", nil))
	if len(menu) != 1 {
		t.Fatalf("both views should share one category node, got %d top-level items", len(menu))
	}
	cat := menu[0]
	if !cat.IsCategory() || cat.Name() != "Reports" {
		t.Fatalf("top-level item should be the Reports category")
	}
	if cat.Icon() != icon {
		t.Errorf("category should pick up the registered icon")
	}
	children := cat.Children()
	if len(children) != 2 || children[0].Name() != "Sales" || children[1].Name() != "Costs" {
		t.Errorf("category children should follow registration order, got %v", children)
	}
}

func TestDuplicateRegistrationKept(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	v := NewView(staticApp("Twice", "/twice/", "t"))
	m.AddView(v)
	m.AddView(v)

	if got := len(m.Views()); got != 2 {
		t.Errorf("views = %d, want 2 (duplicates are the caller's problem)", got)
	}
	if got := len(m.Menu(httptest.NewRequest(http.MethodGet, "/", nil))); got != 2 {
		t.Errorf("menu items = %d, want 2", got)
	}
}

func TestRegisterBlueprint(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	m.RegisterBlueprint("/docs/", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("docs index"))
		})
		r.Get("/page", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("docs page"))
		})
	}, WithBlueprintName("Docs"))

	for path, want := range map[string]string{
		"/docs/":     "docs index",
		"/docs/page": "docs page",
	} {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), want) {
			t.Errorf("GET %s = %d %q, want %q", path, rec.Code, rec.Body.String(), want)
		}
	}

	menu := m.Menu(httptest.NewRequest(http.MethodGet, "/", nil))
	if len(menu) != 1 || menu[0].Name() != "Docs" || menu[0].URL() != "/docs/" {
		t.Errorf("blueprint menu entry wrong: %v", menu)
	}
}

func TestRegisterBlueprintAccessGate(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	m.RegisterBlueprint("/admin/", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("admin"))
		})
	},
		WithBlueprintName("Admin"),
		WithBlueprintAccess(func(r *http.Request) bool {
			return r.Header.Get("X-Role") == "admin"
		}),
	)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}

	if menu := m.Menu(httptest.NewRequest(http.MethodGet, "/", nil)); len(menu) != 0 {
		t.Errorf("gated blueprint should not be listed for anonymous requests")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.Header.Set("X-Role", "admin")
	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}
}

func TestAnonymousBlueprintNoMenuEntry(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	m.RegisterBlueprint("/api/", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("ok"))
		})
	})

	if menu := m.Menu(httptest.NewRequest(http.MethodGet, "/", nil)); len(menu) != 0 {
		t.Errorf("unnamed blueprint should be menu-less, got %d items", len(menu))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestConfigMerge(t *testing.T) {
	m := New(WithLogger(quietLogger()), WithConfig(Config{Name: "Suite"}))

	cfg := m.Config()
	if cfg.Name != "Suite" {
		t.Errorf("Name = %q, want Suite", cfg.Name)
	}
	if cfg.MetricsPath != "/metrics" {
		t.Errorf("unset fields should keep defaults, MetricsPath = %q", cfg.MetricsPath)
	}
}

func TestMenuLinks(t *testing.T) {
	m := New(WithLogger(quietLogger()))
	link := el.A(el.Href("https://example.com"), el.Text("Docs"))
	m.AddMenuLink(link)

	if got := m.MenuLinks(); len(got) != 1 || got[0] != link {
		t.Errorf("MenuLinks = %v", got)
	}
}

func TestExternalRouter(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/custom", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("custom"))
	})

	m := New(WithLogger(quietLogger()), WithRouter(r))
	m.AddView(NewView(staticApp("First", "/board/", "b")))

	for _, path := range []string{"/custom", "/board/"} {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestMountPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/two/", "/two"},
		{"/a/b/", "/a/b"},
	}
	for _, tt := range tests {
		if got := mountPattern(tt.in); got != tt.want {
			t.Errorf("mountPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
