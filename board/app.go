package board

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/portico-dev/portico/el"
)

// RenderFunc produces the page content for one request.
type RenderFunc func(r *http.Request) *el.VNode

// route is one extra HTTP route declared by the app.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// App is one dashboard sub-application.
//
// Apps are built during the registration phase and must not be mutated once
// the server is accepting requests.
type App struct {
	name   string
	prefix string
	title  string
	layout RenderFunc

	routes      []route
	scripts     []string
	stylesheets []string
	inline      []string

	logger *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithPrefix sets the URL prefix the app is mounted under (default "/").
// The prefix is canonicalized to carry both a leading and a trailing slash.
func WithPrefix(prefix string) Option {
	return func(a *App) { a.prefix = canonicalPrefix(prefix) }
}

// WithLayout sets the root layout function.
func WithLayout(layout RenderFunc) Option {
	return func(a *App) { a.layout = layout }
}

// WithStaticLayout sets a fixed root content tree.
func WithStaticLayout(node *el.VNode) Option {
	return func(a *App) {
		a.layout = func(*http.Request) *el.VNode { return node }
	}
}

// WithTitle sets the page title (defaults to the app name).
func WithTitle(title string) Option {
	return func(a *App) { a.title = title }
}

// WithScripts declares external script URLs the app's pages need.
func WithScripts(urls ...string) Option {
	return func(a *App) { a.scripts = append(a.scripts, urls...) }
}

// WithStylesheets declares external stylesheet URLs the app's pages need.
func WithStylesheets(urls ...string) Option {
	return func(a *App) { a.stylesheets = append(a.stylesheets, urls...) }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// New creates an App with the given display name.
func New(name string, opts ...Option) *App {
	a := &App{
		name:   name,
		prefix: "/",
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.title == "" {
		a.title = name
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Name returns the app's display name.
func (a *App) Name() string { return a.name }

// Prefix returns the canonical URL prefix, e.g. "/" or "/two/".
func (a *App) Prefix() string { return a.prefix }

// Title returns the page title.
func (a *App) Title() string { return a.title }

// SetTitle overrides the page title.
func (a *App) SetTitle(title string) { a.title = title }

// Layout returns the current root layout function.
func (a *App) Layout() RenderFunc { return a.layout }

// SetLayout replaces the root layout function. The portico manager uses this
// to install the navigation shell around the original content.
func (a *App) SetLayout(layout RenderFunc) { a.layout = layout }

// Scripts returns the external script URLs in declaration order.
func (a *App) Scripts() []string { return a.scripts }

// Stylesheets returns the external stylesheet URLs in declaration order.
func (a *App) Stylesheets() []string { return a.stylesheets }

// AddScripts appends external script URLs. Duplicates are kept; load order
// is preserved.
func (a *App) AddScripts(urls ...string) { a.scripts = append(a.scripts, urls...) }

// AddStylesheets appends external stylesheet URLs. Duplicates are kept.
func (a *App) AddStylesheets(urls ...string) { a.stylesheets = append(a.stylesheets, urls...) }

// AddInlineScript appends a script body emitted at the end of each document.
func (a *App) AddInlineScript(body string) { a.inline = append(a.inline, body) }

// InlineScripts returns the registered inline script bodies.
func (a *App) InlineScripts() []string { return a.inline }

// Page registers an additional page under the app's prefix. The pattern is
// relative to the prefix ("/detail" mounts at prefix+"detail").
func (a *App) Page(pattern string, render RenderFunc) {
	a.routes = append(a.routes, route{
		method:  http.MethodGet,
		pattern: pattern,
		handler: func(w http.ResponseWriter, r *http.Request) {
			a.writeDocument(w, r, render)
		},
	})
}

// Handle registers a raw HTTP handler under the app's prefix.
func (a *App) Handle(method, pattern string, handler http.HandlerFunc) {
	a.routes = append(a.routes, route{method: method, pattern: pattern, handler: handler})
}

// Mount registers the app's routes on the given router. The router is
// expected to be rooted at the app's prefix.
func (a *App) Mount(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		a.writeDocument(w, req, a.layout)
	})
	for _, rt := range a.routes {
		r.Method(rt.method, rt.pattern, rt.handler)
	}
}

// writeDocument renders a full HTML document around the given content.
func (a *App) writeDocument(w http.ResponseWriter, r *http.Request, render RenderFunc) {
	if render == nil {
		a.logger.Error("app has no layout", "app", a.name)
		http.Error(w, "app has no layout", http.StatusInternalServerError)
		return
	}

	head := []any{
		el.Meta(el.Charset("utf-8")),
		el.Meta(el.Name("viewport"), el.Content("width=device-width, initial-scale=1")),
		el.Title(a.title),
	}
	for _, href := range a.stylesheets {
		head = append(head, el.LinkEl(el.Rel("stylesheet"), el.Href(href)))
	}

	body := []any{render(r)}
	for _, src := range a.scripts {
		body = append(body, el.Script(el.Src(src)))
	}
	for _, code := range a.inline {
		body = append(body, el.Script(el.Raw(code)))
	}

	doc := el.Html(el.Lang("en"), el.Head(head...), el.Body(body...))

	renderer := el.NewRenderer(el.RendererConfig{})
	html, err := renderer.RenderToString(doc)
	if err != nil {
		a.logger.Error("render failed", "app", a.name, "error", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<!DOCTYPE html>\n"))
	w.Write([]byte(html))
}

// canonicalPrefix normalizes a URL prefix to carry leading and trailing slashes.
func canonicalPrefix(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p = p + "/"
	}
	return p
}
