package portico

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

// View wraps one board.App with its registration metadata. A View lives for
// the life of the manager; its only mutation after construction is the
// one-time embed step.
type View struct {
	app *board.App

	name     string
	category string
	icon     *el.VNode
	visible  bool
	access   func(*http.Request) bool

	menu     *MenuItem
	embedded bool
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithName overrides the display name (defaults to the app's name).
func WithName(name string) ViewOption {
	return func(v *View) { v.name = name }
}

// WithCategory places the view under a two-level menu category.
func WithCategory(category string) ViewOption {
	return func(v *View) { v.category = category }
}

// WithIcon sets the menu icon element.
func WithIcon(icon *el.VNode) ViewOption {
	return func(v *View) { v.icon = icon }
}

// Hidden registers the view without a menu entry. The view's routes are
// still mounted and gated.
func Hidden() ViewOption {
	return func(v *View) { v.visible = false }
}

// WithAccessFunc sets the accessibility predicate consulted on every request
// to the view's routes and on every menu render. The default is always-true;
// the host application overrides it to consult whatever identity mechanism
// it manages.
func WithAccessFunc(fn func(*http.Request) bool) ViewOption {
	return func(v *View) { v.access = fn }
}

// NewView wraps a board.App for registration.
func NewView(app *board.App, opts ...ViewOption) *View {
	v := &View{
		app:     app,
		name:    app.Name(),
		visible: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// App returns the underlying sub-application.
func (v *View) App() *board.App { return v.app }

// Name returns the display name.
func (v *View) Name() string { return v.name }

// Category returns the menu category, or "".
func (v *View) Category() string { return v.category }

// Icon returns the menu icon, or nil.
func (v *View) Icon() *el.VNode { return v.icon }

// Visible reports whether the view gets a menu entry.
func (v *View) Visible() bool { return v.visible }

// Href returns the view's base path, derived from the app's URL prefix.
func (v *View) Href() string { return v.app.Prefix() }

// IsAccessible evaluates the accessibility predicate for the request.
func (v *View) IsAccessible(r *http.Request) bool {
	if v.access == nil {
		return true
	}
	return v.access(r)
}

// SetAccessFunc replaces the accessibility predicate. Menu accessibility is
// evaluated fresh on every render, so the change takes effect immediately.
func (v *View) SetAccessFunc(fn func(*http.Request) bool) { v.access = fn }

// embed wires the view into the manager. Performed exactly once per
// registration:
//
//  1. merge the view's asset lists with the manager-level and template-level
//     lists (concatenation, not deduplication - duplicate URLs may appear,
//     preserved as a known limitation of the original behavior);
//  2. derive the page title from display name and category;
//  3. mount the app's routes onto the shared router, gated by the
//     accessibility predicate;
//  4. replace the app's root layout with the dynamic shell and let the
//     template register its client-side callbacks.
//
// None of these steps is expected to fail under normal use; an error from
// the underlying framework surfaces at startup, before traffic is served.
func (v *View) embed(m *Manager) {
	if v.embedded {
		return
	}
	v.embedded = true

	v.app.AddStylesheets(m.stylesheets...)
	v.app.AddStylesheets(m.template.ExternalStylesheets()...)
	v.app.AddScripts(m.scripts...)
	v.app.AddScripts(m.template.ExternalScripts()...)

	title := v.name
	if v.category != "" {
		title = v.category + " - " + v.name
	}
	v.app.SetTitle(title)

	sub := chi.NewRouter()
	sub.Use(accessGuard(v))
	v.app.Mount(sub)
	m.router.Mount(mountPattern(v.Href()), sub)

	v.app.SetLayout(m.appShell(v))
	m.template.AddCallbacks(v.app)
}
