package portico

import (
	"net/http"

	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

// Template is the pluggable look-and-feel strategy. It produces the page
// shell (navbar, container, footer) and may attach client-side behaviors to
// a sub-application during embedding. Implementations are stateless beyond a
// back-reference to the manager; every method may be called fresh on every
// request.
type Template interface {
	// Navbar builds the navigation markup from the accessible top-level
	// menu items and the extra link elements.
	Navbar(items []*MenuItem, links []*el.VNode, r *http.Request) *el.VNode

	// AppContainer composes navbar, page content, and footer into the shell.
	AppContainer(navbar, content, footer *el.VNode) *el.VNode

	// Footer builds the footer markup.
	Footer() *el.VNode

	// AddCallbacks registers client-side behaviors on the app (side effect
	// only). Called once per view during embedding.
	AddCallbacks(app *board.App)

	// ExternalScripts returns script URLs every embedded app needs.
	ExternalScripts() []string

	// ExternalStylesheets returns stylesheet URLs every embedded app needs.
	ExternalStylesheets() []string
}

// TemplateMode selects one of the built-in templates.
type TemplateMode int

const (
	// TemplateBootstrap is the minimalist Bootstrap-styled shell.
	TemplateBootstrap TemplateMode = iota

	// TemplateMantine is the richer themeable shell with a persisted
	// light/dark toggle.
	TemplateMantine
)

// newTemplate resolves a TemplateMode to a fresh strategy instance.
func newTemplate(mode TemplateMode) Template {
	switch mode {
	case TemplateMantine:
		return &MantineTemplate{}
	default:
		return &BootstrapTemplate{}
	}
}

// managerAware is implemented by templates that need a back-reference to the
// manager (e.g. to append extra links).
type managerAware interface {
	setManager(m *Manager)
}

// MenuSource is the read-only menu accessor the shell renders from. The
// manager implements it; passing it explicitly keeps the shell free of
// captured globals while still observing menu growth after embedding.
type MenuSource interface {
	Menu(r *http.Request) []*MenuItem
	MenuLinks() []*el.VNode
}

// appShell returns the layout function installed on an embedded app. It
// re-reads the current menu and links on every render and wraps the app's
// original content between navbar and footer.
func (m *Manager) appShell(v *View) board.RenderFunc {
	content := v.app.Layout()
	var src MenuSource = m
	return func(r *http.Request) *el.VNode {
		var inner *el.VNode
		if content != nil {
			inner = content(r)
		}
		navbar := m.template.Navbar(src.Menu(r), src.MenuLinks(), r)
		shell := m.template.AppContainer(navbar, inner, m.template.Footer())
		if m.reload != nil {
			return el.Fragment(shell, el.Raw(m.reload.ClientScript()))
		}
		return shell
	}
}
