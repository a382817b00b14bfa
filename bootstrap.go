package portico

import (
	"net/http"

	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

// BootstrapTemplate is the minimalist built-in shell, styled with Bootstrap
// from a CDN. The navbar collapses behind a toggler on narrow viewports.
type BootstrapTemplate struct {
	manager *Manager
}

const bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css"

// collapseScript toggles the navbar on narrow viewports without pulling in
// the full Bootstrap JS bundle.
const collapseScript = `(function(){
  var t = document.querySelector('[data-portico-toggler]');
  var c = document.getElementById('portico-navbar');
  if (t && c) {
    t.addEventListener('click', function(){ c.classList.toggle('show'); });
  }
  document.querySelectorAll('.dropdown-toggle').forEach(function(d){
    d.addEventListener('click', function(e){
      e.preventDefault();
      d.parentElement.querySelector('.dropdown-menu').classList.toggle('show');
    });
  });
})();`

func (t *BootstrapTemplate) setManager(m *Manager) { t.manager = m }

// Navbar builds a Bootstrap navbar from the accessible menu items.
func (t *BootstrapTemplate) Navbar(items []*MenuItem, links []*el.VNode, r *http.Request) *el.VNode {
	brand := "Portico"
	if t.manager != nil {
		brand = t.manager.Config().Name
	}

	entries := el.Map(items, func(item *MenuItem) *el.VNode {
		if item.IsCategory() {
			return t.dropdown(item, r)
		}
		return el.Li(el.Class("nav-item"),
			el.A(el.Class("nav-link"), el.Href(item.URL()), t.label(item)),
		)
	})

	extra := el.Map(links, func(link *el.VNode) *el.VNode {
		return el.Li(el.Class("nav-item"), link)
	})

	return el.Nav(el.Class("navbar", "navbar-expand-lg", "bg-body-tertiary"),
		el.Div(el.Class("container-fluid"),
			el.A(el.Class("navbar-brand"), el.Href("/"), brand),
			el.Button(el.Class("navbar-toggler"), el.TypeAttr("button"),
				el.Data("portico-toggler", "1"),
				el.AriaControls("portico-navbar"), el.AriaLabel("Toggle navigation"),
				el.Span(el.Class("navbar-toggler-icon")),
			),
			el.Div(el.Class("collapse", "navbar-collapse"), el.ID("portico-navbar"),
				el.Ul(el.Class("navbar-nav", "me-auto"), entries),
				el.Ul(el.Class("navbar-nav", "ms-auto"), extra),
			),
		),
	)
}

// dropdown renders a category as a Bootstrap dropdown of its accessible children.
func (t *BootstrapTemplate) dropdown(item *MenuItem, r *http.Request) *el.VNode {
	children := el.Map(item.AccessibleChildren(r), func(child *MenuItem) *el.VNode {
		return el.Li(el.A(el.Class("dropdown-item"), el.Href(child.URL()), t.label(child)))
	})
	return el.Li(el.Class("nav-item", "dropdown"),
		el.A(el.Class("nav-link", "dropdown-toggle"), el.Href("#"),
			el.Role("button"), el.AriaExpanded(false), el.AriaHasPopup("true"),
			t.label(item),
		),
		el.Ul(el.Class("dropdown-menu"), children),
	)
}

func (t *BootstrapTemplate) label(item *MenuItem) *el.VNode {
	if icon := item.Icon(); icon != nil {
		return el.Fragment(icon, " "+item.Name())
	}
	return el.Text(item.Name())
}

// AppContainer composes the shell.
func (t *BootstrapTemplate) AppContainer(navbar, content, footer *el.VNode) *el.VNode {
	return el.Div(el.Class("portico-app"),
		navbar,
		el.Main(el.Class("container", "py-3"), content),
		footer,
	)
}

// Footer builds the footer markup.
func (t *BootstrapTemplate) Footer() *el.VNode {
	return el.Footer(el.Class("footer", "mt-auto", "py-3", "text-center"),
		el.Small(el.Class("text-body-secondary"), "Served with Portico"),
	)
}

// AddCallbacks registers the navbar collapse behavior on the app.
func (t *BootstrapTemplate) AddCallbacks(app *board.App) {
	app.AddInlineScript(collapseScript)
}

// ExternalScripts returns script URLs every embedded app needs.
func (t *BootstrapTemplate) ExternalScripts() []string { return nil }

// ExternalStylesheets returns stylesheet URLs every embedded app needs.
func (t *BootstrapTemplate) ExternalStylesheets() []string {
	return []string{bootstrapCSS}
}
