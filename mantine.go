package portico

import (
	"net/http"

	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

// MantineTemplate is the richer built-in shell: self-contained styling via
// CSS variables and a light/dark theme toggle persisted in the client's
// local storage. The theme is threaded through a provider element wrapping
// the whole shell, so sub-app content can style against it too.
type MantineTemplate struct {
	manager   *Manager
	linkAdded bool
}

// themeScript applies the persisted theme on load and flips it on toggle.
const themeScript = `(function(){
  var key = 'portico-color-scheme';
  var provider = document.getElementById('portico-provider');
  if (!provider) { return; }
  var saved = localStorage.getItem(key);
  if (saved === 'dark' || saved === 'light') {
    provider.setAttribute('data-theme', saved);
  }
  var toggle = document.getElementById('portico-theme-toggle');
  if (toggle) {
    toggle.addEventListener('click', function(e){
      e.preventDefault();
      var next = provider.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
      provider.setAttribute('data-theme', next);
      localStorage.setItem(key, next);
    });
  }
})();`

const mantineCSS = `#portico-provider{--p-bg:#ffffff;--p-fg:#1a1b1e;--p-nav:#f1f3f5;--p-accent:#228be6;
background:var(--p-bg);color:var(--p-fg);min-height:100vh;font-family:system-ui,sans-serif}
#portico-provider[data-theme=dark]{--p-bg:#1a1b1e;--p-fg:#c1c2c5;--p-nav:#141517;--p-accent:#4dabf7}
.p-navbar{display:flex;align-items:center;gap:1rem;padding:.6rem 1rem;background:var(--p-nav)}
.p-navbar a{color:var(--p-fg);text-decoration:none}
.p-navbar .p-brand{font-weight:600;color:var(--p-accent)}
.p-menu{display:flex;gap:.75rem;list-style:none;margin:0;padding:0;flex:1}
.p-links{display:flex;gap:.75rem;list-style:none;margin:0;padding:0}
.p-category>ul{display:none;position:absolute;background:var(--p-nav);list-style:none;
margin:0;padding:.4rem .6rem;border-radius:4px}
.p-category:hover>ul{display:block}
.p-content{padding:1rem}
.p-footer{padding:.75rem 1rem;text-align:center;opacity:.7}`

func (t *MantineTemplate) setManager(m *Manager) { t.manager = m }

// Navbar builds the themed navbar from the accessible menu items.
func (t *MantineTemplate) Navbar(items []*MenuItem, links []*el.VNode, r *http.Request) *el.VNode {
	brand := "Portico"
	if t.manager != nil {
		brand = t.manager.Config().Name
	}

	entries := el.Map(items, func(item *MenuItem) *el.VNode {
		if item.IsCategory() {
			children := el.Map(item.AccessibleChildren(r), func(child *MenuItem) *el.VNode {
				return el.Li(el.A(el.Href(child.URL()), t.label(child)))
			})
			return el.Li(el.Class("p-category"),
				el.Span(t.label(item)),
				el.Ul(children),
			)
		}
		return el.Li(el.A(el.Href(item.URL()), t.label(item)))
	})

	extra := el.Map(links, func(link *el.VNode) *el.VNode {
		return el.Li(link)
	})

	return el.Nav(el.Class("p-navbar"),
		el.A(el.Class("p-brand"), el.Href("/"), brand),
		el.Ul(el.Class("p-menu"), entries),
		el.Ul(el.Class("p-links"), extra),
	)
}

func (t *MantineTemplate) label(item *MenuItem) *el.VNode {
	if icon := item.Icon(); icon != nil {
		return el.Fragment(icon, " "+item.Name())
	}
	return el.Text(item.Name())
}

// AppContainer wraps the shell in the theme provider element.
func (t *MantineTemplate) AppContainer(navbar, content, footer *el.VNode) *el.VNode {
	return el.Div(el.ID("portico-provider"), el.Data("theme", "light"),
		el.Style(el.Raw(mantineCSS)),
		navbar,
		el.Main(el.Class("p-content"), content),
		footer,
	)
}

// Footer builds the footer markup.
func (t *MantineTemplate) Footer() *el.VNode {
	return el.Footer(el.Class("p-footer"),
		el.Small("Served with Portico"),
	)
}

// AddCallbacks registers the theme behavior on the app and, on first use,
// appends the toggle link to the manager's extra links so every navbar
// carries it.
func (t *MantineTemplate) AddCallbacks(app *board.App) {
	app.AddInlineScript(themeScript)
	if t.manager != nil && !t.linkAdded {
		t.linkAdded = true
		t.manager.AddMenuLink(
			el.A(el.ID("portico-theme-toggle"), el.Href("#"),
				el.AriaLabel("Toggle color scheme"), "◑"),
		)
	}
}

// ExternalScripts returns script URLs every embedded app needs.
func (t *MantineTemplate) ExternalScripts() []string { return nil }

// ExternalStylesheets returns stylesheet URLs every embedded app needs.
func (t *MantineTemplate) ExternalStylesheets() []string { return nil }
