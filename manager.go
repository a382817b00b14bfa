package portico

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/portico-dev/portico/assets"
	"github.com/portico-dev/portico/el"
	"github.com/portico-dev/portico/internal/reload"
	"github.com/portico-dev/portico/middleware"
)

// Manager is the process-wide collection of mounted sub-applications. It
// owns the shared router, the menu forest, and the template strategy.
//
// All registration happens in a single-threaded startup phase; once Run (or
// Handler) has been called and traffic is flowing, the only access is
// reading, which is safe under concurrent request handling.
type Manager struct {
	router        chi.Router
	views         []*View
	menu          []*MenuItem
	categories    map[string]*MenuItem
	categoryIcons map[string]*el.VNode
	links         []*el.VNode
	template      Template
	config        Config
	logger        *slog.Logger

	scripts     []string
	stylesheets []string

	store  assets.Store
	reload *reload.Server

	handler http.Handler
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRouter mounts everything onto an externally-supplied chi router
// instead of a fresh one.
func WithRouter(r chi.Router) ManagerOption {
	return func(m *Manager) { m.router = r }
}

// WithTemplateMode selects one of the built-in templates.
func WithTemplateMode(mode TemplateMode) ManagerOption {
	return func(m *Manager) { m.template = newTemplate(mode) }
}

// WithTemplate supplies a custom template strategy.
func WithTemplate(t Template) ManagerOption {
	return func(m *Manager) { m.template = t }
}

// WithConfig overlays the given configuration onto the defaults.
func WithConfig(cfg Config) ManagerOption {
	return func(m *Manager) { m.config = m.config.merge(cfg) }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// WithCategoryIcon assigns an icon to a category before it is first created.
func WithCategoryIcon(category string, icon *el.VNode) ManagerOption {
	return func(m *Manager) { m.categoryIcons[category] = icon }
}

// WithScripts declares script URLs merged into every embedded app.
func WithScripts(urls ...string) ManagerOption {
	return func(m *Manager) { m.scripts = append(m.scripts, urls...) }
}

// WithStylesheets declares stylesheet URLs merged into every embedded app.
func WithStylesheets(urls ...string) ManagerOption {
	return func(m *Manager) { m.stylesheets = append(m.stylesheets, urls...) }
}

// WithAssetStore serves shared static assets under /assets/ from the given
// store (e.g. assets.NewS3). Takes precedence over Config.AssetsDir.
func WithAssetStore(s assets.Store) ManagerOption {
	return func(m *Manager) { m.store = s }
}

// New creates a Manager, wrapping or creating the shared router and
// selecting a template strategy (Bootstrap by default).
func New(opts ...ManagerOption) *Manager {
	m := &Manager{
		config:        DefaultConfig(),
		categories:    make(map[string]*MenuItem),
		categoryIcons: make(map[string]*el.VNode),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.router == nil {
		m.router = chi.NewRouter()
	}
	if m.template == nil {
		m.template = newTemplate(TemplateBootstrap)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if aware, ok := m.template.(managerAware); ok {
		aware.setManager(m)
	}

	if m.store == nil && m.config.AssetsDir != "" {
		m.store = assets.NewDir(m.config.AssetsDir)
	}
	if m.store != nil {
		m.router.Handle("/assets/*", http.StripPrefix("/assets/", assets.Handler(m.store)))
	}
	if m.config.Metrics {
		m.router.Handle(m.config.MetricsPath, promhttp.Handler())
	}

	return m
}

// Config returns the effective configuration.
func (m *Manager) Config() Config { return m.config }

// Router returns the shared router for advanced configuration.
func (m *Manager) Router() chi.Router { return m.router }

// Views returns the registered views in registration order.
func (m *Manager) Views() []*View { return m.views }

// AddView embeds the view, appends it to the collection, and - if the view
// is visible - inserts a menu item, lazily creating its category node.
//
// Registering the same view twice is not an error: both registrations
// appear in the collection and the menu. Deduplication is the caller's
// discipline, matching the original behavior.
func (m *Manager) AddView(v *View) {
	v.embed(m)
	m.views = append(m.views, v)
	m.logger.Info("view registered", "name", v.Name(), "path", v.Href(), "visible", v.Visible())
	if v.Visible() {
		m.AddMenuItem(newViewItem(v), v.Category())
	}
}

// AddMenuItem inserts a menu item. With a category name the item becomes a
// child of that category's node, created on first use (first creation also
// assigns the icon registered with WithCategoryIcon and appends the category
// to the forest). Without one the item is appended at the top level.
func (m *Manager) AddMenuItem(item *MenuItem, category string) {
	if category == "" {
		m.menu = append(m.menu, item)
		return
	}
	cat, ok := m.categories[category]
	if !ok {
		cat = NewCategory(category, m.categoryIcons[category])
		m.categories[category] = cat
		m.menu = append(m.menu, cat)
	}
	cat.AddChild(item)
}

// AddMenuLink appends an extra link element rendered at the end of the
// navbar (e.g. a theme toggle or an external href).
func (m *Manager) AddMenuLink(link *el.VNode) {
	m.links = append(m.links, link)
}

// Menu returns the top-level menu items whose accessibility evaluates true
// for the given request. Evaluated fresh on every call so per-request
// visibility (e.g. permission checks against the caller's identity) works.
func (m *Manager) Menu(r *http.Request) []*MenuItem {
	out := make([]*MenuItem, 0, len(m.menu))
	for _, item := range m.menu {
		if item.IsAccessible(r) {
			out = append(out, item)
		}
	}
	return out
}

// MenuLinks returns the extra link elements in registration order.
func (m *Manager) MenuLinks() []*el.VNode { return m.links }

// BlueprintOption configures RegisterBlueprint.
type BlueprintOption func(*blueprint)

type blueprint struct {
	name     string
	icon     *el.VNode
	category string
	access   func(*http.Request) bool
}

// WithBlueprintName adds a menu entry for the route group under this name.
func WithBlueprintName(name string) BlueprintOption {
	return func(b *blueprint) { b.name = name }
}

// WithBlueprintIcon sets the menu icon for the route group's entry.
func WithBlueprintIcon(icon *el.VNode) BlueprintOption {
	return func(b *blueprint) { b.icon = icon }
}

// WithBlueprintCategory places the route group's entry under a category.
func WithBlueprintCategory(category string) BlueprintOption {
	return func(b *blueprint) { b.category = category }
}

// WithBlueprintAccess gates the route group and its menu entry behind a
// predicate.
func WithBlueprintAccess(fn func(*http.Request) bool) BlueprintOption {
	return func(b *blueprint) { b.access = fn }
}

// RegisterBlueprint mounts an externally-defined route group directly on the
// shared router under the given prefix. The group is not a sub-application
// with its own layout, so it skips the embed pipeline; an optional menu
// entry is inserted when a name is supplied.
func (m *Manager) RegisterBlueprint(prefix string, register func(chi.Router), opts ...BlueprintOption) {
	var b blueprint
	for _, opt := range opts {
		opt(&b)
	}

	sub := chi.NewRouter()
	if b.access != nil {
		sub.Use(guardFunc(b.access))
	}
	register(sub)
	m.router.Mount(mountPattern(prefix), sub)
	m.logger.Info("blueprint registered", "path", prefix, "menu", b.name != "")

	if b.name != "" {
		m.AddMenuItem(newBlueprintItem(b.name, prefix, b.icon, b.access), b.category)
	}
}

// Handler returns the composed http.Handler: all mounted views, blueprints,
// assets, and - when enabled - metrics collection and tracing around the
// whole router.
func (m *Manager) Handler() http.Handler {
	if m.handler != nil {
		return m.handler
	}
	var h http.Handler = m.router
	if m.config.Metrics {
		h = middleware.Prometheus(middleware.WithNamespace("portico"))(h)
	}
	if m.config.Tracing {
		h = middleware.OpenTelemetry(middleware.WithTracerName("portico"))(h)
	}
	m.handler = h
	return h
}

// mountPattern converts a canonical prefix ("/", "/two/") into a chi mount
// pattern ("/", "/two").
func mountPattern(prefix string) string {
	p := strings.TrimSuffix(prefix, "/")
	if p == "" {
		return "/"
	}
	return p
}

var _ MenuSource = (*Manager)(nil)
