package portico

import (
	"net/http"

	"github.com/portico-dev/portico/el"
)

// menuKind discriminates the three menu item kinds.
type menuKind uint8

const (
	menuCategory  menuKind = iota // named grouping with children
	menuView                      // leaf bound to a registered view
	menuBlueprint                 // leaf bound to an externally mounted route group
)

// MenuItem is a node in the navigation forest: either a category with
// children or a leaf pointing at a view or blueprint.
type MenuItem struct {
	name     string
	icon     *el.VNode
	parent   *MenuItem
	children []*MenuItem

	kind   menuKind
	view   *View                    // menuView leaves
	href   string                   // menuBlueprint leaves
	access func(*http.Request) bool // menuBlueprint leaves, optional
}

// NewCategory creates a category item.
func NewCategory(name string, icon *el.VNode) *MenuItem {
	return &MenuItem{name: name, icon: icon, kind: menuCategory}
}

// newViewItem creates a leaf bound to a view and links the view back to it.
func newViewItem(v *View) *MenuItem {
	item := &MenuItem{name: v.Name(), icon: v.Icon(), kind: menuView, view: v}
	v.menu = item
	return item
}

// newBlueprintItem creates a leaf carrying its own URL prefix.
func newBlueprintItem(name, urlPrefix string, icon *el.VNode, access func(*http.Request) bool) *MenuItem {
	return &MenuItem{name: name, icon: icon, kind: menuBlueprint, href: urlPrefix, access: access}
}

// Name returns the display name.
func (m *MenuItem) Name() string { return m.name }

// Icon returns the icon element, or nil.
func (m *MenuItem) Icon() *el.VNode { return m.icon }

// Parent returns the parent category, or nil for top-level items.
func (m *MenuItem) Parent() *MenuItem { return m.parent }

// IsCategory reports whether the item is a category.
func (m *MenuItem) IsCategory() bool { return m.kind == menuCategory }

// AddChild sets the child's parent link and appends it to the end of the
// children sequence. Display order is insertion order; children are never
// sorted.
func (m *MenuItem) AddChild(child *MenuItem) {
	child.parent = m
	m.children = append(m.children, child)
}

// Children returns the full child sequence, unfiltered. Accessibility
// filtering is the caller's responsibility.
func (m *MenuItem) Children() []*MenuItem { return m.children }

// AccessibleChildren returns the children whose accessibility is true for
// the given request.
func (m *MenuItem) AccessibleChildren(r *http.Request) []*MenuItem {
	out := make([]*MenuItem, 0, len(m.children))
	for _, c := range m.children {
		if c.IsAccessible(r) {
			out = append(out, c)
		}
	}
	return out
}

// URL returns "" for categories, the bound view's base path for view items,
// and the stored prefix for blueprint items.
func (m *MenuItem) URL() string {
	switch m.kind {
	case menuView:
		if m.view == nil {
			return ""
		}
		return m.view.Href()
	case menuBlueprint:
		return m.href
	default:
		return ""
	}
}

// IsAccessible evaluates accessibility for the given request. A category is
// accessible iff at least one child is; a view leaf asks the view's
// predicate; a blueprint leaf uses its own optional predicate and defaults
// to accessible.
func (m *MenuItem) IsAccessible(r *http.Request) bool {
	switch m.kind {
	case menuCategory:
		for _, c := range m.children {
			if c.IsAccessible(r) {
				return true
			}
		}
		return false
	case menuView:
		return m.view != nil && m.view.IsAccessible(r)
	default:
		if m.access != nil {
			return m.access(r)
		}
		return true
	}
}
