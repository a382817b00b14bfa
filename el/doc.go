// Package el provides the HTML element tree used by portico shells and
// board layouts.
//
// Elements are built with variadic constructors that accept attributes,
// child nodes, components, and strings (shorthand for text nodes):
//
//	el.Nav(el.Class("navbar"),
//	    el.A(el.Href("/"), "Home"),
//	    el.A(el.Href("/two/"), "Second"),
//	)
//
// Trees are rendered to HTML with a Renderer. Text content and attribute
// values are escaped; use Raw only for trusted markup.
package el
