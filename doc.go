// Package portico combines multiple dashboard sub-applications on a single
// server.
//
// A Manager owns the shared router, the registered views, and the menu
// forest. Each view wraps a board.App; registering it mounts the app's
// routes under its URL prefix, replaces its root layout with a navigation
// shell, and gates its routes behind the view's accessibility predicate.
//
//	m := portico.New(portico.WithTemplateMode(portico.TemplateBootstrap))
//	m.AddView(portico.NewView(first))
//	m.AddView(portico.NewView(second, portico.WithCategory("Reports")))
//	m.Run("", "", true)
//
// The shell is rebuilt on every request, so menu changes made after a view
// was embedded are still reflected.
package portico
