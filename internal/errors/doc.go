// Package errors provides structured, actionable error messages for the
// portico CLI.
//
// Each error has a unique code (e.g., "E101") that maps to a short message
// and a detailed explanation. Errors can carry a fix suggestion and wrap an
// underlying cause:
//
//	err := errors.New("E101").
//	    WithDetail(fmt.Sprintf("%q is not a valid directory name", name)).
//	    WithSuggestion("Use lowercase letters, digits, '-' and '_' only")
//
//	fmt.Println(err.Format())
package errors
