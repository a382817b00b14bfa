// Package board provides the dashboard sub-application handle that portico
// mounts onto a shared server.
//
// An App owns a URL prefix, a per-request layout function, optional extra
// routes, and the external script/stylesheet lists its pages need. It knows
// nothing about the navigation shell; the portico manager replaces its
// layout through the Layout/SetLayout pair during embedding.
//
//	app := board.New("First Dashboard",
//	    board.WithLayout(func(r *http.Request) *el.VNode {
//	        return el.Div("This is First Dashboard")
//	    }),
//	)
package board
