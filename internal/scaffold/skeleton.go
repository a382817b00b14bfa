package scaffold

// skeleton maps project-relative paths to file content templates. Templates
// receive a Config.
var skeleton = map[string]string{
	"main.go": `package main

import (
	"log"

	"{{.ModulePath}}/app"
)

func main() {
	manager := app.New()

	// Debug mode serves live reload and verbose logs. Use a real HTTP
	// server in production instead of Run.
	if err := manager.Run("", "", true); err != nil {
		log.Fatal(err)
	}
}
`,

	"app/config.go": `package app

import "github.com/portico-dev/portico"

// Applications need some kind of configuration. There are different settings
// you might want to change depending on the application environment, like
// toggling debug mode or pointing at another assets directory.

// Config is the suite configuration.
var Config = portico.Config{
	Name:      "{{.ProjectName}}",
	AssetsDir: "assets",
}
`,

	"app/server.go": `package app

import (
	"github.com/portico-dev/portico"

	"{{.ModulePath}}/app/views/firstboard"
	"{{.ModulePath}}/app/views/secondboard"
)

// New is the application factory. It returns a configured manager instead
// of instantiating one in the global scope.
func New() *portico.Manager {
	manager := portico.New(
		portico.WithTemplateMode(portico.TemplateBootstrap),
		portico.WithConfig(Config),
	)

	// Add dashboards. Registration order is menu order.
	manager.AddView(firstboard.New())
	manager.AddView(secondboard.New())

	return manager
}
`,

	"app/views/firstboard/board.go": `package firstboard

import (
	"net/http"

	"github.com/portico-dev/portico"
	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

func New() *portico.View {
	app := board.New("First Dashboard",
		board.WithLayout(func(r *http.Request) *el.VNode {
			return el.Div(el.Text("This is First Dashboard"))
		}),
	)

	return portico.NewView(app)
}
`,

	"app/views/secondboard/board.go": `package secondboard

import (
	"net/http"

	"github.com/portico-dev/portico"
	"github.com/portico-dev/portico/board"
	"github.com/portico-dev/portico/el"
)

func New() *portico.View {
	app := board.New("Second Dashboard",
		board.WithPrefix("/two/"),
		board.WithLayout(func(r *http.Request) *el.VNode {
			return el.Div(el.Text("This is Second Dashboard"))
		}),
	)

	return portico.NewView(app)
}
`,

	"go.mod": `module {{.ModulePath}}

go 1.23

require github.com/portico-dev/portico v0.1.0
`,
}
