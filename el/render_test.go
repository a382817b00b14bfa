package el

import (
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(Text("Hello, World!"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(Text("<script>alert('xss')</script>"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := Div(Data("payload", `"><img src=x>`))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div data-payload="&quot;&gt;&lt;img src=x&gt;"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := Div(Class("container"),
		H1(Text("Title")),
		P(Text("Content")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{
			name: "meta",
			node: Meta(Charset("utf-8")),
			want: `<meta charset="utf-8">`,
		},
		{
			name: "br",
			node: Br(),
			want: `<br>`,
		},
		{
			name: "link",
			node: LinkEl(Rel("stylesheet"), Href("/a.css")),
			want: `<link href="/a.css" rel="stylesheet">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := A(TitleAttr("t"), Href("/x"), Class("c"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a class="c" href="/x" title="t"></a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderBoolAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(Script(Src("/x.js"), Defer()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<script defer src="/x.js"></script>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}

	html, err = renderer.RenderToString(Button(AriaExpanded(false)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<button></button>` {
		t.Errorf("false bool attr should be omitted, got %q", html)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(Div(Raw("<b>bold</b>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div><b>bold</b></div>" {
		t.Errorf("raw content should pass through unescaped, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := Fragment(Span(Text("a")), Span(Text("b")))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>a</span><span>b</span>" {
		t.Errorf("fragment should render children without a wrapper, got %q", html)
	}
}

func TestRenderComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	greeting := Func(func() *VNode {
		return P(Text("hi"))
	})

	html, err := renderer.RenderToString(Div(greeting))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div><p>hi</p></div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	html, err := renderer.RenderToString(Div(Span(Text("x"))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil node should render empty, got %q", html)
	}
}
