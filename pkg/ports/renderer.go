package ports

// Renderer turns lesson Markdown into text ready for a given surface.
// The terminal adapter styles it with ANSI escapes; HTTP and MCP pass the
// Markdown through untouched.
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(string) (string, error)

func (f RendererFunc) Render(markdown string) (string, error) {
	return f(markdown)
}
