package topics

// Renderer formats topic content for display. format is the topic file's
// extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics unchanged
type PlainRenderer struct{}

// Render returns content as-is
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
