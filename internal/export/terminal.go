package export

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the word-wrap width used when the caller passes 0.
const DefaultWidth = 100

// RenderTerminal styles Markdown for a terminal. Plain mode uses the
// colourless "notty" style for pipes and logs.
func RenderTerminal(markdown string, width int, plain bool) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
