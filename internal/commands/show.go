package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Show renders a note for the terminal
func Show(ctx context.Context, e *Env, name string) error {
	_, lines, err := e.openNote(ctx, name, false)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fallback to the raw note if glamour fails
		fmt.Fprintln(e.Out, lines.Join())
		return nil
	}

	rendered, err := renderer.Render(lines.Join())
	if err != nil {
		fmt.Fprintln(e.Out, lines.Join())
		return nil
	}

	fmt.Fprint(e.Out, rendered)
	return nil
}
