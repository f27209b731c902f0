package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff of a note before and after an edit, or ""
// when the two are identical
func Unified(name, before, after string) string {
	if before == after {
		return ""
	}

	// A trailing newline keeps the last hunk readable
	before, after = withNewline(before), withNewline(after)

	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified("a/"+name, "b/"+name, before, edits))
}

// Render wraps a unified diff in a diff code fence and renders it with
// Glamour. Plain text is returned if rendering fails.
func Render(unified string) string {
	if unified == "" {
		return ""
	}

	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown
	}

	return rendered
}

func withNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
