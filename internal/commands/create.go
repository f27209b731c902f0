package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gerunddev/interviewer/internal/diff"
	"github.com/gerunddev/interviewer/internal/interview"
	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
	"github.com/gerunddev/interviewer/internal/styles"
)

// CreateOptions configure a new interview note
type CreateOptions struct {
	// Date defaults to today
	Date   time.Time
	DryRun bool
}

// Create assembles a new interview note from the template and returns its
// vault relative path
func Create(ctx context.Context, e *Env, opts CreateOptions) (string, error) {
	date := opts.Date
	if date.IsZero() {
		date = e.Now()
	}

	// A missing template yields a note with just the tag
	var tmpl string
	lines, _, err := e.Vault.Read(e.Config.TemplatePath)
	switch {
	case err == nil:
		tmpl = lines.Join()
	case errors.Is(err, os.ErrNotExist):
		e.Log.NotFound("template", e.Config.TemplatePath)
		notice(e, "Template not found: "+e.Config.TemplatePath)
	default:
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	links := interview.Links(tmpl)
	notes, unresolved, err := e.Vault.Notes(ctx, links)
	if err != nil {
		return "", err
	}
	for _, link := range unresolved {
		e.Log.LinkUnresolved(link)
	}

	content := interview.AssembleAs(tmpl, notes, e.Source, e.Output, date)
	content = content + "\n\n" + e.Config.Tag()

	rel := notePath(e.Config.InterviewFolder, date)
	questions := len(question.Parse(note.Split(content), e.Output).Questions)

	if opts.DryRun {
		fmt.Fprint(e.Out, diff.Render(diff.Unified(rel, "", content)))
		return rel, nil
	}

	if err := e.Vault.Create(rel, content); err != nil {
		return "", fmt.Errorf("failed to create interview note: %w", err)
	}

	e.Log.NoteCreated(rel, questions, len(unresolved))
	success(e, fmt.Sprintf("Created %s with %d question(s)", rel, questions))
	if len(unresolved) > 0 {
		fmt.Fprintln(e.Out, styles.DimStyle.Render("  Unresolved links: "+strings.Join(unresolved, ", ")))
	}
	return rel, nil
}

// notePath is "<folder>/Interview <date>.md", relative to the vault
func notePath(folder string, date time.Time) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	name := "Interview " + date.Format(time.DateOnly) + ".md"
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}
