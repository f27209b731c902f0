package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gerunddev/interviewer/internal/diff"
	"github.com/gerunddev/interviewer/internal/interview"
	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
	"github.com/gerunddev/interviewer/internal/styles"
	"github.com/gerunddev/interviewer/internal/tui"
	"github.com/gerunddev/interviewer/internal/vault"
)

// Item is a question together with the section it sits in
type Item = tui.Item

func editAnswer(questionText, initial string) (string, bool, error) {
	return tui.EditAnswer(questionText, initial)
}

func pickQuestion(title string, items []Item) (Item, bool, error) {
	return tui.PickQuestion(title, items)
}

// openNote resolves a note name and reads it. Unless forced, notes without
// the interview tag are refused.
func (e *Env) openNote(ctx context.Context, name string, requireTag bool) (string, note.Lines, error) {
	rel, err := e.Vault.Resolve(ctx, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			e.Log.NotFound("note", name)
		}
		return "", nil, err
	}

	lines, _, err := e.Vault.Read(rel)
	if err != nil {
		return "", nil, err
	}

	if requireTag && !e.Force {
		if err := vault.RequireTag(lines, e.Config.Tag()); err != nil {
			return "", nil, fmt.Errorf("%s: %w (use --force to edit anyway)", rel, err)
		}
	}

	e.logIssues(rel, lines)
	return rel, lines, nil
}

// apply runs fn over a note. In a dry run the change is printed as a diff
// instead of being written.
func (e *Env) apply(rel string, dryRun bool, fn func(note.Lines) (note.Lines, error)) (bool, error) {
	if dryRun {
		lines, _, err := e.Vault.Read(rel)
		if err != nil {
			return false, err
		}
		updated, err := fn(lines.Clone())
		if err != nil {
			return false, err
		}
		unified := diff.Unified(rel, lines.Join(), updated.Join())
		if unified == "" {
			fmt.Fprintln(e.Out, styles.DimStyle.Render("No changes"))
			return false, nil
		}
		fmt.Fprint(e.Out, diff.Render(unified))
		return true, nil
	}

	start := time.Now()
	changed, err := e.Vault.Update(rel, fn)
	if err != nil {
		if !errors.Is(err, interview.ErrNotFound) {
			e.Log.FileError(rel, err)
		}
		return false, err
	}
	if changed {
		e.Log.NoteWritten(rel, time.Since(start))
	}
	return changed, nil
}

func (e *Env) logIssues(rel string, lines note.Lines) {
	for _, issue := range question.Parse(lines, e.Source).Issues {
		e.Log.ParseIssue(rel, issue)
	}
}

// items lists every complete question in lines with its section
func items(lines note.Lines, d question.Dialect) []Item {
	var out []Item

	sections := note.Sections(lines)
	bounds := []note.Section{{Start: -1, End: len(lines)}}
	if len(sections) > 0 {
		bounds[0].End = sections[0].Start
	}
	bounds = append(bounds, sections...)

	for _, sec := range bounds {
		body := lines[sec.Start+1 : sec.End]
		for _, q := range question.Parse(body, d).Questions {
			out = append(out, Item{Section: sec.Heading, Question: q})
		}
	}
	return out
}

func success(e *Env, msg string) {
	fmt.Fprintln(e.Out, styles.SuccessStyle.Render("✓ "+msg))
}

func notice(e *Env, msg string) {
	fmt.Fprintln(e.Out, styles.WarningStyle.Render("! "+msg))
}

// dialectFor returns the configured dialect, unless it finds no question
// headers in lines and another dialect does
func (e *Env) dialectFor(lines note.Lines) question.Dialect {
	if len(question.Parse(lines, e.Source).Blocks) > 0 {
		return e.Source
	}
	if d, ok := question.Detect(lines); ok && d.Name() != e.Source.Name() {
		e.Log.Debug("dialect detected", "configured", e.Source.Name(), "detected", d.Name())
		return d
	}
	return e.Source
}
