package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gerunddev/interviewer/internal/interview"
	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
)

// SortOptions select the sections to reorganize
type SortOptions struct {
	Note     string
	Sections []string
	// All sorts every section; it is implied when no section is named
	All    bool
	DryRun bool
}

// Sort reorders the questions of one or more sections by difficulty
func Sort(ctx context.Context, e *Env, opts SortOptions) error {
	rel, lines, err := e.openNote(ctx, opts.Note, true)
	if err != nil {
		return err
	}
	d := e.dialectFor(lines)

	var (
		missing []string
		counts  []sectionCount
	)
	changed, err := e.apply(rel, opts.DryRun, func(lines note.Lines) (note.Lines, error) {
		missing = nil
		all := opts.All || len(opts.Sections) == 0

		if all {
			lines = interview.ReorganizeAll(lines, d)
		} else {
			for _, heading := range opts.Sections {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				next, err := interview.ReorganizeSection(lines, heading, d)
				if errors.Is(err, interview.ErrNotFound) {
					missing = append(missing, heading)
					continue
				}
				if err != nil {
					return nil, err
				}
				lines = next
			}
		}

		counts = countSections(lines, d, all, opts.Sections)
		return lines, nil
	})
	if err != nil {
		return err
	}

	for _, heading := range missing {
		e.Log.NotFound("section", heading)
		notice(e, "Section not found: "+heading)
	}
	if opts.DryRun {
		return nil
	}

	if !changed {
		fmt.Fprintln(e.Out, "Already sorted")
		return nil
	}
	for _, c := range counts {
		e.Log.SectionSorted(rel, c.heading, c.questions)
	}
	success(e, "Sorted "+rel)
	return nil
}

type sectionCount struct {
	heading   string
	questions int
}

// countSections reports the question count of every sorted section
func countSections(lines note.Lines, d question.Dialect, all bool, headings []string) []sectionCount {
	var out []sectionCount
	for _, sec := range note.Sections(lines) {
		if !all && !slices.Contains(headings, sec.Heading) {
			continue
		}
		n := len(question.Parse(sec.Body(lines), d).Questions)
		out = append(out, sectionCount{heading: sec.Heading, questions: n})
	}
	return out
}
