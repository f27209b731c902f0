package commands

import (
	"context"
	"fmt"

	"github.com/gerunddev/interviewer/internal/question"
	"github.com/gerunddev/interviewer/internal/styles"
)

// List prints the questions of a note grouped by section
func List(ctx context.Context, e *Env, name string) error {
	rel, lines, err := e.openNote(ctx, name, false)
	if err != nil {
		return err
	}

	all := items(lines, e.dialectFor(lines))

	fmt.Fprintln(e.Out, styles.TitleStyle.Render(rel))
	if len(all) == 0 {
		fmt.Fprintln(e.Out, styles.DimStyle.Render("No questions"))
		return nil
	}

	section := "\x00"
	counts := map[question.Difficulty]int{}
	answered := 0
	for _, item := range all {
		if item.Section != section {
			section = item.Section
			heading := section
			if heading == "" {
				heading = "(no section)"
			}
			fmt.Fprintln(e.Out, styles.SectionStyle.Render(heading))
		}

		q := item.Question
		mark := styles.DimStyle.Render("·")
		if q.HasCandidate() {
			mark = styles.SuccessStyle.Render("✓")
			answered++
		}
		label := styles.Difficulty(q.Difficulty).Render(fmt.Sprintf("%-7s", q.Difficulty))
		fmt.Fprintf(e.Out, "  %s %s %s\n", mark, label, q.Text)
		counts[q.Difficulty]++
	}

	fmt.Fprintln(e.Out)
	fmt.Fprintln(e.Out, styles.DimStyle.Render(fmt.Sprintf(
		"%d question(s): %d easy, %d medium, %d hard, %d unknown; %d answered",
		len(all), counts[question.Easy], counts[question.Medium], counts[question.Hard], counts[question.Unknown], answered)))
	return nil
}
