package interview

import (
	"errors"
	"fmt"

	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
)

// ErrNotFound reports that the target question or section is absent.
// The buffer is returned unchanged alongside it.
var ErrNotFound = errors.New("not found")

// ReorganizeSection sorts the questions of the section "## <heading>" by
// difficulty. The section is rebuilt as its heading, the passthrough lines
// in their original order, then each question followed by a blank line.
// Lines outside the section are left as they are.
func ReorganizeSection(lines note.Lines, heading string, d question.Dialect) (note.Lines, error) {
	sec, ok := note.FindSection(lines, heading)
	if !ok {
		return lines, fmt.Errorf("section '%s': %w", heading, ErrNotFound)
	}
	return reorganize(lines, sec, d), nil
}

// ReorganizeAll sorts every level-2 section of the note
func ReorganizeAll(lines note.Lines, d question.Dialect) note.Lines {
	sections := note.Sections(lines)
	// Work from the bottom up so earlier ranges stay valid
	for i := len(sections) - 1; i >= 0; i-- {
		lines = reorganize(lines, sections[i], d)
	}
	return lines
}

func reorganize(lines note.Lines, sec note.Section, d question.Dialect) note.Lines {
	res := question.Parse(sec.Body(lines), d)
	questions := question.Sorted(res.Questions)

	rebuilt := note.Lines{lines[sec.Start]}
	for _, p := range res.Passthrough {
		rebuilt = append(rebuilt, p.Text)
	}
	var generated []string
	for _, q := range questions {
		generated = append(generated, question.Serialize(q, d)...)
		generated = append(generated, "")
	}
	rebuilt = append(rebuilt, note.Ending(generated, lines.CRLF(), sec.End == len(lines))...)

	return lines.Splice(sec.Start, sec.End-sec.Start, rebuilt...)
}
