package interview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
)

var (
	decorationRe  = regexp.MustCompile("[*_`~]+")
	trailingTagRe = regexp.MustCompile(`(?i)\s+#(easy|medium|hard|unknown)\s*$`)
)

// PatchAnswer sets the candidate answer of the question whose text matches
// questionText. Matching ignores case, emphasis, code markers and a
// leading difficulty emoji. A blank candidate removes an existing candidate block.
// Only lines of the matched question's block are changed.
func PatchAnswer(lines note.Lines, questionText string, d question.Dialect, candidate string) (note.Lines, error) {
	b, err := FindQuestion(lines, questionText, d)
	if err != nil {
		return lines, err
	}

	block := question.CandidateBlock(candidate, d)
	crlf := lines.CRLF()

	switch {
	case b.HasCandidateBlock() && block == nil:
		// Remove separator through the last candidate line. The blank line
		// that closed the block stays so the note keeps its shape.
		return lines.Splice(b.CandidateStart, b.CandidateEnd-b.CandidateStart+1), nil

	case b.HasCandidateBlock():
		block = note.Ending(block, crlf, b.CandidateEnd == len(lines)-1)
		return lines.Splice(b.CandidateStart, b.CandidateEnd-b.CandidateStart+1, block...), nil

	case block == nil:
		return lines, nil
	}

	at := b.AnswerEnd + 1
	atEOF := at >= len(lines)
	if atEOF || !note.IsBlank(lines[at]) {
		block = append(block, "")
	}
	out := lines.Splice(at, 0, note.Ending(block, crlf, atEOF)...)
	if crlf && atEOF {
		// The answer was the last line and is now followed by the block
		out[at-1] += "\r"
	}
	return out, nil
}

// CandidateOf returns the candidate answer currently recorded for the
// question, or "" when there is none.
func CandidateOf(lines note.Lines, questionText string, d question.Dialect) (string, error) {
	b, err := FindQuestion(lines, questionText, d)
	if err != nil {
		return "", err
	}
	return b.Candidate, nil
}

// FindQuestion returns the block of the first question whose text matches
// questionText. Untagged headers without an answer are plain titles and
// only match when no question does.
func FindQuestion(lines note.Lines, questionText string, d question.Dialect) (question.Block, error) {
	want := normalizeText(questionText)
	if want == "" {
		return question.Block{}, fmt.Errorf("empty question text: %w", ErrNotFound)
	}

	var title *question.Block
	res := question.Parse(lines, d)
	for i, b := range res.Blocks {
		if normalizeText(b.Text) != want {
			continue
		}
		if b.Complete || b.Difficulty != question.Unknown || d.Name() == question.Callout.Name() {
			return b, nil
		}
		if title == nil {
			title = &res.Blocks[i]
		}
	}
	if title != nil {
		return *title, nil
	}
	return question.Block{}, fmt.Errorf("question '%s': %w", questionText, ErrNotFound)
}

// normalizeText strips decoration and case so displayed and stored
// question text compare equal
func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	for _, diff := range []question.Difficulty{question.Easy, question.Medium, question.Hard, question.Unknown} {
		s = strings.TrimSpace(strings.TrimPrefix(s, diff.Emoji()))
	}
	s = trailingTagRe.ReplaceAllString(s, "")
	s = decorationRe.ReplaceAllString(s, "")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
