package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/gerunddev/interviewer/internal/interview"
	"github.com/gerunddev/interviewer/internal/note"
)

// AnswerOptions select the question to patch and the new candidate answer
type AnswerOptions struct {
	Note string
	// Question may be empty, in which case a picker is shown
	Question string

	// Text is the new candidate answer when SetText is true
	Text    string
	SetText bool
	// Clear removes the candidate answer
	Clear  bool
	DryRun bool
}

// Answer records, replaces or removes a candidate answer. Without a text
// the editor is opened, prefilled with the current answer.
func Answer(ctx context.Context, e *Env, opts AnswerOptions) error {
	if opts.Clear && opts.SetText {
		return fmt.Errorf("--text and --clear are mutually exclusive")
	}

	rel, lines, err := e.openNote(ctx, opts.Note, true)
	if err != nil {
		return err
	}
	d := e.dialectFor(lines)

	questionText := opts.Question
	if questionText == "" {
		item, ok, err := e.PickQuestion(rel, items(lines, d))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		questionText = item.Question.Text
	}

	candidate := opts.Text
	switch {
	case opts.Clear:
		candidate = ""
	case !opts.SetText:
		current, err := interview.CandidateOf(lines, questionText, d)
		if err != nil {
			return e.questionNotFound(questionText, err)
		}
		text, ok, err := e.EditAnswer(questionText, current)
		if err != nil {
			return err
		}
		if !ok {
			notice(e, "Cancelled")
			return nil
		}
		candidate = text
	}

	changed, err := e.apply(rel, opts.DryRun, func(lines note.Lines) (note.Lines, error) {
		return interview.PatchAnswer(lines, questionText, d, candidate)
	})
	if err != nil {
		return e.questionNotFound(questionText, err)
	}
	if opts.DryRun {
		return nil
	}

	action := "set"
	if candidate == "" {
		action = "cleared"
	}
	if !changed {
		fmt.Fprintln(e.Out, "Candidate answer unchanged")
		return nil
	}

	e.Log.AnswerPatched(rel, questionText, action)
	success(e, fmt.Sprintf("Candidate answer %s for '%s'", action, questionText))
	return nil
}

// questionNotFound turns a missing question into a notice
func (e *Env) questionNotFound(questionText string, err error) error {
	if !errors.Is(err, interview.ErrNotFound) {
		return err
	}
	e.Log.NotFound("question", questionText)
	notice(e, fmt.Sprintf("Question not found: %s", questionText))
	return nil
}
