package interview

import (
	"errors"
	"strings"
	"testing"

	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
)

const closure = "# What is a closure? #easy\n?\nA function bound to its lexical scope.\n"

func TestPatchAnswerInsert(t *testing.T) {
	got, err := PatchAnswer(note.Split(closure), "What is a closure?", question.Current, "Mentioned currying.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# What is a closure? #easy\n?\nA function bound to its lexical scope.\n\n> @candidate\n> Mentioned currying.\n"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
}

func TestPatchAnswerRemove(t *testing.T) {
	patched, err := PatchAnswer(note.Split(closure), "What is a closure?", question.Current, "Mentioned currying.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	got, err := PatchAnswer(patched, "What is a closure?", question.Current, "   ")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}
	if got.Join() != closure {
		t.Errorf("Removing the candidate should restore the note.\ngot  %q\nwant %q", got.Join(), closure)
	}
	if strings.Contains(got.Join(), "@candidate") {
		t.Error("Candidate block still present")
	}
}

func TestPatchAnswerReplace(t *testing.T) {
	input := "# Q #easy\n?\nA\n\n> @candidate\n> Old one.\n> Two lines.\n\n# R #hard\n?\nB\n"

	got, err := PatchAnswer(note.Split(input), "Q", question.Current, "New answer.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# Q #easy\n?\nA\n\n> @candidate\n> New answer.\n\n# R #hard\n?\nB\n"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
}

func TestPatchAnswerBlankWithoutBlockIsNoop(t *testing.T) {
	lines := note.Split(closure)

	got, err := PatchAnswer(lines, "What is a closure?", question.Current, "")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}
	if !got.Equal(lines) {
		t.Errorf("Expected no change, got %q", got.Join())
	}
}

func TestPatchAnswerPrecision(t *testing.T) {
	input := "Intro\n\n# First #easy\n?\none\n\n# Second #medium\n?\ntwo\nmore\n\n# Third #hard\n?\nthree\n\nOutro"
	lines := note.Split(input)

	got, err := PatchAnswer(lines, "Second", question.Current, "Good.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	// Everything up to the second answer and from the blank after it on
	// is untouched
	const answerEnd = 9
	for i := 0; i <= answerEnd; i++ {
		if got[i] != lines[i] {
			t.Errorf("line %d changed: %q -> %q", i, lines[i], got[i])
		}
	}
	inserted := got[answerEnd+1 : answerEnd+4]
	if !inserted.Equal(note.Lines{"", "> @candidate", "> Good."}) {
		t.Errorf("Inserted lines = %q", inserted)
	}
	if !got[answerEnd+4:].Equal(lines[answerEnd+1:]) {
		t.Errorf("Tail changed:\n%q\nwant\n%q", got[answerEnd+4:], lines[answerEnd+1:])
	}
}

func TestPatchAnswerAddsBlankBeforeFollowingText(t *testing.T) {
	input := "# Q #easy\n?\nA\n## Next"

	got, err := PatchAnswer(note.Split(input), "Q", question.Current, "C")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# Q #easy\n?\nA\n\n> @candidate\n> C\n\n## Next"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
}

func TestPatchAnswerIncompleteBlock(t *testing.T) {
	input := "# Q #easy\n?\n\n# R #hard\n?\nr"

	got, err := PatchAnswer(note.Split(input), "Q", question.Current, "Answered anyway.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# Q #easy\n?\n\n> @candidate\n> Answered anyway.\n\n# R #hard\n?\nr"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
}

func TestPatchAnswerCallout(t *testing.T) {
	input := "> [!question]- 🟢 What is nil?\n> The zero value.\n\nafter"

	patched, err := PatchAnswer(note.Split(input), "What is nil?", question.Callout, "Said null.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "> [!question]- 🟢 What is nil?\n> The zero value.\n>\n> @candidate\n> Said null.\n\nafter"
	if patched.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", patched.Join(), want)
	}

	cleared, err := PatchAnswer(patched, "What is nil?", question.Callout, "")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}
	if cleared.Join() != input {
		t.Errorf("Clearing should restore the note.\ngot  %q\nwant %q", cleared.Join(), input)
	}
}

func TestPatchAnswerDecorationInsensitive(t *testing.T) {
	input := "# **What** does `defer` do? #medium\n?\nRuns at return.\n"

	tests := []string{
		"What does defer do?",
		"what does defer do?",
		"🟡 What does defer do?",
		"**What**  does `defer` do? #medium",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got, err := PatchAnswer(note.Split(input), text, question.Current, "LIFO.")
			if err != nil {
				t.Fatalf("PatchAnswer(%q) error = %v", text, err)
			}
			if !strings.Contains(got.Join(), "> LIFO.") {
				t.Errorf("Candidate not inserted: %q", got.Join())
			}
		})
	}
}

func TestPatchAnswerNotFound(t *testing.T) {
	lines := note.Split(closure)

	for _, text := range []string{"What is a monad?", "", "   "} {
		got, err := PatchAnswer(lines, text, question.Current, "x")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("PatchAnswer(%q) error = %v, want ErrNotFound", text, err)
		}
		if !got.Equal(lines) {
			t.Errorf("PatchAnswer(%q) changed the buffer", text)
		}
	}
}

func TestPatchAnswerDoesNotCrossSections(t *testing.T) {
	input := "## Go\n# Q #easy\n?\nA\n## Rust\n> @candidate\n> not ours\n"

	got, err := PatchAnswer(note.Split(input), "Q", question.Current, "Mine.")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "## Go\n# Q #easy\n?\nA\n\n> @candidate\n> Mine.\n\n## Rust\n> @candidate\n> not ours\n"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
}

func TestCandidateOf(t *testing.T) {
	input := "# Q #easy\n?\nA\n\n> @candidate\n> Line one\n> Line two\n"

	got, err := CandidateOf(note.Split(input), "Q", question.Current)
	if err != nil {
		t.Fatalf("CandidateOf() error = %v", err)
	}
	if got != "Line one\nLine two" {
		t.Errorf("CandidateOf() = %q", got)
	}

	if _, err := CandidateOf(note.Split(input), "Missing", question.Current); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestPatchAnswerlessBlockSettles(t *testing.T) {
	input := "# Q #easy\n?\n\n# R #hard\n?\nr\n"
	want := "# Q #easy\n?\n\n> @candidate\n> y\n\n# R #hard\n?\nr\n"

	lines := note.Split(input)
	for _, candidate := range []string{"x", "y", "y"} {
		var err error
		lines, err = PatchAnswer(lines, "Q", question.Current, candidate)
		if err != nil {
			t.Fatalf("PatchAnswer(%q) error = %v", candidate, err)
		}
	}
	if lines.Join() != want {
		t.Errorf("Repeated patches =\n%q\nwant\n%q", lines.Join(), want)
	}

	cleared, err := PatchAnswer(lines, "Q", question.Current, "")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}
	if cleared.Join() != input {
		t.Errorf("Clearing should restore the note.\ngot  %q\nwant %q", cleared.Join(), input)
	}
}

func TestPatchAnswerBlankRunBeforeCandidate(t *testing.T) {
	input := "# Q #easy\n?\nA\n\n\n> @candidate\n> old\n\n# R #hard\n?\nr\n"

	got, err := PatchAnswer(note.Split(input), "Q", question.Current, "new")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# Q #easy\n?\nA\n\n> @candidate\n> new\n\n# R #hard\n?\nr\n"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
	if n := strings.Count(got.Join(), "@candidate"); n != 1 {
		t.Errorf("Expected 1 candidate block, got %d", n)
	}
}

func TestPatchAnswerPrefersQuestionOverTitle(t *testing.T) {
	input := "# Arrays\n\nIntro.\n\n# Arrays #easy\n?\nContiguous.\n"

	got, err := PatchAnswer(note.Split(input), "Arrays", question.Current, "x")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# Arrays\n\nIntro.\n\n# Arrays #easy\n?\nContiguous.\n\n> @candidate\n> x\n"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}
}

func TestPatchAnswerTitleFallback(t *testing.T) {
	input := "# Arrays\n\n# Q #easy\n?\nq\n"

	if _, err := PatchAnswer(note.Split(input), "Arrays", question.Current, "x"); err != nil {
		t.Errorf("Expected a title to match when no question does, got %v", err)
	}
}

func TestPatchAnswerKeepsCRLF(t *testing.T) {
	input := "# Q #easy\r\n?\r\nA\r\n\r\n# R #hard\r\n?\r\nr\r\n"

	got, err := PatchAnswer(note.Split(input), "Q", question.Current, "C")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}

	want := "# Q #easy\r\n?\r\nA\r\n\r\n> @candidate\r\n> C\r\n\r\n# R #hard\r\n?\r\nr\r\n"
	if got.Join() != want {
		t.Errorf("PatchAnswer() =\n%q\nwant\n%q", got.Join(), want)
	}

	atEnd, err := PatchAnswer(note.Split("# Q #easy\r\n?\r\nA"), "Q", question.Current, "C")
	if err != nil {
		t.Fatalf("PatchAnswer() error = %v", err)
	}
	if s := atEnd.Join(); strings.Count(s, "\n") != strings.Count(s, "\r\n") {
		t.Errorf("Mixed line endings: %q", s)
	}
}
