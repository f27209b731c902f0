package question

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gerunddev/interviewer/internal/note"
)

var (
	// ErrMalformedBlock marks a candidate block whose lines do not parse.
	// The offending lines are kept as passthrough.
	ErrMalformedBlock = errors.New("malformed candidate block")

	// ErrIncompleteBlock marks a header that never got an answer. Its lines
	// are kept as passthrough.
	ErrIncompleteBlock = errors.New("question has no answer")
)

// Line is a passthrough line and its index in the parsed buffer
type Line struct {
	Index int
	Text  string
}

// Issue is a recoverable problem found while parsing
type Issue struct {
	Line int
	Err  error
}

func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %v", i.Line+1, i.Err)
}

func (i Issue) Unwrap() error {
	return i.Err
}

// Block is a question header together with the lines it spans.
// All indexes are relative to the parsed buffer.
type Block struct {
	Question

	// Start is the header line
	Start int
	// End is exclusive and covers the blank line that closed the block
	End int
	// AnswerEnd is the last line of the header, marker and answer run
	// (for callouts, the last quoted line). A new candidate block is
	// inserted right after it.
	AnswerEnd int
	// CandidateStart is the first separator line before "> @candidate"
	// (or the "@candidate" line itself when there is no separator), -1
	// when the block has no candidate block.
	CandidateStart int
	// CandidateEnd is the last candidate line, inclusive
	CandidateEnd int

	Complete bool
}

// HasCandidateBlock reports whether the block contains a candidate block
func (b Block) HasCandidateBlock() bool {
	return b.CandidateStart >= 0
}

// Result is everything a parse found
type Result struct {
	// Questions holds the complete questions in encounter order
	Questions []Question
	// Blocks holds every header seen, complete or not
	Blocks      []Block
	Passthrough []Line
	Issues      []Issue
}

type state int

const (
	stateIdle state = iota
	stateAwaitMarker
	stateAwaitAnswer
	stateAnswer
	stateAfterAnswer
	stateCandidate
)

type scanner struct {
	d     Dialect
	lines []string
	res   Result

	state     state
	cur       *Block
	answer    []string
	candidate []string
	marker    int // line of the "@candidate" marker
	pending   int // callout: first of a run of empty quoted lines, -1 if none
	gap       int // first of a run of blank lines before a candidate block, -1 if none
	quoted    int // callout: last quoted line seen
	fence     bool
}

// Parse scans lines for question blocks in dialect d. It never fails:
// anything that is not a well formed block is returned as passthrough.
func Parse(lines []string, d Dialect) Result {
	s := &scanner{d: d, lines: lines, marker: -1, pending: -1, gap: -1, quoted: -1}

	i := 0
	for {
		if i >= len(lines) {
			if s.cur == nil {
				break
			}
			// End of input closes the in-flight block
			i = s.finalize(s.closeAt(len(lines)))
			continue
		}
		i = s.step(i)
	}

	return s.res
}

// step consumes line i and returns the index of the next line to scan
func (s *scanner) step(i int) int {
	line := s.lines[i]

	// A new header or a section heading closes whatever is open,
	// unless we are inside fenced code in an answer
	if s.state != stateIdle && !s.fence {
		if _, _, ok := s.d.MatchHeader(line); ok || note.IsSectionHeading(line) {
			return s.finalize(s.closeAt(i))
		}
	}

	switch s.state {
	case stateIdle:
		return s.idle(i, line)

	case stateAwaitMarker:
		if note.IsBlank(line) {
			return i + 1
		}
		if isMarker(line) {
			s.cur.AnswerEnd = i
			s.state = stateAwaitAnswer
			return i + 1
		}
		return s.finalize(i)

	case stateAwaitAnswer:
		if note.IsBlank(line) {
			if s.gap < 0 {
				s.gap = i
			}
			return i + 1
		}
		if isCandidateStart(line) {
			start := i
			if s.gap >= 0 {
				start = s.gap
			}
			s.openCandidate(start, i)
			return i + 1
		}
		s.gap = -1
		s.state = stateAnswer
		return s.headingAnswer(i, line)

	case stateAnswer:
		if s.d.callout {
			return s.calloutAnswer(i, line)
		}
		return s.headingAnswer(i, line)

	case stateAfterAnswer:
		if note.IsBlank(line) {
			return i + 1
		}
		if isCandidateStart(line) {
			// The blank run that ended the answer is the separator
			s.openCandidate(s.gap, i)
			return i + 1
		}
		return s.finalize(s.closeAt(i))

	case stateCandidate:
		if content, ok := unquote(line); ok {
			s.candidate = append(s.candidate, content)
			s.cur.CandidateEnd = i
			return i + 1
		}
		if note.IsBlank(line) {
			return s.finalize(i + 1)
		}
		// An empty block is reported by finalize
		if s.cur.CandidateEnd != s.marker {
			s.res.Issues = append(s.res.Issues, Issue{Line: i, Err: ErrMalformedBlock})
		}
		return s.finalize(i)
	}

	return i + 1
}

func (s *scanner) idle(i int, line string) int {
	if isFence(line) {
		s.fence = !s.fence
		s.pass(i)
		return i + 1
	}
	if s.fence {
		s.pass(i)
		return i + 1
	}

	text, diff, ok := s.d.MatchHeader(line)
	if !ok {
		s.pass(i)
		return i + 1
	}

	s.cur = &Block{
		Question:       Question{Text: text, Difficulty: diff},
		Start:          i,
		AnswerEnd:      i,
		CandidateStart: -1,
		CandidateEnd:   -1,
	}
	switch {
	case s.d.callout:
		s.state = stateAnswer
	case s.d.marker:
		s.state = stateAwaitMarker
	default:
		s.state = stateAwaitAnswer
	}
	return i + 1
}

// headingAnswer collects an unquoted answer line (current and legacy dialects)
func (s *scanner) headingAnswer(i int, line string) int {
	if s.fence {
		s.answer = append(s.answer, line)
		s.cur.AnswerEnd = i
		if isFence(line) {
			s.fence = false
		}
		return i + 1
	}

	switch {
	case isCandidateStart(line):
		s.openCandidate(i, i)
	case note.IsBlank(line):
		s.state = stateAfterAnswer
		s.gap = i
	default:
		if isFence(line) {
			s.fence = true
		}
		s.answer = append(s.answer, line)
		s.cur.AnswerEnd = i
	}
	return i + 1
}

// calloutAnswer collects the quoted answer that follows a callout header
func (s *scanner) calloutAnswer(i int, line string) int {
	if isCandidateStart(line) {
		start := i
		if s.pending >= 0 {
			start = s.pending
		}
		s.openCandidate(start, i)
		return i + 1
	}

	content, ok := unquote(line)
	if !ok {
		if note.IsBlank(line) {
			return s.finalize(i + 1)
		}
		return s.finalize(i)
	}

	s.quoted = i
	if strings.TrimSpace(content) == "" {
		if s.pending < 0 {
			s.pending = i
		}
		return i + 1
	}

	// Empty quoted lines between answer lines belong to the answer
	if s.pending >= 0 && len(s.answer) > 0 {
		for j := s.pending; j < i; j++ {
			s.answer = append(s.answer, "")
		}
	}
	s.pending = -1
	s.answer = append(s.answer, content)
	s.cur.AnswerEnd = i
	return i + 1
}

// closeAt is where a block closed at line i ends. A block waiting for a
// candidate block owns only the first blank line after its answer; the
// rest of the blank run is passthrough.
func (s *scanner) closeAt(i int) int {
	if s.state == stateAfterAnswer && s.gap >= 0 {
		return s.gap + 1
	}
	return i
}

func (s *scanner) openCandidate(start, marker int) {
	s.cur.CandidateStart = start
	s.cur.CandidateEnd = marker
	s.marker = marker
	s.state = stateCandidate
}

// finalize closes the in-flight block at end (exclusive) and returns the
// next line to scan. An incomplete block is turned back into passthrough:
// its header is passed through and scanning resumes on the line after it.
func (s *scanner) finalize(end int) int {
	b := s.cur
	b.End = end
	b.Answer = strings.TrimSpace(strings.Join(s.answer, "\n"))
	b.Candidate = strings.TrimSpace(strings.Join(s.candidate, "\n"))
	b.Complete = b.Question.Complete()

	// Trailing empty quoted lines still belong to the callout
	if s.d.callout && !b.HasCandidateBlock() && s.quoted > b.AnswerEnd {
		b.AnswerEnd = s.quoted
	}

	if b.HasCandidateBlock() && b.CandidateEnd == s.marker {
		s.res.Issues = append(s.res.Issues, Issue{Line: s.marker, Err: ErrMalformedBlock})
	}

	s.res.Blocks = append(s.res.Blocks, *b)
	s.reset()

	if b.Complete {
		s.res.Questions = append(s.res.Questions, b.Question)
		return end
	}

	// An untagged heading with nothing under it is just a title
	if s.d.callout || b.Difficulty != Unknown || b.AnswerEnd > b.Start {
		s.res.Issues = append(s.res.Issues, Issue{Line: b.Start, Err: ErrIncompleteBlock})
	}
	s.pass(b.Start)
	return b.Start + 1
}

func (s *scanner) reset() {
	s.cur = nil
	s.state = stateIdle
	s.answer = nil
	s.candidate = nil
	s.marker = -1
	s.pending = -1
	s.gap = -1
	s.quoted = -1
	s.fence = false
}

func (s *scanner) pass(i int) {
	s.res.Passthrough = append(s.res.Passthrough, Line{Index: i, Text: s.lines[i]})
}
