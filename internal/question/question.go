package question

import (
	"cmp"
	"slices"
	"strings"
)

// Difficulty is the difficulty of an interview question
type Difficulty int

const (
	// Unknown is used for questions without a difficulty tag. It sorts last.
	Unknown Difficulty = iota
	Easy
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:    "easy",
	Medium:  "medium",
	Hard:    "hard",
	Unknown: "unknown",
}

var difficultyEmoji = map[Difficulty]string{
	Easy:    "🟢",
	Medium:  "🟡",
	Hard:    "🔴",
	Unknown: "❓",
}

// String returns the lowercase tag name ("easy", "medium", "hard", "unknown")
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return difficultyNames[Unknown]
}

// Emoji returns the marker used by callout notes
func (d Difficulty) Emoji() string {
	if e, ok := difficultyEmoji[d]; ok {
		return e
	}
	return difficultyEmoji[Unknown]
}

// Rank orders difficulties: easy(1) < medium(2) < hard(3) < unknown(4)
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 4
	}
}

// ParseDifficulty maps a tag name (case-insensitive, optional leading '#')
// to a Difficulty. Anything unrecognized is Unknown.
func ParseDifficulty(s string) Difficulty {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	for d, name := range difficultyNames {
		if name == s {
			return d
		}
	}
	return Unknown
}

// DifficultyFromEmoji maps a callout marker to a Difficulty
func DifficultyFromEmoji(e string) Difficulty {
	for d, marker := range difficultyEmoji {
		if marker == e {
			return d
		}
	}
	return Unknown
}

// Question is one question block: prompt, reference answer and the
// optional notes about a candidate's response.
type Question struct {
	Text       string
	Difficulty Difficulty
	Answer     string
	Candidate  string
}

// Complete reports whether the question has both a prompt and an answer.
// Only complete questions are emitted by the parser.
func (q Question) Complete() bool {
	return strings.TrimSpace(q.Text) != "" && strings.TrimSpace(q.Answer) != ""
}

// HasCandidate reports whether a candidate answer is recorded
func (q Question) HasCandidate() bool {
	return strings.TrimSpace(q.Candidate) != ""
}

// SortByDifficulty stably sorts questions easy, medium, hard, unknown.
// Questions of equal difficulty keep their relative order.
func SortByDifficulty(qs []Question) {
	slices.SortStableFunc(qs, func(a, b Question) int {
		return cmp.Compare(a.Difficulty.Rank(), b.Difficulty.Rank())
	})
}

// Sorted returns a sorted copy of qs
func Sorted(qs []Question) []Question {
	out := slices.Clone(qs)
	SortByDifficulty(out)
	return out
}
