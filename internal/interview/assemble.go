package interview

import (
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/gerunddev/interviewer/internal/note"
	"github.com/gerunddev/interviewer/internal/question"
)

const datePlaceholder = "{{date}}"

var linkRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// Assemble builds an interview note from a template. "{{date}}" becomes
// date as YYYY-MM-DD. After every line holding a [[Name]] link to one of
// notes, the linked note's questions are inserted, sorted by difficulty.
// Link lines themselves are never changed and unknown links are ignored.
func Assemble(tmpl string, notes map[string]string, d question.Dialect, date time.Time) string {
	return AssembleAs(tmpl, notes, d, d, date)
}

// AssembleAs is Assemble with questions parsed as source and written as
// target
func AssembleAs(tmpl string, notes map[string]string, source, target question.Dialect, date time.Time) string {
	tmpl = strings.ReplaceAll(tmpl, datePlaceholder, date.Format(time.DateOnly))

	index := make(map[string]string, len(notes))
	for name, text := range notes {
		index[strings.ToLower(strings.TrimSpace(name))] = text
	}

	lines := note.Split(tmpl)
	out := make(note.Lines, 0, len(lines))

	for i, line := range lines {
		out = append(out, line)

		inserted := false
		for _, m := range linkRe.FindAllStringSubmatch(line, -1) {
			text, ok := lookup(index, m[1])
			if !ok {
				continue
			}
			block := extractQuestions(text, source, target)
			if len(block) == 0 {
				continue
			}
			out = append(out, "")
			out = append(out, block...)
			inserted = true
		}

		// Keep following template text from running into the last answer
		if inserted && i+1 < len(lines) && !note.IsBlank(lines[i+1]) {
			out = append(out, "")
		}
	}

	if lines.CRLF() {
		// Inserted questions follow the template's line endings
		for j := 0; j < len(out)-1; j++ {
			if !strings.HasSuffix(out[j], "\r") {
				out[j] += "\r"
			}
		}
	}
	return out.Join()
}

// Links returns the note names linked from text, in order, without
// duplicates. Aliases ("|...") and heading anchors ("#...") are dropped.
func Links(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range linkRe.FindAllStringSubmatch(text, -1) {
		name := linkName(m[1])
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}

func linkName(target string) string {
	if i := strings.Index(target, "|"); i >= 0 {
		target = target[:i]
	}
	if i := strings.Index(target, "#"); i >= 0 {
		target = target[:i]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(target), ".md"))
}

// lookup matches a link case-insensitively, first by its full target and
// then by the last path element
func lookup(index map[string]string, target string) (string, bool) {
	name := strings.ToLower(linkName(target))
	if name == "" {
		return "", false
	}
	if text, ok := index[name]; ok {
		return text, true
	}
	text, ok := index[path.Base(name)]
	return text, ok
}

func extractQuestions(text string, source, target question.Dialect) []string {
	lines := note.Split(text)
	_, bodyStart := note.SplitFrontmatter(lines)

	res := question.Parse(lines[bodyStart:], source)
	return question.SerializeAll(question.Sorted(res.Questions), target)
}
