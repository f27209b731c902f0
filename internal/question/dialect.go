package question

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect selects one of the textual syntaxes a question block can be
// written in. Parsing and serializing always target exactly one dialect.
type Dialect struct {
	name    string
	aliases []string

	header       *regexp.Regexp
	headerPrefix string

	// callout dialects quote the answer and carry the difficulty as an emoji
	callout bool
	// marker dialects require a "?" line between header and answer
	marker bool
}

var (
	// Current is "# <text> #<difficulty>", then "?", then the answer
	Current = Dialect{
		name:         "current",
		aliases:      []string{"a"},
		header:       regexp.MustCompile(`(?i)^#\s+(.+?)(?:\s+#(easy|medium|hard|unknown))?\s*$`),
		headerPrefix: "# ",
		marker:       true,
	}

	// Legacy is the same block with a level-3 heading
	Legacy = Dialect{
		name:         "legacy",
		aliases:      []string{"b"},
		header:       regexp.MustCompile(`(?i)^###\s+(.+?)(?:\s+#(easy|medium|hard|unknown))?\s*$`),
		headerPrefix: "### ",
		marker:       true,
	}

	// Callout is an Obsidian question callout: "> [!question]- 🟢 <text>"
	// followed by the quoted answer.
	Callout = Dialect{
		name:         "callout",
		aliases:      []string{"c"},
		header:       regexp.MustCompile(`(?i)^>\s*\[!question\][-+]?\s*(?:(🟢|🟡|🔴|❓)\s*)?(.+?)\s*$`),
		headerPrefix: "> [!question]- ",
		callout:      true,
	}
)

var (
	markerRe         = regexp.MustCompile(`^\?\s*$`)
	candidateStartRe = regexp.MustCompile(`(?i)^\s*>\s*@candidate\s*$`)
	fenceRe          = regexp.MustCompile("^(```|~~~)")
	trailingTagRe    = regexp.MustCompile(`(?i)\s#(easy|medium|hard|unknown)$`)
)

// Dialects lists the supported dialects, oldest naming last
func Dialects() []Dialect {
	return []Dialect{Current, Legacy, Callout}
}

// ParseDialect looks a dialect up by name or single-letter alias
func ParseDialect(name string) (Dialect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Dialects() {
		if d.name == name {
			return d, nil
		}
		for _, alias := range d.aliases {
			if alias == name {
				return d, nil
			}
		}
	}
	return Dialect{}, fmt.Errorf("unknown dialect '%s': must be one of: current, legacy, callout", name)
}

// Name returns the dialect's configuration name
func (d Dialect) Name() string {
	return d.name
}

func (d Dialect) String() string {
	return d.name
}

// IsZero reports whether d is the zero Dialect (no dialect selected)
func (d Dialect) IsZero() bool {
	return d.header == nil
}

// MatchHeader reports whether line is a question header in this dialect
// and returns its prompt text and difficulty.
func (d Dialect) MatchHeader(line string) (string, Difficulty, bool) {
	m := d.header.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", Unknown, false
	}

	if d.callout {
		text := strings.TrimSpace(m[2])
		// A lone emoji is a marker without a prompt
		if text == "" || text == Unknown.Emoji() || DifficultyFromEmoji(text) != Unknown {
			return "", Unknown, false
		}
		return text, DifficultyFromEmoji(m[1]), true
	}

	text := strings.TrimSpace(m[1])
	if text == "" {
		return "", Unknown, false
	}
	return text, ParseDifficulty(m[2]), true
}

// headerLine renders the header for q
func (d Dialect) headerLine(q Question) string {
	text := strings.TrimSpace(q.Text)
	if d.callout {
		return d.headerPrefix + q.Difficulty.Emoji() + " " + text
	}
	// Text that ends in a tag needs an explicit one, or it would be read
	// back as the difficulty
	if q.Difficulty == Unknown && !trailingTagRe.MatchString(text) {
		return d.headerPrefix + text
	}
	return d.headerPrefix + text + " #" + q.Difficulty.String()
}

// separator is the line placed between an answer and its candidate block.
// Inside a callout it must stay quoted or the callout would end.
func (d Dialect) separator() string {
	if d.callout {
		return ">"
	}
	return ""
}

func isMarker(line string) bool {
	return markerRe.MatchString(strings.TrimSpace(line))
}

func isCandidateStart(line string) bool {
	return candidateStartRe.MatchString(line)
}

func isFence(line string) bool {
	return fenceRe.MatchString(strings.TrimSpace(line))
}

// unquote strips the leading "> " from a blockquote line
func unquote(line string) (string, bool) {
	s := strings.TrimLeft(strings.TrimRight(line, "\r"), " \t")
	if !strings.HasPrefix(s, ">") {
		return "", false
	}
	s = s[1:]
	if strings.HasPrefix(s, " ") {
		s = s[1:]
	}
	return s, true
}

// quote renders one line of blockquote content
func quote(line string) string {
	if strings.TrimSpace(line) == "" {
		return ">"
	}
	return "> " + line
}

// Detect guesses the dialect of a note by counting unambiguous headers.
// The second result is false when the note has no question headers at all.
func Detect(lines []string) (Dialect, bool) {
	counts := map[string]int{}
	for _, line := range lines {
		for _, d := range Dialects() {
			_, diff, ok := d.MatchHeader(line)
			if !ok {
				continue
			}
			// Untagged headings are plain titles as far as detection goes
			if !d.callout && diff == Unknown {
				continue
			}
			counts[d.name]++
		}
	}

	best, bestCount := Current, 0
	for _, d := range Dialects() {
		if counts[d.name] > bestCount {
			best, bestCount = d, counts[d.name]
		}
	}
	return best, bestCount > 0
}
