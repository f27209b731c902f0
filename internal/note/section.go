package note

import (
	"regexp"
	"strings"
)

var sectionRe = regexp.MustCompile(`^##\s+(.+?)\s*$`)

// Section is the half-open line range [Start, End) owned by one level-2
// heading. Start is the heading line itself.
type Section struct {
	Heading string
	Start   int
	End     int
}

// Body returns the lines of the section after its heading
func (s Section) Body(lines Lines) Lines {
	return lines[s.Start+1 : s.End]
}

// IsSectionHeading reports whether line is a level-2 heading ("## ...").
// Deeper headings such as "### ..." are not section boundaries.
func IsSectionHeading(line string) bool {
	return sectionRe.MatchString(strings.TrimSpace(line))
}

// SectionHeading returns the heading text of a level-2 heading line
func SectionHeading(line string) (string, bool) {
	m := sectionRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Sections lists every level-2 section in the buffer in order
func Sections(lines Lines) []Section {
	var sections []Section
	for i, line := range lines {
		heading, ok := SectionHeading(line)
		if !ok {
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].End = i
		}
		sections = append(sections, Section{Heading: heading, Start: i, End: len(lines)})
	}
	return sections
}

// FindSection locates the first section whose heading line, trimmed, is
// exactly "## <heading>".
func FindSection(lines Lines, heading string) (Section, bool) {
	want := "## " + strings.TrimSpace(heading)
	for i, line := range lines {
		if strings.TrimSpace(line) != want {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if IsSectionHeading(lines[j]) {
				end = j
				break
			}
		}
		return Section{Heading: strings.TrimSpace(heading), Start: i, End: end}, true
	}
	return Section{}, false
}
