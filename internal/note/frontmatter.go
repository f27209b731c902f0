package note

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// Frontmatter holds the YAML properties block at the top of a note
type Frontmatter struct {
	Tags  []string `yaml:"-"`
	Title string   `yaml:"title"`

	RawTags any `yaml:"tags"`
}

// SplitFrontmatter returns the index of the first body line. When the
// note has no frontmatter block the body starts at 0.
func SplitFrontmatter(lines Lines) (fm Lines, bodyStart int) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelim {
		return nil, 0
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelim {
			return lines[1:i], i + 1
		}
	}
	// Unterminated block: treat the whole note as body
	return nil, 0
}

// ParseFrontmatter decodes the note's YAML frontmatter, if any
func ParseFrontmatter(lines Lines) (*Frontmatter, error) {
	fm, _ := SplitFrontmatter(lines)
	if fm == nil {
		return &Frontmatter{}, nil
	}

	var out Frontmatter
	if err := yaml.Unmarshal([]byte(fm.Join()), &out); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	switch v := out.RawTags.(type) {
	case string:
		for _, t := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			out.Tags = append(out.Tags, normalizeTag(t))
		}
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok {
				out.Tags = append(out.Tags, normalizeTag(s))
			}
		}
	}

	return &out, nil
}

// HasTag reports whether the note carries tag, either in its frontmatter
// tags or inline in the body (e.g. "#interview").
func HasTag(lines Lines, tag string) bool {
	want := normalizeTag(tag)
	if want == "" {
		return false
	}

	// Malformed frontmatter just means we fall back to the inline check
	if fm, err := ParseFrontmatter(lines); err == nil {
		for _, t := range fm.Tags {
			if strings.EqualFold(t, want) {
				return true
			}
		}
	}

	_, bodyStart := SplitFrontmatter(lines)
	return strings.Contains(lines[bodyStart:].Join(), "#"+want)
}

func normalizeTag(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "#")
}
