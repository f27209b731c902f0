package interview

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gerunddev/interviewer/internal/question"
)

var interviewDate = time.Date(2024, time.May, 1, 10, 30, 0, 0, time.UTC)

const arrays = "# Explain copy-on-write for arrays #hard\n?\nArrays are values.\n\n# What is an array? #easy\n?\nFixed-size sequence.\n"

func TestAssemble(t *testing.T) {
	got := Assemble("See [[Arrays]]\n", map[string]string{"Arrays": arrays}, question.Current, interviewDate)

	want := "See [[Arrays]]\n" +
		"\n" +
		"# What is an array? #easy\n?\nFixed-size sequence.\n" +
		"\n" +
		"# Explain copy-on-write for arrays #hard\n?\nArrays are values.\n"
	if got != want {
		t.Errorf("Assemble() =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleDate(t *testing.T) {
	got := Assemble("# Interview {{date}}\nDate: {{date}}", nil, question.Current, interviewDate)

	want := "# Interview 2024-05-01\nDate: 2024-05-01"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleLinks(t *testing.T) {
	notes := map[string]string{
		"Arrays": "# A #easy\n?\na\n",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "case insensitive",
			template: "[[arrays]]",
			want:     "[[arrays]]\n\n# A #easy\n?\na",
		},
		{
			name:     "alias",
			template: "[[Arrays|the arrays note]]",
			want:     "[[Arrays|the arrays note]]\n\n# A #easy\n?\na",
		},
		{
			name:     "heading anchor and path",
			template: "[[topics/Arrays#Basics]]",
			want:     "[[topics/Arrays#Basics]]\n\n# A #easy\n?\na",
		},
		{
			name:     "unknown link left alone",
			template: "[[Maps]]\n",
			want:     "[[Maps]]\n",
		},
		{
			name:     "following text gets a blank line",
			template: "[[Arrays]]\nNext topic",
			want:     "[[Arrays]]\n\n# A #easy\n?\na\n\nNext topic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.template, notes, question.Current, interviewDate)
			if got != tt.want {
				t.Errorf("Assemble() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestAssembleRepeatedLink(t *testing.T) {
	notes := map[string]string{"Arrays": "# A #easy\n?\na"}

	got := Assemble("[[Arrays]]\n\n[[Arrays]]\n", notes, question.Current, interviewDate)

	// Each link line gets its own copy
	if n := strings.Count(got, "# A #easy"); n != 2 {
		t.Errorf("Expected 2 copies, got %d:\n%s", n, got)
	}
	if n := strings.Count(got, "[[Arrays]]"); n != 2 {
		t.Errorf("Link lines changed:\n%s", got)
	}
}

func TestAssembleSkipsFrontmatter(t *testing.T) {
	notes := map[string]string{
		"Go": "---\ntags: [go]\n---\n# Q #medium\n?\nanswer\n\n> @candidate\n> from a past interview\n",
	}

	got := Assemble("[[Go]]", notes, question.Current, interviewDate)

	if strings.Contains(got, "tags:") {
		t.Errorf("Frontmatter leaked into the note:\n%s", got)
	}
	if !strings.Contains(got, "# Q #medium") {
		t.Errorf("Question missing:\n%s", got)
	}
	// Recorded candidate answers travel with the question
	if !strings.Contains(got, "> from a past interview") {
		t.Errorf("Candidate answer missing:\n%s", got)
	}
}

func TestAssembleAs(t *testing.T) {
	notes := map[string]string{
		"Go": "> [!question]- 🔴 Hard one\n> h\n\n> [!question]- 🟢 Easy one\n> e\n",
	}

	got := AssembleAs("[[Go]]", notes, question.Callout, question.Current, interviewDate)

	want := "[[Go]]\n\n# Easy one #easy\n?\ne\n\n# Hard one #hard\n?\nh"
	if got != want {
		t.Errorf("AssembleAs() =\n%q\nwant\n%q", got, want)
	}
}

func TestLinks(t *testing.T) {
	got := Links("[[Arrays]] and [[maps|Maps]]\n[[arrays#Basics]] [[topics/Go.md]] [[ ]]")

	want := []string{"Arrays", "maps", "topics/Go"}
	if !slices.Equal(got, want) {
		t.Errorf("Links() = %v, want %v", got, want)
	}
}

func TestAssembleKeepsTemplateCRLF(t *testing.T) {
	tmpl := "# Interview\r\n[[Go]]\r\n"
	notes := map[string]string{"Go": "# Q #easy\n?\nA\n"}

	got := Assemble(tmpl, notes, question.Current, interviewDate)

	want := "# Interview\r\n[[Go]]\r\n\r\n# Q #easy\r\n?\r\nA\r\n"
	if got != want {
		t.Errorf("Assemble() =\n%q\nwant\n%q", got, want)
	}
}
