package note

import (
	"slices"
	"strings"
)

// Lines is a note's content as an ordered sequence of lines.
// Split and Join are exact inverses, so a note that is read, left
// untouched and written back is byte-identical.
type Lines []string

// Split breaks text into lines on "\n". A trailing newline produces a
// final empty line, which Join turns back into the newline.
func Split(text string) Lines {
	return Lines(strings.Split(text, "\n"))
}

// Join reassembles the lines into note text
func (l Lines) Join() string {
	return strings.Join(l, "\n")
}

// Clone returns a copy that shares no storage with l
func (l Lines) Clone() Lines {
	return slices.Clone(l)
}

// Splice returns a new buffer with count lines removed at start and
// insert placed in their stead. The receiver is never modified.
func (l Lines) Splice(start, count int, insert ...string) Lines {
	if start < 0 {
		start = 0
	}
	if start > len(l) {
		start = len(l)
	}
	end := start + count
	if end > len(l) {
		end = len(l)
	}

	out := make(Lines, 0, len(l)-(end-start)+len(insert))
	out = append(out, l[:start]...)
	out = append(out, insert...)
	out = append(out, l[end:]...)
	return out
}

// Equal reports whether both buffers hold the same lines
func (l Lines) Equal(other Lines) bool {
	return slices.Equal(l, other)
}

// CRLF reports whether the buffer was split from text with "\r\n" line
// endings, judged by its first line
func (l Lines) CRLF() bool {
	return len(l) > 1 && strings.HasSuffix(l[0], "\r")
}

// Ending gives generated lines the buffer's line ending: "\r" is appended
// to each when crlf is set. With last set the final line is left bare, as
// it becomes the last line of the buffer.
func Ending(lines []string, crlf, last bool) []string {
	if !crlf {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if last && i == len(lines)-1 {
			out[i] = line
			continue
		}
		out[i] = line + "\r"
	}
	return out
}

// IsBlank reports whether the line holds only whitespace
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
