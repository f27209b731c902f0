package question

import "strings"

const candidateMarker = "> @candidate"

// Serialize renders q as the canonical lines of dialect d. It is the
// left inverse of Parse: parsing the result yields q again.
func Serialize(q Question, d Dialect) []string {
	lines := []string{d.headerLine(q)}
	if d.marker {
		lines = append(lines, "?")
	}

	for _, line := range splitText(q.Answer) {
		if d.callout {
			lines = append(lines, quote(line))
		} else {
			lines = append(lines, line)
		}
	}

	return append(lines, CandidateBlock(q.Candidate, d)...)
}

// SerializeAll renders every question, separated by one blank line
func SerializeAll(qs []Question, d Dialect) []string {
	var lines []string
	for i, q := range qs {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Serialize(q, d)...)
	}
	return lines
}

// CandidateBlock renders the separator, the "> @candidate" line and the
// quoted candidate text. A blank candidate renders nothing.
func CandidateBlock(candidate string, d Dialect) []string {
	text := splitText(candidate)
	if text == nil {
		return nil
	}

	lines := []string{d.separator(), candidateMarker}
	for _, line := range text {
		lines = append(lines, quote(line))
	}
	return lines
}

// splitText trims text and splits it into lines, dropping carriage returns
func splitText(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
