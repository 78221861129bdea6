// Package textutil formats help text for fixed-width terminals.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width characters, breaking on whitespace. Runs of spaces
// collapse to one. Explicit newlines in text always start a new line, so multi-line help text
// keeps its shape. A single word longer than width gets a line of its own.
func Wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(text string, width int) []string {
	var (
		lines         []string
		currentLine   []string
		currentLength int
	)
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if len(currentLine) > 0 && currentLength+n+1 > width {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = nil
			currentLength = 0
		}
		if len(currentLine) == 0 {
			currentLength = n
		} else {
			currentLength += n + 1
		}
		currentLine = append(currentLine, word)
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}
	return lines
}
