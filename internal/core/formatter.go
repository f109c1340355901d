// ABOUTME: Formatter normalizes response text before display and recording
// ABOUTME: Fails soft, substituting a fixed apology for blank input
package core

import (
	"regexp"
	"strings"
	"unicode"
)

// Apology is substituted when a response came back empty or blank.
const Apology = "I apologize, but I couldn't generate a proper response."

var (
	blankLineRuns = regexp.MustCompile(`\n\s*\n`)
	spaceRuns     = regexp.MustCompile(` +`)
)

// Format cleans up raw response text: collapses blank-line and space runs,
// guarantees terminal punctuation, and capitalizes the first letter. Pure
// function; never returns an empty string.
func Format(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Apology
	}

	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")

	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") &&
		!strings.HasSuffix(text, "?") && !strings.HasSuffix(text, ":") {
		text += "."
	}

	runes := []rune(text)
	if unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		text = string(runes)
	}

	return text
}
