// ABOUTME: InputValidator rejects malformed or unsafe utterances before processing
// ABOUTME: Checks emptiness, length, and a denylist of injection-prone substrings
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/harper/jarvis-standalone/internal/models"
)

// Validator checks incoming utterances. It is pure over its input and
// configuration and keeps no state.
type Validator struct {
	maxRunes int
	denylist []string // stored lower-cased for case-insensitive matching
}

// NewValidator creates a Validator with the given rune limit and denylist.
func NewValidator(maxRunes int, denylist []string) *Validator {
	lowered := make([]string, len(denylist))
	for i, p := range denylist {
		lowered[i] = strings.ToLower(p)
	}
	return &Validator{
		maxRunes: maxRunes,
		denylist: lowered,
	}
}

// Validate returns nil for acceptable input, or a *models.Error with kind
// EmptyInput, TooLong, or UnsafePattern.
func (v *Validator) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return models.NewError(models.ErrEmptyInput, "empty input")
	}

	if n := utf8.RuneCountInString(text); n > v.maxRunes {
		return models.NewError(models.ErrTooLong,
			fmt.Sprintf("input too long: %d runes, max %d", n, v.maxRunes))
	}

	lowered := strings.ToLower(text)
	for _, pattern := range v.denylist {
		if strings.Contains(lowered, pattern) {
			return models.NewError(models.ErrUnsafePattern,
				fmt.Sprintf("input contains blocked pattern %q", pattern))
		}
	}

	return nil
}
