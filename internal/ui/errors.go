package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minErrorWidth  = 10
	truncationMark = "..."
)

// clearErrorMsg is sent after the error clear delay
type clearErrorMsg struct {
	seq int
}

// ErrorManager handles error display and auto-clearing
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	seq             int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError shows err and returns the command that clears it later
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.seq++
	seq := em.seq
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// HandleClear clears the error unless a newer one replaced it
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.currentError = nil
	}
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// formatErrorForDisplay wraps an error to maxWidth columns, keeping at most
// maxErrorLines lines and marking the cut with "..."
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.TrimSpace(err.Error())
	if message == "" {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	firstWidth := max(maxWidth-runeLen(errorPrefix), minErrorWidth)

	lines, truncated := wrapWords(strings.Fields(message), firstWidth, width, maxErrorLines)
	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := width - runeLen(truncationMark)
		if len(last)+runeLen(truncationMark) > width && keep > 0 && len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}
	return errorPrefix + strings.Join(lines, "\n")
}

// wrapWords fills at most maxLines lines. The first line is firstWidth wide.
func wrapWords(words []string, firstWidth, width, maxLines int) ([]string, bool) {
	var lines []string
	line, limit := "", firstWidth
	for _, w := range words {
		if line != "" && runeLen(line)+1+runeLen(w) > limit {
			lines = append(lines, line)
			if len(lines) == maxLines {
				return lines, true
			}
			line, limit = "", width
		}
		if line != "" {
			line += " "
		}
		line += w
	}
	return append(lines, line), false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
