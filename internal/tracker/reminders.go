package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/contract-tracker/internal/model"
)

// NoRemindersMessage is shown when no contract is due.
const NoRemindersMessage = "There are no contracts ending today or earlier."

// Reminders is the result of a reminder check.
type Reminders struct {
	AsOf time.Time
	Due  []model.DueContract
}

// Any reports whether at least one contract is due.
func (r Reminders) Any() bool {
	return len(r.Due) > 0
}

// Title is the dialog caption for the result.
func (r Reminders) Title() string {
	if r.Any() {
		return "Reminders"
	}
	return "No Reminders"
}

// Message lists one due contract per line, or NoRemindersMessage.
func (r Reminders) Message() string {
	if !r.Any() {
		return NoRemindersMessage
	}
	lines := make([]string, len(r.Due))
	for i, d := range r.Due {
		lines[i] = fmt.Sprintf("Contract: %s, End Date: %s", d.Name, model.FormatDate(d.EndDate))
	}
	return strings.Join(lines, "\n")
}
