package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the storage and display format for contract end dates.
const DateLayout = "2006-01-02"

// Contract is a tracked agreement with an end date.
type Contract struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	EndDate     time.Time `json:"end_date" db:"-"`
}

// Draft holds the user-editable fields of a contract, without an ID.
type Draft struct {
	Name        string
	Description string
	EndDate     time.Time
}

// Draft returns the editable fields of c.
func (c Contract) Draft() Draft {
	return Draft{Name: c.Name, Description: c.Description, EndDate: c.EndDate}
}

// EndDateString returns the end date in DateLayout.
func (c Contract) EndDateString() string {
	return FormatDate(c.EndDate)
}

// IsDue reports whether the contract ends on or before asOf.
func (c Contract) IsDue(asOf time.Time) bool {
	return FormatDate(c.EndDate) <= FormatDate(asOf)
}

// DueContract is a single line of a reminder check.
type DueContract struct {
	Name    string    `json:"name"`
	EndDate time.Time `json:"end_date"`
}

// FormatDate renders the calendar date of t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// Today returns the calendar date of now as midnight UTC.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
