package model

import (
	"fmt"
	"strings"
)

// Priority ranks how urgent an assignment is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority converts a user-supplied name into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q (want high, medium or low)", s)
}

// Assignment is a homework record with due metadata and completion state.
// DueDate and DueTime are display labels, not parsed dates.
type Assignment struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Subject     string   `json:"subject"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date"`
	DueTime     string   `json:"due_time"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// AssignmentPatch holds a partial update. Nil fields are left untouched.
type AssignmentPatch struct {
	Title       *string
	Subject     *string
	Description *string
	DueDate     *string
	DueTime     *string
	Priority    *Priority
	Completed   *bool
}

// Apply returns a copy of a with every non-nil field of p merged in.
func (a Assignment) Apply(p AssignmentPatch) Assignment {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.DueTime != nil {
		a.DueTime = *p.DueTime
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Completed != nil {
		a.Completed = *p.Completed
	}
	return a
}
