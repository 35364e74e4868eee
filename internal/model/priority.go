package model

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// tagOrder is the decode precedence: if a line pathologically carries more
// than one tag, the first match here wins.
var tagOrder = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// Tag returns the inline markdown tag for the priority, e.g. "{URGENT}".
func (p Priority) Tag() string {
	return "{" + strings.ToUpper(string(p)) + "}"
}

// PriorityFromLine scans a task line for a priority tag. A line with no
// recognized tag is medium; this makes "no tag" indistinguishable from an
// explicit {MEDIUM} on reformat.
func PriorityFromLine(line string) Priority {
	for _, p := range tagOrder {
		if strings.Contains(line, p.Tag()) {
			return p
		}
	}
	return PriorityMedium
}

// StripTags removes every known priority tag from a task description and
// trims the result. All four tags are reserved markup anywhere in a line.
func StripTags(text string) string {
	for _, p := range tagOrder {
		text = strings.ReplaceAll(text, p.Tag(), "")
	}
	return strings.TrimSpace(text)
}

// ParsePriority parses a user-supplied priority name.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(s))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q: must be one of low, medium, high, urgent", s)
}
