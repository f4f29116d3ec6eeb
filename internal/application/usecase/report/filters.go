// Package report contains the filtered table views shared by the dashboard
// endpoints.
package report

import (
	"strings"
	"time"
)

// Every filter in the system is a left-to-right conjunction: an omitted
// criterion passes everything, and there are no OR semantics anywhere.

// memberOf reports whether value is in the selection set. An empty selection
// means "all" and passes every value.
func memberOf(value string, selection []string) bool {
	if len(selection) == 0 {
		return true
	}
	for _, s := range selection {
		if value == s {
			return true
		}
	}
	return false
}

// inDateRange reports whether t falls inside the inclusive [from, to] range.
// Comparison is at calendar-day precision, so a record timestamped anywhere on
// the "to" day still passes. A nil bound is open; a nil time only passes when
// both bounds are open.
func inDateRange(t *time.Time, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if t == nil {
		return false
	}
	day := truncateToDay(*t)
	if from != nil && day.Before(truncateToDay(*from)) {
		return false
	}
	if to != nil && day.After(truncateToDay(*to)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// containsFold reports whether haystack contains needle case-insensitively.
// An empty needle passes everything.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
