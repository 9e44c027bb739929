// Package analytics contains reporting use cases. Every statistic is
// recomputed from freshly fetched live records on each call; nothing is
// cached or stored.
package analytics

import "time"

// Period selects how far back a report reaches.
type Period string

const (
	PeriodMonth    Period = "1m"
	PeriodQuarter  Period = "3m"
	PeriodHalfYear Period = "6m"
	PeriodYear     Period = "1y"
	PeriodLifetime Period = "lifetime"
)

// ParsePeriod maps a query-string value to a Period, defaulting to lifetime.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodMonth, PeriodQuarter, PeriodHalfYear, PeriodYear:
		return Period(s)
	default:
		return PeriodLifetime
	}
}

// CutoffDate returns the inclusive lower bound for the period as a
// local-calendar "YYYY-MM-DD" string, or "" for lifetime. Record dates are
// stored as the same kind of string, so the comparison is lexicographic.
func CutoffDate(p Period, now time.Time) string {
	var start time.Time
	switch p {
	case PeriodMonth:
		start = now.AddDate(0, -1, 0)
	case PeriodQuarter:
		start = now.AddDate(0, -3, 0)
	case PeriodHalfYear:
		start = now.AddDate(0, -6, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return ""
	}
	return start.Format("2006-01-02")
}

// InPeriod reports whether a record date string falls inside the period
// starting at cutoff. An empty cutoff means lifetime.
func InPeriod(date, cutoff string) bool {
	return cutoff == "" || date >= cutoff
}
