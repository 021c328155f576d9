package domain

import (
	"fmt"
	"time"
)

// Month identifies one calendar-month bucket.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// MonthsBetween returns the inclusive, gap-free run of months from first to
// last. It returns nil when last precedes first.
func MonthsBetween(first, last Month) []Month {
	if last.Before(first) {
		return nil
	}
	var months []Month
	for m := first; !last.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}
