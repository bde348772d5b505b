package model

import "time"

// DateLayout is the todo.txt date format: zero-padded, 4-digit year.
const DateLayout = "2006-01-02"

// dateWidth is the exact width of a well-formed date token.
const dateWidth = 10

// ParseDate parses an exact-width YYYY-MM-DD date. It returns false for
// anything that is not ten characters of digits and dashes in the right
// positions, and for calendar-invalid dates (month outside 1-12, day outside
// the month's range for that year).
func ParseDate(s string) (time.Time, bool) {
	if len(s) != dateWidth {
		return time.Time{}, false
	}

	for i := 0; i < dateWidth; i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return time.Time{}, false
			}

			continue
		}

		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, false
		}
	}

	// time.Parse rejects out-of-range months and days, leap years included.
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}

// FormatDate renders a date in the todo.txt format.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}
