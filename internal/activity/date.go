package activity

import (
	"fmt"

	"cloud.google.com/go/civil"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil || !d.IsValid() {
		return civil.Date{}, &ValidationError{
			Field:  "date",
			Value:  s,
			Reason: "expected a calendar date in " + dateLayout + " form",
		}
	}
	return d, nil
}

// ParseDates parses all dates, failing on the first malformed one.
func ParseDates(values []string) ([]civil.Date, error) {
	dates := make([]civil.Date, 0, len(values))
	for i, v := range values {
		d, err := ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("date at index %d: %w", i, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
