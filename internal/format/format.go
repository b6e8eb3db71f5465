// Package format holds the display and wire formatting rules shared by
// the gateways and the list renderers.
package format

import (
	"fmt"
	"time"
)

// CurrencyPrefix is the fixed prefix for monetary values.
const CurrencyPrefix = "R$"

// dateTimeLayout is the pt-BR long form used everywhere a timestamp is shown.
const dateTimeLayout = "02/01/2006 15:04"

// Wire layouts. The server emits ISO timestamps without a zone; tolerate
// a zone suffix anyway.
var apiTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

// Money renders a monetary value with exactly two decimal places.
func Money(v float64) string {
	return fmt.Sprintf("%s %.2f", CurrencyPrefix, v)
}

// Duration renders an estimated duration in minutes.
func Duration(minutes int) string {
	return fmt.Sprintf("%d minutos", minutes)
}

// DateTime renders a timestamp in the local long-form convention.
func DateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// ParseAPITime parses a timestamp as the server emits it.
func ParseAPITime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range apiTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, lastErr)
}

// APIDateTime renders a raw server timestamp for display, falling back to
// the raw string when it does not parse.
func APIDateTime(s string) string {
	t, err := ParseAPITime(s)
	if err != nil {
		return s
	}
	return DateTime(t)
}

// DayInterval expands a calendar date (2006-01-02) into the closed
// interval covering that whole day, in the wire format the server's
// data_inicio/data_fim filters expect.
func DayInterval(date string) (start, end string) {
	return date + "T00:00:00", date + "T23:59:59"
}

// SplitDateTime splits a server timestamp into the separate calendar date
// and 24-hour minute-precision time values the edit form uses.
func SplitDateTime(s string) (date, hora string, err error) {
	t, err := ParseAPITime(s)
	if err != nil {
		return "", "", err
	}
	return t.Format("2006-01-02"), t.Format("15:04"), nil
}

// JoinDateTime recombines the form's date and time inputs into the
// combined data_hora wire field.
func JoinDateTime(date, hora string) string {
	return date + "T" + hora + ":00"
}
