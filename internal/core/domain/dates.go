package domain

import "time"

const (
	// ISODate is the layout of contribution map keys.
	ISODate = "2006-01-02"

	displayDate         = "Jan 2"
	displayDateWithYear = "Jan 2, 2006"
)

// ParseISODate parses a YYYY-MM-DD key as midnight UTC.
func ParseISODate(date string) (time.Time, bool) {
	t, err := time.ParseInLocation(ISODate, date, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UTCDay truncates t to midnight of its UTC calendar day.
func UTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDisplayDate renders an ISO date as "Jan 2", or "Jan 2, 2006" when
// includeYear is set. Empty or malformed input yields an empty string.
func FormatDisplayDate(date string, includeYear bool) string {
	t, ok := ParseISODate(date)
	if !ok {
		return ""
	}
	if includeYear {
		return t.Format(displayDateWithYear)
	}
	return t.Format(displayDate)
}
