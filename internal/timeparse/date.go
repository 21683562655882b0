package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	brDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// excelEpoch is the serial-date origin used by spreadsheet applications.
// Day 1 is 1899-12-31, with the well-known off-by-one for the phantom
// 1900-02-29, which lands the epoch on 1899-12-30.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate converts a Data cell into a calendar date. Dates have no error
// state: anything unrecognized simply reports ok=false, meaning "no date
// available" rather than a malformed row.
//
// Accepted inputs: a native time.Time, a numeric spreadsheet serial date, or
// text in DD/MM/YYYY or YYYY-MM-DD form. Calendar overflow such as 31/02 is
// rejected.
func ParseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case float64:
		return serialDate(v)
	case float32:
		return serialDate(float64(v))
	case int:
		return serialDate(float64(v))
	case int64:
		return serialDate(float64(v))
	}

	str := strings.TrimSpace(CellText(value))
	if str == "" || str == "-" {
		return time.Time{}, false
	}

	if m := brDateRe.FindStringSubmatch(str); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return calendarDate(year, month, day)
	}

	if m := isoDateRe.FindStringSubmatch(str); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return calendarDate(year, month, day)
	}

	return time.Time{}, false
}

func serialDate(serial float64) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}
	d := excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
	return d, true
}

// calendarDate builds a date and rejects overflow: time.Date normalizes
// 31/02 into early March, so re-extracting the components catches it.
func calendarDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}
