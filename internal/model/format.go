package model

import "fmt"

// FormatMinutes renders a signed minute total the way the spreadsheets write
// it: "+2h 55min", "-1h", "+30min". Zero renders as "+0min".
func FormatMinutes(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%s%dmin", sign, mins)
	case mins == 0:
		return fmt.Sprintf("%s%dh", sign, hours)
	default:
		return fmt.Sprintf("%s%dh %dmin", sign, hours, mins)
	}
}

// FormatDecimalHours renders a minute total as decimal hours, e.g. "2.92h".
func FormatDecimalHours(minutes int) string {
	return fmt.Sprintf("%.2fh", float64(minutes)/60)
}
