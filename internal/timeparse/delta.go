// Package timeparse converts raw spreadsheet cell values into minute deltas,
// calendar dates and wall-clock times. The source data is hand-entered and
// inconsistent, so these parsers accept every format seen in the field and
// flag anything genuinely malformed instead of dropping it.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DeltaResult is the outcome of parsing one Diferença cell.
type DeltaResult struct {
	Minutes    int
	Missing    bool // cell was empty or a placeholder dash
	ParseError bool // cell had content but matched no known format
}

var (
	// Primary grammar: mandatory sign, then hours and/or minutes.
	// Accepts +2h55min, -1h, +30min (whitespace already stripped).
	deltaRe = regexp.MustCompile(`^([+-])(?:(\d+)h)?(?:(\d+)min)?$`)

	// Fallbacks: clock-style hours:minutes, then a bare minute count.
	// Sign is optional and defaults to positive for both.
	clockDeltaRe = regexp.MustCompile(`^([+-])?(\d+):(\d+)$`)
	bareDeltaRe  = regexp.MustCompile(`^([+-])?(\d+)$`)
)

// ParseDelta parses a Diferença cell value into signed minutes.
// It accepts any cell representation; non-string values are rendered to text
// first so the grammar below is the single source of truth.
func ParseDelta(value any) DeltaResult {
	if value == nil {
		return DeltaResult{Missing: true}
	}

	str := strings.TrimSpace(CellText(value))
	if str == "" || str == "-" || str == "–" || str == "—" {
		return DeltaResult{Missing: true}
	}

	clean := strings.ToLower(removeSpaces(str))

	if m := deltaRe.FindStringSubmatch(clean); m != nil {
		// A sign with neither component is not a value.
		if m[2] == "" && m[3] == "" {
			return DeltaResult{ParseError: true}
		}
		sign := 1
		if m[1] == "-" {
			sign = -1
		}
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		return DeltaResult{Minutes: sign * (hours*60 + minutes)}
	}

	if m := clockDeltaRe.FindStringSubmatch(clean); m != nil {
		sign := 1
		if m[1] == "-" {
			sign = -1
		}
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		return DeltaResult{Minutes: sign * (hours*60 + minutes)}
	}

	if m := bareDeltaRe.FindStringSubmatch(clean); m != nil {
		sign := 1
		if m[1] == "-" {
			sign = -1
		}
		minutes, _ := strconv.Atoi(m[2])
		return DeltaResult{Minutes: sign * minutes}
	}

	return DeltaResult{ParseError: true}
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// ClockMinutes parses wall-clock text like "09:30" or "17:05:00" into minutes
// since midnight. It reports false for anything that is not a plausible time
// of day, so garbage in the entrada/intervalo/retorno columns never counts.
func ClockMinutes(value string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// CellText renders a cell value to text. This is the only place the pipeline
// branches on a cell's runtime representation; downstream code sees strings,
// minute counts or time.Time, never raw cells.
func CellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("02/01/2006")
	default:
		return fmt.Sprint(v)
	}
}

func removeSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
