package utils

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	// SnapTimestampLayout cobre campos como created_at: "2019-04-28T07:25:39.668Z"
	SnapTimestampLayout = "2006-01-02T15:04:05.999999Z"
	// SnapStatsTimeLayout cobre start_time/end_time das séries: "2019-04-12T00:00:00.000-07:00"
	SnapStatsTimeLayout = "2006-01-02T15:04:05.999999Z07:00"

	windowTimeSuffix = "T00:00:00.000000-0700"

	DefaultLookbackDays = 29
)

var (
	ErrParse = errors.New("parse error")

	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("utils: no YYYY-MM-DD date found in %q", e.Value)
	}
	return fmt.Sprintf("utils: cannot parse %q with layout %q: %v", e.Value, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ParseDate interpreta dateStr com o layout informado e devolve YYYY-MM-DD
func ParseDate(dateStr, layout string) (string, error) {
	date, err := time.Parse(layout, dateStr)
	if err != nil {
		return "", &ParseError{Value: dateStr, Layout: layout, Err: err}
	}

	return date.Format(time.DateOnly), nil
}

// ParseDateRegex extrai o primeiro trecho YYYY-MM-DD de um timestamp
func ParseDateRegex(dateStr string) (string, error) {
	date := datePattern.FindString(dateStr)
	if date == "" {
		return "", &ParseError{Value: dateStr}
	}

	return date, nil
}

// DateRange é a janela [Start, End) usada nas consultas de stats
type DateRange struct {
	Start string `json:"start_datetime"`
	End   string `json:"end_datetime"`
}

// CreateDates calcula a janela relativa ao dia atual em UTC.
// O fim não inclui o dia corrente: os dois limites são meia-noite em UTC-7.
func CreateDates(lookbackDays, daysSkip int) DateRange {
	return CreateDatesAt(time.Now().UTC(), lookbackDays, daysSkip)
}

func CreateDatesAt(now time.Time, lookbackDays, daysSkip int) DateRange {
	end := now.UTC().AddDate(0, 0, -daysSkip)
	start := end.AddDate(0, 0, -lookbackDays)

	return DateRange{
		Start: start.Format(time.DateOnly) + windowTimeSuffix,
		End:   end.Format(time.DateOnly) + windowTimeSuffix,
	}
}
