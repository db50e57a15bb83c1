package domain

import "time"

// Plan length bounds accepted by the generator.
const (
	MinPlanDays = 1
	MaxPlanDays = 60
)

// Plan is the current meal rotation: an ordered run of meals starting on
// StartYMD. NumDays records the requested length, which may exceed
// len(Days) when the catalog had fewer distinct meals than requested.
type Plan struct {
	Days     []Meal `json:"days"`
	StartYMD string `json:"startYMD"`
	NumDays  int    `json:"numDays"`
}

// IsEmpty reports whether no plan has been generated.
func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.Days) == 0
}

// ymdLayout is the wire format for StartYMD.
const ymdLayout = "2006-01-02"

// Today returns the current local date in YMD form.
func Today() string {
	return time.Now().Format(ymdLayout)
}

// DayLabel derives the display label for the i-th plan day from the start
// date, e.g. "Mon 2 Sep 2024". A malformed start date falls back to today.
func (p *Plan) DayLabel(i int) string {
	start, err := time.ParseInLocation(ymdLayout, p.StartYMD, time.Local)
	if err != nil {
		start = time.Now()
	}
	return start.AddDate(0, 0, i).Format("Mon 2 Jan 2006")
}
