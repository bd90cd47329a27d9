package entity

import "time"

const DateLayout = "2006-01-02"

// CivilDate drops the time of day of t as observed in loc. The result is
// midnight UTC so that dates compare and format the same everywhere.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseCivilDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// DateRange is an inclusive calendar interval, Start <= End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

func (r DateRange) Contains(date time.Time) bool {
	d := CivilDate(date, nil)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}
