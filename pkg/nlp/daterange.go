package nlp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"Fintar/internal/entity"
)

var ErrNoDateRange = errors.New("no date range in text")

const DefaultTimezone = "Asia/Jakarta"

// LoadLocation loads name, falling back to a fixed UTC+7 zone when the
// host has no tz database.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60), err
	}
	return loc, nil
}

// DateRangeResolver turns a date phrase into a calendar range. Every anchor
// is computed in one fixed location so "today" does not depend on the host.
type DateRangeResolver struct {
	vocab *Vocabulary
	loc   *time.Location
	now   func() time.Time

	spanPattern     *regexp.Regexp
	fromToPattern   *regexp.Regexp
	namedMonth      *regexp.Regexp
	namedYear       *regexp.Regexp
	resolutionOrder []func(text string, today time.Time) (entity.DateRange, bool)
}

func NewDateRangeResolver(vocab *Vocabulary, loc *time.Location, now func() time.Time) *DateRangeResolver {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}

	r := &DateRangeResolver{
		vocab: vocab,
		loc:   loc,
		now:   now,
		spanPattern: regexp.MustCompile(
			`(?:^|\s)(\d{1,2})\s*-\s*(\d{1,2})\s+([a-z]+)\s+(\d{4})\b`),
		fromToPattern: regexp.MustCompile(fmt.Sprintf(
			`(?:^|\s)(?:%s)\s+(\d{1,2})\s+([a-z]+)\s+(\d{4})\s+(?:%s)\s+(\d{1,2})(?:\s+([a-z]+))?(?:\s+(\d{4}))?\b`,
			alternation(vocab.RangeFrom), alternation(append([]string{"s/d"}, vocab.RangeTo...)))),
		namedMonth: regexp.MustCompile(fmt.Sprintf(
			`(?:^|\s)(?:%s)\s+([a-z]+)(?:\s+(\d{4}))?\b`, alternation(vocab.MonthPrefixes))),
		namedYear: regexp.MustCompile(fmt.Sprintf(
			`(?:^|\s)(?:%s)\s+(\d{4})\b`, alternation(vocab.YearPrefixes))),
	}

	r.resolutionOrder = []func(string, time.Time) (entity.DateRange, bool){
		r.explicitRange,
		r.dayAnchor,
		r.weekAnchor,
		r.monthAnchor,
		r.yearAnchor,
	}

	return r
}

func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(w)))
	}
	return strings.Join(quoted, "|")
}

// Today returns the current civil date in the resolver's location.
func (r *DateRangeResolver) Today() time.Time {
	return entity.CivilDate(r.now(), r.loc)
}

// Resolve returns the first range the phrase describes. ok is false when no
// temporal filter is present.
func (r *DateRangeResolver) Resolve(phrase string) (entity.DateRange, bool) {
	text := normalizeSpaces(phrase)
	if text == "" {
		return entity.DateRange{}, false
	}

	today := r.Today()
	for _, resolve := range r.resolutionOrder {
		if dr, ok := resolve(text, today); ok {
			return dr, true
		}
	}

	return entity.DateRange{}, false
}

func (r *DateRangeResolver) explicitRange(text string, _ time.Time) (entity.DateRange, bool) {
	if m := r.spanPattern.FindStringSubmatch(text); m != nil {
		month, ok := r.vocab.Months[m[3]]
		if !ok {
			return entity.DateRange{}, false
		}
		year, _ := strconv.Atoi(m[4])
		d1, _ := strconv.Atoi(m[1])
		d2, _ := strconv.Atoi(m[2])
		return r.span(year, month, d1, year, month, d2)
	}

	if m := r.fromToPattern.FindStringSubmatch(text); m != nil {
		month1, ok := r.vocab.Months[m[2]]
		if !ok {
			return entity.DateRange{}, false
		}
		d1, _ := strconv.Atoi(m[1])
		year1, _ := strconv.Atoi(m[3])
		d2, _ := strconv.Atoi(m[4])

		month2, year2 := month1, year1
		if m[5] != "" {
			if mm, ok := r.vocab.Months[m[5]]; ok {
				month2 = mm
			}
		}
		if m[6] != "" {
			year2, _ = strconv.Atoi(m[6])
		}
		return r.span(year1, month1, d1, year2, month2, d2)
	}

	return entity.DateRange{}, false
}

func (r *DateRangeResolver) span(y1 int, m1 time.Month, d1 int, y2 int, m2 time.Month, d2 int) (entity.DateRange, bool) {
	start, ok := civil(y1, m1, d1)
	if !ok {
		return entity.DateRange{}, false
	}
	end, ok := civil(y2, m2, d2)
	if !ok || end.Before(start) {
		return entity.DateRange{}, false
	}

	return entity.DateRange{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s - %s", r.formatDay(start), r.formatDay(end)),
	}, true
}

// civil builds a date and rejects days that would roll over, such as
// 31 February.
func civil(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func (r *DateRangeResolver) dayAnchor(text string, today time.Time) (entity.DateRange, bool) {
	if ContainsAny(text, r.vocab.Today) {
		return entity.DateRange{Start: today, End: today, Label: "hari ini"}, true
	}
	// "bulan kemarin" and "minggu kemarin" reuse the word for yesterday.
	if ContainsAny(text, r.vocab.Yesterday) && !r.namesPreviousPeriod(text) {
		y := today.AddDate(0, 0, -1)
		return entity.DateRange{Start: y, End: y, Label: "kemarin"}, true
	}
	return entity.DateRange{}, false
}

func (r *DateRangeResolver) namesPreviousPeriod(text string) bool {
	return ContainsAny(text, r.vocab.LastWeek) ||
		ContainsAny(text, r.vocab.LastMonth) ||
		ContainsAny(text, r.vocab.LastYear)
}

// Weeks run Sunday to Saturday.
func (r *DateRangeResolver) weekAnchor(text string, today time.Time) (entity.DateRange, bool) {
	start := today.AddDate(0, 0, -int(today.Weekday()))

	if ContainsAny(text, r.vocab.ThisWeek) {
		return entity.DateRange{Start: start, End: start.AddDate(0, 0, 6), Label: "minggu ini"}, true
	}
	if ContainsAny(text, r.vocab.LastWeek) {
		return entity.DateRange{
			Start: start.AddDate(0, 0, -7),
			End:   start.AddDate(0, 0, -1),
			Label: "minggu lalu",
		}, true
	}
	return entity.DateRange{}, false
}

func (r *DateRangeResolver) monthAnchor(text string, today time.Time) (entity.DateRange, bool) {
	if ContainsAny(text, r.vocab.ThisMonth) {
		return r.month(today.Year(), today.Month()), true
	}
	if ContainsAny(text, r.vocab.LastMonth) {
		prev := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		return r.month(prev.Year(), prev.Month()), true
	}

	for _, m := range r.namedMonth.FindAllStringSubmatch(text, -1) {
		month, ok := r.vocab.Months[m[1]]
		if !ok {
			continue
		}
		year := today.Year()
		if m[2] != "" {
			year, _ = strconv.Atoi(m[2])
		}
		return r.month(year, month), true
	}

	return entity.DateRange{}, false
}

func (r *DateRangeResolver) month(year int, month time.Month) entity.DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return entity.DateRange{
		Start: start,
		End:   start.AddDate(0, 1, -1),
		Label: fmt.Sprintf("bulan %s %d", r.vocab.MonthName(month), year),
	}
}

func (r *DateRangeResolver) yearAnchor(text string, today time.Time) (entity.DateRange, bool) {
	switch {
	case ContainsAny(text, r.vocab.ThisYear):
		return r.year(today.Year()), true
	case ContainsAny(text, r.vocab.LastYear):
		return r.year(today.Year() - 1), true
	}

	if m := r.namedYear.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		return r.year(year), true
	}

	return entity.DateRange{}, false
}

func (r *DateRangeResolver) year(year int) entity.DateRange {
	return entity.DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		Label: fmt.Sprintf("tahun %d", year),
	}
}

func (r *DateRangeResolver) formatDay(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), r.vocab.MonthName(t.Month()), t.Year())
}
