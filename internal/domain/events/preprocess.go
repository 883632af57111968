package events

import (
	"sort"
	"time"

	"github.com/sepsis/cohort/internal/domain/cohort"
)

// MinCultureHour is the earliest hospital hour at which a blood culture can
// count toward suspected infection. Cultures drawn before 72 hours reflect
// the presenting condition rather than a hospital-acquired infection.
const MinCultureHour = 72

// PrepareCultures turns raw blood culture rows for a single admission into
// the ordered event table the matcher consumes. Cultures drawn before hour
// 72 are dropped, the rest are ordered by chart time, and at most one
// culture is kept per hospital day (the earliest). Index is assigned from
// the final order.
func PrepareCultures(adm cohort.Admission, rows []CultureRow) []CultureEvent {
	kept := make([]CultureRow, 0, len(rows))
	for _, r := range rows {
		if adm.HourIndex(r.ChartTime) >= MinCultureHour {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].ChartTime.Before(kept[j].ChartTime)
	})

	out := make([]CultureEvent, 0, len(kept))
	seenDay := make(map[int]struct{}, len(kept))
	for _, r := range kept {
		day := adm.DayIndex(r.ChartTime)
		if _, dup := seenDay[day]; dup {
			continue
		}
		seenDay[day] = struct{}{}
		out = append(out, CultureEvent{
			HadmID:    adm.HadmID,
			Index:     len(out),
			ChartTime: r.ChartTime,
			Day:       day,
		})
	}
	return out
}

// ConsolidateAntibiotics merges qualified prescription orders for a single
// admission into antibiotic courses and applies the sepsis treatment
// criteria. Orders with an end date before their start date are dropped.
// Orders of the same drug continue one course while each order starts within
// a day of the previous order's end; a longer gap opens a new course. Each
// course spans the earliest start to the latest end of its orders.
//
// A course qualifies when it did not start on the first hospital day and ran
// for at least four days or through discharge. At most one course is kept
// per start day, and Index is assigned from the final start-date order.
func ConsolidateAntibiotics(adm cohort.Admission, orders []AbxOrder) []AntibioticEvent {
	clean := make([]AbxOrder, 0, len(orders))
	type orderKey struct {
		drug       string
		start, end time.Time
	}
	seen := make(map[orderKey]struct{}, len(orders))
	for _, o := range orders {
		o.StartDate = cohort.DateOf(o.StartDate)
		o.EndDate = cohort.DateOf(o.EndDate)
		if o.EndDate.Before(o.StartDate) {
			continue
		}
		k := orderKey{o.Drug, o.StartDate, o.EndDate}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		clean = append(clean, o)
	}

	sort.SliceStable(clean, func(i, j int) bool {
		a, b := clean[i], clean[j]
		if a.Drug != b.Drug {
			return a.Drug < b.Drug
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.EndDate.Before(b.EndDate)
	})

	var courses []AntibioticEvent
	for i, o := range clean {
		newCourse := i == 0 ||
			clean[i-1].Drug != o.Drug ||
			cohort.DaysBetween(clean[i-1].EndDate, o.StartDate) > 1
		if newCourse {
			courses = append(courses, AntibioticEvent{
				HadmID:    adm.HadmID,
				Drug:      o.Drug,
				StartDate: o.StartDate,
				EndDate:   o.EndDate,
			})
			continue
		}
		last := &courses[len(courses)-1]
		if o.EndDate.After(last.EndDate) {
			last.EndDate = o.EndDate
		}
	}

	qualified := courses[:0]
	for _, c := range courses {
		c.Day = adm.DayIndex(c.StartDate)
		if c.Day <= 1 {
			continue
		}
		duration := cohort.DaysBetween(c.StartDate, c.EndDate) + 1
		if duration < 4 && c.EndDate.Before(adm.DischDate()) {
			continue
		}
		qualified = append(qualified, c)
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].StartDate.Before(qualified[j].StartDate)
	})

	out := make([]AntibioticEvent, 0, len(qualified))
	seenDay := make(map[int]struct{}, len(qualified))
	for _, c := range qualified {
		if _, dup := seenDay[c.Day]; dup {
			continue
		}
		seenDay[c.Day] = struct{}{}
		c.Index = len(out)
		out = append(out, c)
	}
	return out
}

// PrepareScores stamps raw SOFA rows for a single admission with their
// hospital day and back-reference index. Rows keep their chronological
// input order.
func PrepareScores(adm cohort.Admission, rows []SOFARow) []SOFASample {
	out := make([]SOFASample, 0, len(rows))
	for _, r := range rows {
		out = append(out, SOFASample{
			HadmID:    adm.HadmID,
			Index:     len(out),
			StartTime: r.StartTime,
			Day:       adm.DayIndex(r.StartTime),
			Score:     r.Score,
		})
	}
	return out
}
