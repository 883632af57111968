package sepsis

import "github.com/sepsis/cohort/internal/domain/events"

// dysfunctionWindowDays bounds the scan for a SOFA rise around a candidate
// day: three days before through three days after, inclusive.
const dysfunctionWindowDays = 3

// DetectDysfunction scans the modified SOFA scores inside the seven-day
// window around day for an increase of more than one point between an
// earlier and a later sample. Window samples keep the input order of scores,
// which is assumed chronological. The first qualifying pair wins, scanning
// later samples in order and for each one its earlier partners in order.
//
// The verdict's back-references carry the Index fields of the matched
// samples. A window with fewer than two samples is a negative verdict.
func DetectDysfunction(day int, scores []events.SOFASample) DysfunctionVerdict {
	var window []events.SOFASample
	for _, s := range scores {
		if s.Day >= day-dysfunctionWindowDays && s.Day <= day+dysfunctionWindowDays {
			window = append(window, s)
		}
	}

	for later := 1; later < len(window); later++ {
		for earlier := 0; earlier < later; earlier++ {
			if window[later].Score-window[earlier].Score > 1 {
				ei, li := window[earlier].Index, window[later].Index
				return DysfunctionVerdict{
					Dysfunction:  true,
					EarlierIndex: &ei,
					LaterIndex:   &li,
				}
			}
		}
	}
	return DysfunctionVerdict{}
}
