package sepsis

import "github.com/sepsis/cohort/internal/domain/events"

// infectionWindowDays bounds the spacing between a blood culture and an
// antibiotic start for the pair to suggest a treated infection. Two days on
// either side of the culture gives the five-day window of the Sepsis-3
// suspicion criterion.
const infectionWindowDays = 2

// MatchInfections pairs each blood culture with the admission's antibiotic
// courses. A culture becomes an infection candidate when some course started
// within two days of it, in either direction. The matched course is the
// first qualifying one in table order, and the culture timestamp becomes the
// candidate onset. Candidates come out in culture order.
func MatchInfections(cultures []events.CultureEvent, antibiotics []events.AntibioticEvent) []InfectionCandidate {
	var out []InfectionCandidate
	for _, cx := range cultures {
		for _, abx := range antibiotics {
			if absInt(cx.Day-abx.Day) > infectionWindowDays {
				continue
			}
			out = append(out, InfectionCandidate{
				HadmID:          cx.HadmID,
				CultureIndex:    cx.Index,
				AntibioticIndex: abx.Index,
				OnsetTime:       cx.ChartTime,
				OnsetDay:        cx.Day,
			})
			break
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
