package sepsis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepsis/cohort/internal/domain/events"
)

func cxEvent(index, day int) events.CultureEvent {
	return events.CultureEvent{
		HadmID:    100,
		Index:     index,
		ChartTime: time.Date(2150, 1, day, 8, 0, 0, 0, time.UTC),
		Day:       day,
	}
}

func abxEvent(index, day int) events.AntibioticEvent {
	return events.AntibioticEvent{HadmID: 100, Index: index, Drug: "vancomycin", Day: day}
}

func TestMatchInfections_Window(t *testing.T) {
	cultures := []events.CultureEvent{cxEvent(0, 10)}
	antibiotics := []events.AntibioticEvent{
		abxEvent(0, 7),  // three days out
		abxEvent(1, 8),  // qualifies
		abxEvent(2, 12), // qualifies
		abxEvent(3, 13), // three days out
	}

	got := MatchInfections(cultures, antibiotics)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].CultureIndex)
	assert.Equal(t, 1, got[0].AntibioticIndex)
	assert.Equal(t, 10, got[0].OnsetDay)
	assert.Equal(t, cultures[0].ChartTime, got[0].OnsetTime)
}

func TestMatchInfections_FirstInTableOrderWins(t *testing.T) {
	// The antibiotic two days out sits earlier in the table than the one a
	// single day out; table order decides, not temporal distance.
	cultures := []events.CultureEvent{cxEvent(0, 10)}
	antibiotics := []events.AntibioticEvent{
		abxEvent(0, 12),
		abxEvent(1, 11),
	}

	got := MatchInfections(cultures, antibiotics)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].AntibioticIndex)
}

func TestMatchInfections_NoMatch(t *testing.T) {
	cultures := []events.CultureEvent{cxEvent(0, 10)}
	antibiotics := []events.AntibioticEvent{abxEvent(0, 5), abxEvent(1, 15)}

	assert.Empty(t, MatchInfections(cultures, antibiotics))
	assert.Empty(t, MatchInfections(cultures, nil))
	assert.Empty(t, MatchInfections(nil, antibiotics))
}

func TestMatchInfections_CandidatePerCulture(t *testing.T) {
	cultures := []events.CultureEvent{cxEvent(0, 6), cxEvent(1, 10)}
	antibiotics := []events.AntibioticEvent{abxEvent(0, 8)}

	got := MatchInfections(cultures, antibiotics)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].CultureIndex)
	assert.Equal(t, 1, got[1].CultureIndex)
	for _, c := range got {
		assert.Equal(t, 0, c.AntibioticIndex)
	}
}
