package sepsis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepsis/cohort/internal/domain/events"
)

func sofaSample(index, day int, score float64) events.SOFASample {
	return events.SOFASample{HadmID: 100, Index: index, Day: day, Score: score}
}

func TestDetectDysfunction_Threshold(t *testing.T) {
	// The rise must exceed one point; a one-point rise is not dysfunction.
	positive := DetectDysfunction(10, []events.SOFASample{
		sofaSample(0, 9, 2),
		sofaSample(1, 11, 5),
	})
	require.True(t, positive.Dysfunction)
	require.NotNil(t, positive.EarlierIndex)
	require.NotNil(t, positive.LaterIndex)
	assert.Equal(t, 0, *positive.EarlierIndex)
	assert.Equal(t, 1, *positive.LaterIndex)

	negative := DetectDysfunction(10, []events.SOFASample{
		sofaSample(0, 9, 2),
		sofaSample(1, 11, 3),
	})
	assert.False(t, negative.Dysfunction)
	assert.Nil(t, negative.EarlierIndex)
	assert.Nil(t, negative.LaterIndex)
}

func TestDetectDysfunction_WindowBounds(t *testing.T) {
	// Days 7 and 13 sit inside the window around day 10; days 6 and 14 do
	// not.
	outside := DetectDysfunction(10, []events.SOFASample{
		sofaSample(0, 6, 0),
		sofaSample(1, 14, 9),
	})
	assert.False(t, outside.Dysfunction)

	inside := DetectDysfunction(10, []events.SOFASample{
		sofaSample(0, 7, 0),
		sofaSample(1, 13, 9),
	})
	assert.True(t, inside.Dysfunction)
}

func TestDetectDysfunction_FirstPairWins(t *testing.T) {
	// Later samples are scanned in order; for each, earlier partners in
	// order. The pair (index 3, index 5) beats (index 4, index 5).
	got := DetectDysfunction(10, []events.SOFASample{
		sofaSample(3, 8, 4),
		sofaSample(4, 9, 3),
		sofaSample(5, 11, 6),
	})
	require.True(t, got.Dysfunction)
	assert.Equal(t, 3, *got.EarlierIndex)
	assert.Equal(t, 5, *got.LaterIndex)
}

func TestDetectDysfunction_DropNeverQualifies(t *testing.T) {
	// A falling score never counts, whatever the magnitude.
	got := DetectDysfunction(10, []events.SOFASample{
		sofaSample(0, 9, 9),
		sofaSample(1, 11, 2),
	})
	assert.False(t, got.Dysfunction)
}

func TestDetectDysfunction_TooFewSamples(t *testing.T) {
	assert.False(t, DetectDysfunction(10, nil).Dysfunction)
	assert.False(t, DetectDysfunction(10, []events.SOFASample{sofaSample(0, 10, 4)}).Dysfunction)
}
