package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepsis/cohort/internal/domain/cohort"
)

func testAdmission() cohort.Admission {
	return cohort.Admission{
		HadmID:    100,
		SubjectID: 1,
		AdmitTime: time.Date(2150, 1, 1, 12, 0, 0, 0, time.UTC),
		DischTime: time.Date(2150, 1, 20, 10, 0, 0, 0, time.UTC),
	}
}

func ts(day, hour, min int) time.Time {
	return time.Date(2150, 1, day, hour, min, 0, 0, time.UTC)
}

func date(day int) time.Time {
	return time.Date(2150, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestPrepareCultures_HourCutoff(t *testing.T) {
	adm := testAdmission()
	// Hour 72 falls at Jan 4 12:00; the cutoff rounds to the nearest hour.
	rows := []CultureRow{
		{HadmID: 100, ChartTime: ts(4, 11, 29)}, // rounds to hour 71
		{HadmID: 100, ChartTime: ts(4, 11, 31)}, // rounds to hour 72
		{HadmID: 100, ChartTime: ts(2, 8, 0)},
	}

	got := PrepareCultures(adm, rows)
	require.Len(t, got, 1)
	assert.Equal(t, ts(4, 11, 31), got[0].ChartTime)
	assert.Equal(t, 4, got[0].Day)
	assert.Equal(t, 0, got[0].Index)
}

func TestPrepareCultures_OnePerDay(t *testing.T) {
	adm := testAdmission()
	rows := []CultureRow{
		{HadmID: 100, ChartTime: ts(5, 16, 0)},
		{HadmID: 100, ChartTime: ts(5, 9, 0)},
		{HadmID: 100, ChartTime: ts(7, 3, 0)},
	}

	got := PrepareCultures(adm, rows)
	require.Len(t, got, 2)
	// Earliest culture of the day wins.
	assert.Equal(t, ts(5, 9, 0), got[0].ChartTime)
	assert.Equal(t, 5, got[0].Day)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 7, got[1].Day)
	assert.Equal(t, 1, got[1].Index)
}

func TestConsolidateAntibiotics_MergesContiguousOrders(t *testing.T) {
	adm := testAdmission()
	orders := []AbxOrder{
		{HadmID: 100, Drug: "vancomycin", StartDate: date(3), EndDate: date(5)},
		{HadmID: 100, Drug: "vancomycin", StartDate: date(6), EndDate: date(9)},
	}

	got := ConsolidateAntibiotics(adm, orders)
	require.Len(t, got, 1)
	assert.Equal(t, date(3), got[0].StartDate)
	assert.Equal(t, date(9), got[0].EndDate)
	assert.Equal(t, 3, got[0].Day)
	assert.Equal(t, 0, got[0].Index)
}

func TestConsolidateAntibiotics_GapOpensNewCourse(t *testing.T) {
	adm := testAdmission()
	// Two-day gap between orders of the same drug splits the course. Both
	// fragments then fail the four-day duration criterion.
	orders := []AbxOrder{
		{HadmID: 100, Drug: "vancomycin", StartDate: date(3), EndDate: date(4)},
		{HadmID: 100, Drug: "vancomycin", StartDate: date(7), EndDate: date(8)},
	}

	got := ConsolidateAntibiotics(adm, orders)
	assert.Empty(t, got)
}

func TestConsolidateAntibiotics_DropsInvalidAndFirstDay(t *testing.T) {
	adm := testAdmission()
	orders := []AbxOrder{
		{HadmID: 100, Drug: "meropenem", StartDate: date(5), EndDate: date(4)},
		{HadmID: 100, Drug: "gentamicin", StartDate: date(1), EndDate: date(10)},
		{HadmID: 100, Drug: "vancomycin", StartDate: date(2), EndDate: date(6)},
	}

	got := ConsolidateAntibiotics(adm, orders)
	require.Len(t, got, 1)
	assert.Equal(t, "vancomycin", got[0].Drug)
	assert.Equal(t, 2, got[0].Day)
}

func TestConsolidateAntibiotics_UntilDischarge(t *testing.T) {
	adm := testAdmission()
	// Three-day course, too short on its own, but it runs through discharge.
	orders := []AbxOrder{
		{HadmID: 100, Drug: "meropenem", StartDate: date(18), EndDate: date(20)},
	}

	got := ConsolidateAntibiotics(adm, orders)
	require.Len(t, got, 1)
	assert.Equal(t, 18, got[0].Day)
}

func TestConsolidateAntibiotics_OneCoursePerStartDay(t *testing.T) {
	adm := testAdmission()
	orders := []AbxOrder{
		{HadmID: 100, Drug: "vancomycin", StartDate: date(5), EndDate: date(12)},
		{HadmID: 100, Drug: "gentamicin", StartDate: date(5), EndDate: date(9)},
		{HadmID: 100, Drug: "meropenem", StartDate: date(8), EndDate: date(14)},
	}

	got := ConsolidateAntibiotics(adm, orders)
	require.Len(t, got, 2)
	assert.Equal(t, "gentamicin", got[0].Drug)
	assert.Equal(t, 5, got[0].Day)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, "meropenem", got[1].Drug)
	assert.Equal(t, 8, got[1].Day)
	assert.Equal(t, 1, got[1].Index)
}

func TestConsolidateAntibiotics_DeduplicatesOrders(t *testing.T) {
	adm := testAdmission()
	orders := []AbxOrder{
		{HadmID: 100, Drug: "vancomycin", StartDate: date(3), EndDate: date(7)},
		{HadmID: 100, Drug: "vancomycin", StartDate: date(3), EndDate: date(7)},
	}

	got := ConsolidateAntibiotics(adm, orders)
	require.Len(t, got, 1)
	assert.Equal(t, date(3), got[0].StartDate)
	assert.Equal(t, date(7), got[0].EndDate)
}

func TestPrepareScores(t *testing.T) {
	adm := testAdmission()
	rows := []SOFARow{
		{HadmID: 100, StartTime: ts(1, 13, 0), Score: 4},
		{HadmID: 100, StartTime: ts(2, 1, 0), Score: 5},
		{HadmID: 100, StartTime: ts(2, 2, 0), Score: 7},
	}

	got := PrepareScores(adm, rows)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Day)
	assert.Equal(t, 2, got[1].Day)
	assert.Equal(t, 2, got[2].Day)
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Index, got[1].Index, got[2].Index})
	assert.Equal(t, 7.0, got[2].Score)
}
