package cohort

import (
	"strings"
	"time"
)

// Admission is one hospital stay, keyed by the hospital admission id
// (hadm_id). Immutable once loaded; every event table hangs off it.
type Admission struct {
	HadmID     int64     `db:"hadm_id" json:"hadm_id"`
	SubjectID  int64     `db:"subject_id" json:"subject_id"`
	AdmitTime  time.Time `db:"admittime" json:"admittime"`
	DischTime  time.Time `db:"dischtime" json:"dischtime"`
	ExpireFlag bool      `db:"hospital_expire_flag" json:"hospital_expire_flag"`
}

// AdmitDate is the admission timestamp truncated to its calendar date.
func (a Admission) AdmitDate() time.Time {
	return DateOf(a.AdmitTime)
}

// DischDate is the discharge timestamp truncated to its calendar date.
func (a Admission) DischDate() time.Time {
	return DateOf(a.DischTime)
}

// DayIndex returns the 1-based hospital day of ts: calendar days between the
// admission date and date(ts), plus one. Day 1 is the admission day.
func (a Admission) DayIndex(ts time.Time) int {
	return DaysBetween(a.AdmitDate(), DateOf(ts)) + 1
}

// HourIndex returns hospital hours of ts since admission, rounded to the
// nearest whole hour.
func (a Admission) HourIndex(ts time.Time) int {
	return int(ts.Sub(a.AdmitTime).Round(time.Hour) / time.Hour)
}

// DateOf truncates a timestamp to midnight UTC of its calendar date.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the count of calendar days from a to b (negative when
// b precedes a). Both arguments are expected to be date-truncated.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// Demographics carries the per-ICU-stay fields the selection criteria read.
type Demographics struct {
	SubjectID  int64   `db:"subject_id"`
	HadmID     int64   `db:"hadm_id"`
	ICUStayID  int64   `db:"icustay_id"`
	Age        float64 `db:"admission_age"`
	LOSHours   float64 `db:"los_hospital_hours"`
	ExpireFlag bool    `db:"hospital_expire_flag"`
}

// Diagnosis is one coded ICD-9 diagnosis row for an admission.
type Diagnosis struct {
	SubjectID int64  `db:"subject_id"`
	HadmID    int64  `db:"hadm_id"`
	ICD9Code  string `db:"icd9_code"`
}

// Ventilation is the total mechanical-ventilation duration for an admission.
type Ventilation struct {
	HadmID   int64   `db:"hadm_id"`
	VentDays float64 `db:"vent_days"`
}

// NormalizeECode right-pads short external-cause codes with zeros so that
// e.g. "E880" compares against the five-character trauma code set as "E8800".
func NormalizeECode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	for len(code) < 5 {
		code += "0"
	}
	return code
}

// IsTraumaECode reports whether an ICD-9 code is an external-cause code in
// the traumatic-injury set.
func IsTraumaECode(code string) bool {
	if !strings.HasPrefix(code, "E") {
		return false
	}
	_, ok := traumaECodes[NormalizeECode(code)]
	return ok
}
