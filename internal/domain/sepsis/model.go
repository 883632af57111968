package sepsis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InfectionCandidate is one blood culture that met the suspected infection
// criterion: a qualifying antibiotic course started within two days of the
// culture. CultureIndex and AntibioticIndex point back into the admission's
// ordered event tables; the culture timestamp is the candidate onset.
type InfectionCandidate struct {
	HadmID          int64     `json:"hadm_id"`
	CultureIndex    int       `json:"cx_index"`
	AntibioticIndex int       `json:"abx_index"`
	OnsetTime       time.Time `json:"onset_datetime"`
	OnsetDay        int       `json:"onset_day"`
}

// DysfunctionVerdict reports whether the modified SOFA score rose by more
// than one point inside the seven-day window around a candidate day. The
// back-references are indices into the admission's score table, set only on
// a positive verdict.
type DysfunctionVerdict struct {
	Dysfunction  bool `json:"is_dysfunction"`
	EarlierIndex *int `json:"sofa_index_1,omitempty"`
	LaterIndex   *int `json:"sofa_index_2,omitempty"`
}

// SepsisCandidate pairs an infection candidate with its organ dysfunction
// verdict.
type SepsisCandidate struct {
	InfectionCandidate
	Verdict DysfunctionVerdict `json:"verdict"`
}

// IsSepsis reports whether this candidate satisfies both sepsis criteria.
func (c SepsisCandidate) IsSepsis() bool {
	return c.Verdict.Dysfunction
}

// Label is the per-admission result row. Onset fields and back-references
// are nil unless the admission is sepsis positive.
type Label struct {
	HadmID           int64      `json:"hadm_id" db:"hadm_id"`
	IsInfection      bool       `json:"is_infection" db:"is_infection"`
	IsSepsis         bool       `json:"is_sepsis" db:"is_sepsis"`
	OnsetTime        *time.Time `json:"onset_datetime,omitempty" db:"onset_datetime"`
	OnsetDay         *int       `json:"onset_day,omitempty" db:"onset_day"`
	CultureIndex     *int       `json:"cx_index,omitempty" db:"cx_index"`
	AntibioticIndex  *int       `json:"abx_index,omitempty" db:"abx_index"`
	SOFAEarlierIndex *int       `json:"sofa_index_1,omitempty" db:"sofa_index_1"`
	SOFALaterIndex   *int       `json:"sofa_index_2,omitempty" db:"sofa_index_2"`
}

// Run records one labeling execution and its headline counts.
type Run struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Cohort      int       `json:"cohort_size" db:"cohort_size"`
	Infections  int       `json:"infections" db:"infections"`
	SepsisCases int       `json:"sepsis_cases" db:"sepsis_cases"`
	Excluded    int       `json:"excluded" db:"excluded"`
}

// DataIntegrityError marks an admission whose source rows are inconsistent.
// The admission is excluded from labeling; the rest of the cohort is
// unaffected.
type DataIntegrityError struct {
	HadmID int64
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("admission %d: %s", e.HadmID, e.Reason)
}

// Report is the outcome of labeling a cohort: one label per surviving
// admission, ordered by hadm_id, plus the admissions excluded for integrity
// failures.
type Report struct {
	Labels   []Label               `json:"labels"`
	Excluded []*DataIntegrityError `json:"excluded,omitempty"`
}

// Infections counts labels with the infection flag set.
func (r *Report) Infections() int {
	n := 0
	for _, l := range r.Labels {
		if l.IsInfection {
			n++
		}
	}
	return n
}

// SepsisCases counts labels with the sepsis flag set.
func (r *Report) SepsisCases() int {
	n := 0
	for _, l := range r.Labels {
		if l.IsSepsis {
			n++
		}
	}
	return n
}
