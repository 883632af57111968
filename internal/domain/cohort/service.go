package cohort

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Selection criteria for the critically ill trauma population.
const (
	MinAge      = 18.0
	MaxAge      = 89.0
	MinLOSHours = 48.0
)

// Criteria parameterizes cohort selection. VentDays is the minimum count of
// mechanical-ventilation days; Stern et al. use 3. Zero disables the filter.
type Criteria struct {
	VentDays int
}

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// SelectCohort applies the trauma population criteria and returns the
// admissions of the resulting cohort, sorted by hadm_id:
//
//  1. at least one traumatic-injury E-code diagnosis
//  2. age between 18 and 89 at admission
//  3. hospital stay of at least 48 hours
//  4. at least Criteria.VentDays ventilation days (when enabled)
func (s *Service) SelectCohort(ctx context.Context, crit Criteria) ([]Admission, error) {
	demog, err := s.repo.ListDemographics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list demographics: %w", err)
	}

	diagnoses, err := s.repo.ListECodeDiagnoses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diagnoses: %w", err)
	}
	trauma := make(map[int64]bool)
	for _, d := range diagnoses {
		if IsTraumaECode(d.ICD9Code) {
			trauma[d.HadmID] = true
		}
	}

	var ventByHadm map[int64]float64
	if crit.VentDays > 0 {
		vents, err := s.repo.ListVentilation(ctx)
		if err != nil {
			return nil, fmt.Errorf("list ventilation: %w", err)
		}
		ventByHadm = make(map[int64]float64, len(vents))
		for _, v := range vents {
			ventByHadm[v.HadmID] += v.VentDays
		}
	}

	selected := make(map[int64]bool)
	for _, d := range demog {
		if !trauma[d.HadmID] {
			continue
		}
		if d.Age < MinAge || d.Age > MaxAge {
			continue
		}
		if d.LOSHours < MinLOSHours {
			continue
		}
		if crit.VentDays > 0 && ventByHadm[d.HadmID] < float64(crit.VentDays) {
			continue
		}
		selected[d.HadmID] = true
	}

	ids := make([]int64, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	admissions, err := s.repo.ListAdmissions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	sort.Slice(admissions, func(i, j int) bool { return admissions[i].HadmID < admissions[j].HadmID })

	s.log.Info().
		Int("trauma_admissions", len(trauma)).
		Int("selected", len(admissions)).
		Int("vent_days_threshold", crit.VentDays).
		Msg("trauma cohort selected")

	return admissions, nil
}
