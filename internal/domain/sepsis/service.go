package sepsis

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sepsis/cohort/internal/domain/cohort"
	"github.com/sepsis/cohort/internal/domain/events"
)

// Engine runs the full labeling pipeline over a cohort: load events, build
// the per-admission tables, match infections, detect organ dysfunction, and
// resolve one label per admission. Admissions are processed independently on
// a bounded worker pool, so output is deterministic regardless of worker
// count.
type Engine struct {
	cultures    events.CultureRepository
	antibiotics events.AntibioticRepository
	scores      events.SOFARepository
	workers     int
	log         zerolog.Logger
}

// NewEngine wires the engine to its event sources. workers bounds the
// per-admission fan-out and must be at least one.
func NewEngine(cultures events.CultureRepository, antibiotics events.AntibioticRepository, scores events.SOFARepository, workers int, log zerolog.Logger) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		cultures:    cultures,
		antibiotics: antibiotics,
		scores:      scores,
		workers:     workers,
		log:         log,
	}
}

// LabelCohort labels every admission in the cohort. Admissions with broken
// source data are excluded and reported in the result; only repository
// failures abort the run. Labels come back sorted by hadm_id.
func (e *Engine) LabelCohort(ctx context.Context, admissions []cohort.Admission) (*Report, error) {
	var excluded []*DataIntegrityError
	valid := make([]cohort.Admission, 0, len(admissions))
	known := make(map[int64]struct{}, len(admissions))
	for _, adm := range admissions {
		if _, dup := known[adm.HadmID]; dup {
			continue
		}
		known[adm.HadmID] = struct{}{}
		if adm.AdmitTime.IsZero() {
			excluded = append(excluded, &DataIntegrityError{HadmID: adm.HadmID, Reason: "missing admission date"})
			continue
		}
		valid = append(valid, adm)
	}

	hadmIDs := make([]int64, len(valid))
	validSet := make(map[int64]struct{}, len(valid))
	for i, adm := range valid {
		hadmIDs[i] = adm.HadmID
		validSet[adm.HadmID] = struct{}{}
	}

	var (
		cultureRows []events.CultureRow
		orderRows   []events.AbxOrder
		scoreRows   []events.SOFARow
	)
	fetch, fctx := errgroup.WithContext(ctx)
	fetch.Go(func() (err error) {
		cultureRows, err = e.cultures.ListCultures(fctx, hadmIDs)
		return err
	})
	fetch.Go(func() (err error) {
		orderRows, err = e.antibiotics.ListOrders(fctx, hadmIDs)
		return err
	})
	fetch.Go(func() (err error) {
		scoreRows, err = e.scores.ListScores(fctx, hadmIDs)
		return err
	})
	if err := fetch.Wait(); err != nil {
		return nil, err
	}

	culturesByAdm := make(map[int64][]events.CultureRow)
	ordersByAdm := make(map[int64][]events.AbxOrder)
	scoresByAdm := make(map[int64][]events.SOFARow)
	unknown := make(map[int64]struct{})
	for _, r := range cultureRows {
		if _, ok := validSet[r.HadmID]; !ok {
			unknown[r.HadmID] = struct{}{}
			continue
		}
		culturesByAdm[r.HadmID] = append(culturesByAdm[r.HadmID], r)
	}
	for _, r := range orderRows {
		if _, ok := validSet[r.HadmID]; !ok {
			unknown[r.HadmID] = struct{}{}
			continue
		}
		ordersByAdm[r.HadmID] = append(ordersByAdm[r.HadmID], r)
	}
	for _, r := range scoreRows {
		if _, ok := validSet[r.HadmID]; !ok {
			unknown[r.HadmID] = struct{}{}
			continue
		}
		scoresByAdm[r.HadmID] = append(scoresByAdm[r.HadmID], r)
	}
	for hadmID := range unknown {
		excluded = append(excluded, &DataIntegrityError{HadmID: hadmID, Reason: "events reference an admission outside the cohort"})
	}

	labels := make([]Label, len(valid))
	work, wctx := errgroup.WithContext(ctx)
	work.SetLimit(e.workers)
	for i, adm := range valid {
		i, adm := i, adm
		work.Go(func() error {
			if err := wctx.Err(); err != nil {
				return err
			}
			labels[i] = e.labelAdmission(adm, culturesByAdm[adm.HadmID], ordersByAdm[adm.HadmID], scoresByAdm[adm.HadmID])
			return nil
		})
	}
	if err := work.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(labels, func(i, j int) bool { return labels[i].HadmID < labels[j].HadmID })
	sort.Slice(excluded, func(i, j int) bool { return excluded[i].HadmID < excluded[j].HadmID })

	report := &Report{Labels: labels, Excluded: excluded}
	e.log.Info().
		Int("cohort", len(labels)).
		Int("infections", report.Infections()).
		Int("sepsis_cases", report.SepsisCases()).
		Int("excluded", len(excluded)).
		Msg("cohort labeling complete")
	return report, nil
}

func (e *Engine) labelAdmission(adm cohort.Admission, cultureRows []events.CultureRow, orderRows []events.AbxOrder, scoreRows []events.SOFARow) Label {
	cultures := events.PrepareCultures(adm, cultureRows)
	antibiotics := events.ConsolidateAntibiotics(adm, events.QualifyOrders(orderRows))
	scores := events.PrepareScores(adm, scoreRows)

	infections := MatchInfections(cultures, antibiotics)
	candidates := make([]SepsisCandidate, 0, len(infections))
	for _, inf := range infections {
		candidates = append(candidates, SepsisCandidate{
			InfectionCandidate: inf,
			Verdict:            DetectDysfunction(inf.OnsetDay, scores),
		})
	}
	return Resolve(adm.HadmID, candidates, e.log)
}

// Service sits between the HTTP layer and label storage.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// SaveReport persists a labeling report as a new run.
func (s *Service) SaveReport(ctx context.Context, report *Report) (*Run, error) {
	run := &Run{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Cohort:      len(report.Labels),
		Infections:  report.Infections(),
		SepsisCases: report.SepsisCases(),
		Excluded:    len(report.Excluded),
	}
	if err := s.repo.SaveRun(ctx, run, report.Labels); err != nil {
		return nil, err
	}
	s.log.Info().Str("run_id", run.ID.String()).Int("labels", run.Cohort).Msg("label run saved")
	return run, nil
}

// ListLabels pages through the latest run's labels.
func (s *Service) ListLabels(ctx context.Context, limit, offset int) ([]Label, int, error) {
	return s.repo.ListLabels(ctx, limit, offset)
}

// GetLabel fetches one admission's label from the latest run.
func (s *Service) GetLabel(ctx context.Context, hadmID int64) (*Label, error) {
	return s.repo.GetLabel(ctx, hadmID)
}

// LatestRun returns the most recent run's headline counts.
func (s *Service) LatestRun(ctx context.Context) (*Run, error) {
	return s.repo.LatestRun(ctx)
}
