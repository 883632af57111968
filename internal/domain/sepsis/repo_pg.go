package sepsis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG creates the label store over the output schema that migrations
// manage.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const labelCols = `hadm_id, is_infection, is_sepsis, onset_datetime, onset_day,
	cx_index, abx_index, sofa_index_1, sofa_index_2`

// SaveRun writes the run header and its labels in one transaction, bulk
// loading the labels with COPY.
func (r *repoPG) SaveRun(ctx context.Context, run *Run, labels []Label) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save run: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO label_run (id, created_at, cohort_size, infections, sepsis_cases, excluded)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.CreatedAt, run.Cohort, run.Infections, run.SepsisCases, run.Excluded)
	if err != nil {
		return fmt.Errorf("insert label run: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"sepsis_label"},
		[]string{"run_id", "hadm_id", "is_infection", "is_sepsis", "onset_datetime", "onset_day",
			"cx_index", "abx_index", "sofa_index_1", "sofa_index_2"},
		pgx.CopyFromSlice(len(labels), func(i int) ([]any, error) {
			l := labels[i]
			return []any{run.ID, l.HadmID, l.IsInfection, l.IsSepsis, l.OnsetTime, l.OnsetDay,
				l.CultureIndex, l.AntibioticIndex, l.SOFAEarlierIndex, l.SOFALaterIndex}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy labels: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *repoPG) ListLabels(ctx context.Context, limit, offset int) ([]Label, int, error) {
	runID, err := r.latestRunID(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sepsis_label WHERE run_id = $1`, runID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count labels: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM sepsis_label
		WHERE run_id = $1
		ORDER BY hadm_id
		LIMIT $2 OFFSET $3`, labelCols)
	rows, err := r.pool.Query(ctx, query, runID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query labels: %w", err)
	}
	defer rows.Close()

	var out []Label
	for rows.Next() {
		l, err := scanLabel(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}

func (r *repoPG) GetLabel(ctx context.Context, hadmID int64) (*Label, error) {
	runID, err := r.latestRunID(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM sepsis_label
		WHERE run_id = $1 AND hadm_id = $2`, labelCols)
	l, err := scanLabel(r.pool.QueryRow(ctx, query, runID, hadmID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repoPG) LatestRun(ctx context.Context) (*Run, error) {
	var run Run
	err := r.pool.QueryRow(ctx, `
		SELECT id, created_at, cohort_size, infections, sepsis_cases, excluded
		FROM label_run
		ORDER BY created_at DESC, id DESC
		LIMIT 1`).Scan(&run.ID, &run.CreatedAt, &run.Cohort, &run.Infections, &run.SepsisCases, &run.Excluded)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRun
	}
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}
	return &run, nil
}

func (r *repoPG) latestRunID(ctx context.Context) (uuid.UUID, error) {
	run, err := r.LatestRun(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return run.ID, nil
}

func scanLabel(row pgx.Row) (Label, error) {
	var l Label
	err := row.Scan(&l.HadmID, &l.IsInfection, &l.IsSepsis, &l.OnsetTime, &l.OnsetDay,
		&l.CultureIndex, &l.AntibioticIndex, &l.SOFAEarlierIndex, &l.SOFALaterIndex)
	if err != nil {
		return Label{}, fmt.Errorf("scan label: %w", err)
	}
	return l, nil
}
