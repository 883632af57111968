package cohort

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool   *pgxpool.Pool
	schema string
}

// NewRepoPG creates a cohort repository over a MIMIC-III style clinical
// schema. The schema name comes from configuration (DATA_SCHEMA).
func NewRepoPG(pool *pgxpool.Pool, schema string) Repository {
	return &repoPG{pool: pool, schema: schema}
}

func (r *repoPG) ListDemographics(ctx context.Context) ([]Demographics, error) {
	// Age and length of stay are derived here so that selection stays pure.
	query := fmt.Sprintf(`
		SELECT p.subject_id, a.hadm_id, i.icustay_id,
		       EXTRACT(EPOCH FROM (a.admittime - p.dob)) / 31557600.0 AS admission_age,
		       EXTRACT(EPOCH FROM (a.dischtime - a.admittime)) / 3600.0 AS los_hospital_hours,
		       a.hospital_expire_flag = 1 AS hospital_expire_flag
		FROM %[1]s.admissions a
		JOIN %[1]s.patients p ON p.subject_id = a.subject_id
		JOIN %[1]s.icustays i ON i.hadm_id = a.hadm_id
		ORDER BY a.hadm_id, i.icustay_id`, r.schema)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query demographics: %w", err)
	}
	defer rows.Close()

	var out []Demographics
	for rows.Next() {
		var d Demographics
		if err := rows.Scan(&d.SubjectID, &d.HadmID, &d.ICUStayID, &d.Age, &d.LOSHours, &d.ExpireFlag); err != nil {
			return nil, fmt.Errorf("scan demographics: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repoPG) ListECodeDiagnoses(ctx context.Context) ([]Diagnosis, error) {
	query := fmt.Sprintf(`
		SELECT subject_id, hadm_id, icd9_code
		FROM %s.diagnoses_icd
		WHERE icd9_code LIKE 'E%%'
		ORDER BY hadm_id, seq_num`, r.schema)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query e-code diagnoses: %w", err)
	}
	defer rows.Close()

	var out []Diagnosis
	for rows.Next() {
		var d Diagnosis
		if err := rows.Scan(&d.SubjectID, &d.HadmID, &d.ICD9Code); err != nil {
			return nil, fmt.Errorf("scan diagnosis: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repoPG) ListVentilation(ctx context.Context) ([]Ventilation, error) {
	query := fmt.Sprintf(`
		SELECT i.hadm_id,
		       SUM(EXTRACT(EPOCH FROM (v.endtime - v.starttime))) / 86400.0 AS vent_days
		FROM %[1]s.ventdurations v
		JOIN %[1]s.icustays i ON i.icustay_id = v.icustay_id
		GROUP BY i.hadm_id`, r.schema)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ventilation durations: %w", err)
	}
	defer rows.Close()

	var out []Ventilation
	for rows.Next() {
		var v Ventilation
		if err := rows.Scan(&v.HadmID, &v.VentDays); err != nil {
			return nil, fmt.Errorf("scan ventilation: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *repoPG) ListAdmissions(ctx context.Context, hadmIDs []int64) ([]Admission, error) {
	query := fmt.Sprintf(`
		SELECT hadm_id, subject_id, admittime, dischtime, hospital_expire_flag = 1
		FROM %s.admissions
		WHERE hadm_id = ANY($1)
		ORDER BY hadm_id`, r.schema)

	rows, err := r.pool.Query(ctx, query, hadmIDs)
	if err != nil {
		return nil, fmt.Errorf("query admissions: %w", err)
	}
	defer rows.Close()

	var out []Admission
	for rows.Next() {
		var a Admission
		if err := rows.Scan(&a.HadmID, &a.SubjectID, &a.AdmitTime, &a.DischTime, &a.ExpireFlag); err != nil {
			return nil, fmt.Errorf("scan admission: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
