package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// bloodCultureItemID is the spec_itemid of blood cultures in
// microbiologyevents.
const bloodCultureItemID = 70012

// antibioticNames matches prescription drug names against the antibiotic
// families considered for infection treatment. Qualification by route and
// prophylaxis exclusion happens later in QualifyOrders.
var antibioticNames = []string{
	"amikacin", "ampicillin", "azithromycin", "aztreonam", "cefazolin",
	"cefepime", "ceftazidime", "ceftriaxone", "cefuroxime", "ciprofloxacin",
	"clindamycin", "daptomycin", "doxycycline", "erythromycin", "gentamicin",
	"levofloxacin", "linezolid", "meropenem", "metronidazole", "nafcillin",
	"oxacillin", "penicillin", "piperacillin", "rifampin",
	"sulfameth", "tobramycin", "vancomycin",
}

type repoPG struct {
	pool   *pgxpool.Pool
	schema string
}

// NewRepoPG creates the event repositories over a MIMIC-III style clinical
// schema. The returned value implements CultureRepository,
// AntibioticRepository and SOFARepository.
func NewRepoPG(pool *pgxpool.Pool, schema string) *repoPG {
	return &repoPG{pool: pool, schema: schema}
}

func (r *repoPG) ListCultures(ctx context.Context, hadmIDs []int64) ([]CultureRow, error) {
	// charttime is sparse for cultures; chartdate stands in when missing.
	query := fmt.Sprintf(`
		SELECT hadm_id, COALESCE(charttime, chartdate) AS charttime
		FROM %s.microbiologyevents
		WHERE spec_itemid = $1
		  AND hadm_id = ANY($2)
		  AND COALESCE(charttime, chartdate) IS NOT NULL
		ORDER BY hadm_id, charttime`, r.schema)

	rows, err := r.pool.Query(ctx, query, bloodCultureItemID, hadmIDs)
	if err != nil {
		return nil, fmt.Errorf("query blood cultures: %w", err)
	}
	defer rows.Close()

	var out []CultureRow
	for rows.Next() {
		var c CultureRow
		if err := rows.Scan(&c.HadmID, &c.ChartTime); err != nil {
			return nil, fmt.Errorf("scan blood culture: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repoPG) ListOrders(ctx context.Context, hadmIDs []int64) ([]AbxOrder, error) {
	query := fmt.Sprintf(`
		SELECT hadm_id, drug, COALESCE(drug_name_generic, '') AS drug_name_generic,
		       COALESCE(route, '') AS route, startdate, enddate
		FROM %s.prescriptions
		WHERE hadm_id = ANY($1)
		  AND startdate IS NOT NULL
		  AND enddate IS NOT NULL
		  AND lower(drug) ~ $2
		ORDER BY hadm_id, startdate, enddate`, r.schema)

	rows, err := r.pool.Query(ctx, query, hadmIDs, strings.Join(antibioticNames, "|"))
	if err != nil {
		return nil, fmt.Errorf("query antibiotic orders: %w", err)
	}
	defer rows.Close()

	var out []AbxOrder
	for rows.Next() {
		var o AbxOrder
		if err := rows.Scan(&o.HadmID, &o.Drug, &o.GenericName, &o.Route, &o.StartDate, &o.EndDate); err != nil {
			return nil, fmt.Errorf("scan antibiotic order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repoPG) ListScores(ctx context.Context, hadmIDs []int64) ([]SOFARow, error) {
	// sofa is the derived hourly table with GCS and urine output already
	// excluded from sofa_24hours.
	query := fmt.Sprintf(`
		SELECT i.hadm_id, s.starttime, s.sofa_24hours
		FROM %[1]s.sofa s
		JOIN %[1]s.icustays i ON i.icustay_id = s.icustay_id
		WHERE i.hadm_id = ANY($1)
		ORDER BY i.hadm_id, s.starttime`, r.schema)

	rows, err := r.pool.Query(ctx, query, hadmIDs)
	if err != nil {
		return nil, fmt.Errorf("query sofa scores: %w", err)
	}
	defer rows.Close()

	var out []SOFARow
	for rows.Next() {
		var s SOFARow
		if err := rows.Scan(&s.HadmID, &s.StartTime, &s.Score); err != nil {
			return nil, fmt.Errorf("scan sofa score: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
