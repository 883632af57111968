package events

import "context"

// CultureRepository loads raw blood culture rows for a set of admissions,
// ordered by hadm_id then chart time.
type CultureRepository interface {
	ListCultures(ctx context.Context, hadmIDs []int64) ([]CultureRow, error)
}

// AntibioticRepository loads raw antibiotic prescription rows for a set of
// admissions, ordered by hadm_id then start date.
type AntibioticRepository interface {
	ListOrders(ctx context.Context, hadmIDs []int64) ([]AbxOrder, error)
}

// SOFARepository loads hourly modified SOFA scores for a set of admissions,
// ordered by hadm_id then start time.
type SOFARepository interface {
	ListScores(ctx context.Context, hadmIDs []int64) ([]SOFARow, error)
}
