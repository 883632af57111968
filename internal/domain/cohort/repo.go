package cohort

import "context"

// Repository loads the raw rows the cohort selection criteria operate on.
// Implementations read the MIMIC-style clinical schema; selection itself is
// pure and lives in the Service.
type Repository interface {
	ListDemographics(ctx context.Context) ([]Demographics, error)
	ListECodeDiagnoses(ctx context.Context) ([]Diagnosis, error)
	ListVentilation(ctx context.Context) ([]Ventilation, error)
	ListAdmissions(ctx context.Context, hadmIDs []int64) ([]Admission, error)
}
