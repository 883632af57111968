package sepsis

import (
	"context"
	"errors"
)

// ErrNoRun is returned when no labeling run has been persisted yet.
var ErrNoRun = errors.New("no label run recorded")

// ErrNotFound is returned when the latest run holds no label for the
// requested admission.
var ErrNotFound = errors.New("label not found")

// Repository stores labeling runs and serves the latest one to the API.
type Repository interface {
	SaveRun(ctx context.Context, run *Run, labels []Label) error
	ListLabels(ctx context.Context, limit, offset int) ([]Label, int, error)
	GetLabel(ctx context.Context, hadmID int64) (*Label, error)
	LatestRun(ctx context.Context) (*Run, error)
}
