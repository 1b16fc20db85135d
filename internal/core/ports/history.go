package ports

import (
	"context"

	"github.com/cadenza-labs/cadenza/internal/core/domain"
)

// RunRepository records completed generation runs for later inspection.
// Recording is best-effort: the pipeline logs and continues when Save fails.
type RunRepository interface {
	Save(ctx context.Context, run domain.RunRecord) error
	Recent(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
