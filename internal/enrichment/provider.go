package enrichment

import (
	"context"

	"lexitrain/internal/domain"
)

// Provider is the external word-detail source. A provider without a
// credential reports Configured() == false and is never queried.
type Provider interface {
	Configured() bool
	Lookup(ctx context.Context, surfaceForm string) (domain.Enrichment, error)
}
