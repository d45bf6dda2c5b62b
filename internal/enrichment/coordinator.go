package enrichment

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"lexitrain/internal/domain"
	"lexitrain/internal/repository"
)

const (
	// DefaultBatchSize bounds concurrent lookups per batch so the provider's
	// rate limit is respected.
	DefaultBatchSize = 6

	// DefaultRatePerSec is the sustained lookup rate across batches.
	DefaultRatePerSec = 4
)

// Coordinator fills missing word detail through the provider, batched and
// rate limited. All failures degrade to unenriched entries; the learner
// never sees an enrichment error.
type Coordinator struct {
	provider  Provider
	words     repository.WordRepository
	limiter   *rate.Limiter
	batchSize int
	logger    *zap.Logger
}

// NewCoordinator creates an enrichment coordinator. batchSize and ratePerSec
// fall back to defaults when non-positive.
func NewCoordinator(provider Provider, words repository.WordRepository, batchSize int, ratePerSec float64, logger *zap.Logger) *Coordinator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if ratePerSec <= 0 {
		ratePerSec = DefaultRatePerSec
	}
	return &Coordinator{
		provider:  provider,
		words:     words,
		limiter:   rate.NewLimiter(rate.Limit(ratePerSec), batchSize),
		batchSize: batchSize,
		logger:    logger,
	}
}

// Enrich returns the given words with any previously-empty detail fields
// filled where the provider had data. Words that already carry a definition
// are never re-queried. Successful lookups are persisted, so the provider
// cost is one-time per word. The result is always the full input set, even
// when the provider is unreachable.
func (c *Coordinator) Enrich(ctx context.Context, words []domain.WordEntry) []domain.WordEntry {
	out := make([]domain.WordEntry, len(words))
	copy(out, words)

	if !c.provider.Configured() {
		return out
	}

	var pending []int
	for i, w := range out {
		if !w.HasDefinition() {
			pending = append(pending, i)
		}
	}

	for start := 0; start < len(pending); start += c.batchSize {
		end := start + c.batchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		if err := c.limiter.WaitN(ctx, len(batch)); err != nil {
			// Context cancelled mid-generation; hand back what we have.
			return out
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, idx := range batch {
			idx := idx
			g.Go(func() error {
				c.enrichOne(gctx, &out[idx])
				return nil
			})
		}
		// Goroutines never return errors; Wait only synchronizes the batch.
		_ = g.Wait()

		if ctx.Err() != nil {
			return out
		}
	}

	return out
}

// enrichOne looks up and persists detail for a single word. Failure leaves
// the entry untouched.
func (c *Coordinator) enrichOne(ctx context.Context, word *domain.WordEntry) {
	result, err := c.provider.Lookup(ctx, word.SurfaceForm)
	if err != nil {
		c.logger.Debug("word lookup failed",
			zap.String("word", word.SurfaceForm),
			zap.Error(err),
		)
		return
	}
	if result.IsEmpty() {
		return
	}

	if err := c.words.UpsertEnrichment(ctx, word.ID, result); err != nil {
		c.logger.Warn("failed to persist enrichment",
			zap.String("word", word.SurfaceForm),
			zap.Error(err),
		)
		// Still usable for this quiz even if the write failed.
	}

	*word = result.Apply(*word)
}
