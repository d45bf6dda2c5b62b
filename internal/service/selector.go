package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"lexitrain/internal/domain"
	"lexitrain/internal/repository"
)

const (
	// overFetchFactor compensates for the narrowing effects of the shuffle
	// and the unique-by-surface-form filter below.
	overFetchFactor = 3
	overFetchCap    = 1000

	shuffleSections = 10
)

// Selector draws an unbiased random word pool from one CEFR level, expanding
// across adjacent levels when the primary level runs short.
type Selector struct {
	words  repository.WordRepository
	rng    *rand.Rand
	logger *zap.Logger
}

// NewSelector creates a word pool selector. The rand source is injected so
// tests can make selection deterministic.
func NewSelector(words repository.WordRepository, rng *rand.Rand, logger *zap.Logger) *Selector {
	return &Selector{words: words, rng: rng, logger: logger}
}

// SelectPool returns exactly targetSize entries, unique by surface form,
// drawn from the requested level first and its neighbors when short. It
// fails only when the whole corpus across every level cannot supply
// targetSize distinct words.
func (s *Selector) SelectPool(ctx context.Context, level domain.Level, targetSize int) ([]domain.WordEntry, error) {
	pool, err := s.fetchLevel(ctx, level, targetSize)
	if err != nil {
		return nil, err
	}

	if len(pool) < targetSize {
		pool = s.expandAcrossLevels(ctx, level, targetSize, pool)
	}

	if len(pool) < targetSize {
		return nil, &domain.InsufficientCorpusError{
			Level:     level,
			Requested: targetSize,
			Available: len(pool),
		}
	}

	return pool[:targetSize], nil
}

// fetchLevel performs one over-fetch + shuffle + truncate round for a level.
func (s *Selector) fetchLevel(ctx context.Context, level domain.Level, targetSize int) ([]domain.WordEntry, error) {
	limit := targetSize * overFetchFactor
	if limit > overFetchCap {
		limit = overFetchCap
	}

	candidates, err := s.words.WordsByLevel(ctx, level, limit)
	if err != nil {
		return nil, err
	}

	s.shuffle(candidates)

	if len(candidates) > targetSize {
		candidates = candidates[:targetSize]
	}
	return candidates, nil
}

// expandAcrossLevels pulls additional unique-by-surface-form candidates from
// neighboring levels in adjacency order until targetSize is reached or every
// level is exhausted. A failed fetch from one level counts as zero words
// from that level, never an abort.
func (s *Selector) expandAcrossLevels(ctx context.Context, level domain.Level, targetSize int, pool []domain.WordEntry) []domain.WordEntry {
	for _, next := range level.ExpansionOrder() {
		if len(pool) >= targetSize {
			break
		}

		extra, err := s.fetchLevel(ctx, next, targetSize-len(pool))
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return pool
			}
			s.logger.Warn("level expansion fetch failed",
				zap.String("level", string(next)),
				zap.Error(err),
			)
			continue
		}

		pool = lo.UniqBy(append(pool, extra...), func(w domain.WordEntry) string {
			return w.SurfaceForm
		})
	}
	return pool
}

// shuffle applies the three-stage shuffle. A single Fisher-Yates pass leaves
// a measurable first-letter bias when the store hands back short candidate
// sets in lexicographic order, so a sectioned pass and a final uniform-swap
// pass follow it.
func (s *Selector) shuffle(words []domain.WordEntry) {
	n := len(words)
	if n < 2 {
		return
	}

	// Stage 1: Fisher-Yates over the whole slice.
	s.rng.Shuffle(n, func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	// Stage 2: partition into equal sections and shuffle each independently.
	sections := shuffleSections
	if sections > n {
		sections = n
	}
	size := n / sections
	for sec := 0; sec < sections; sec++ {
		start := sec * size
		end := start + size
		if sec == sections-1 {
			end = n
		}
		part := words[start:end]
		s.rng.Shuffle(len(part), func(i, j int) {
			part[i], part[j] = part[j], part[i]
		})
	}

	// Stage 3: swap every position with a uniformly random one.
	for i := 0; i < n; i++ {
		j := s.rng.Intn(n)
		words[i], words[j] = words[j], words[i]
	}
}
