package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lexitrain/internal/domain"
)

// Enricher fills missing word detail before questions are built. The
// coordinator in internal/enrichment is the production implementation.
type Enricher interface {
	Enrich(ctx context.Context, words []domain.WordEntry) []domain.WordEntry
}

// Engine is the surface the presentation layer talks to: it builds quizzes,
// drives the one active session, and exposes the review and stats reads.
// State transitions are not safe for concurrent use; the host is expected to
// serialize them, matching the single-learner, single-session model.
type Engine struct {
	selector  *Selector
	generator *Generator
	enricher  Enricher
	tracker   *Tracker
	logger    *zap.Logger

	active *session
}

// NewEngine creates the quiz engine facade.
func NewEngine(selector *Selector, generator *Generator, enricher Enricher, tracker *Tracker, logger *zap.Logger) *Engine {
	return &Engine{
		selector:  selector,
		generator: generator,
		enricher:  enricher,
		tracker:   tracker,
		logger:    logger,
	}
}

// StartQuiz assembles a quiz of exactly count questions at the given level
// and makes it the active session. A previously active session is cancelled;
// its recorded mastery updates stand.
func (e *Engine) StartQuiz(ctx context.Context, level domain.Level, count int) (*domain.QuizSession, error) {
	if count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", count)
	}
	if e.active != nil {
		e.active.cancel()
		e.active = nil
	}

	pool, err := e.selector.SelectPool(ctx, level, count)
	if err != nil {
		return nil, err
	}

	pool = e.enricher.Enrich(ctx, pool)

	questions := make([]domain.QuizQuestion, 0, count)
	for _, word := range pool {
		q := e.generator.Generate(word, pool)
		if q == nil {
			e.logger.Warn("word produced no question", zap.String("word", word.SurfaceForm))
			continue
		}
		questions = append(questions, *q)
	}
	if len(questions) < count {
		return nil, fmt.Errorf("could only build %d of %d questions", len(questions), count)
	}

	e.active = newSession(questions, time.Now())
	e.logger.Info("quiz started",
		zap.String("level", string(level)),
		zap.Int("questions", count),
	)
	return &e.active.quiz, nil
}

// Answer records the learner's choice for the current question and applies
// the mastery update. Re-answering a question after a retreat updates the
// in-memory log only; mastery is written once per question per session.
func (e *Engine) Answer(ctx context.Context, questionID int64, choice string) (bool, error) {
	if e.active == nil {
		return false, domain.ErrNoActiveSession
	}

	correct, firstWrite, err := e.active.answer(questionID, choice)
	if err != nil {
		return false, err
	}

	if firstWrite {
		if err := e.tracker.ApplyAnswerOutcome(ctx, questionID, correct); err != nil {
			return correct, fmt.Errorf("failed to record answer: %w", err)
		}
	}
	return correct, nil
}

// Advance moves the active session to the next question.
func (e *Engine) Advance() error {
	if e.active == nil {
		return domain.ErrNoActiveSession
	}
	return e.active.advance()
}

// Retreat moves the active session back one question.
func (e *Engine) Retreat() error {
	if e.active == nil {
		return domain.ErrNoActiveSession
	}
	return e.active.retreat()
}

// Finish closes the active session, writes one study log row, awards
// experience, and returns the summary. The session cannot be resumed after.
func (e *Engine) Finish(ctx context.Context) (domain.SessionSummary, error) {
	if e.active == nil {
		return domain.SessionSummary{}, domain.ErrNoActiveSession
	}

	correct, err := e.active.finish()
	if err != nil {
		return domain.SessionSummary{}, err
	}

	summary, err := e.tracker.FinishSession(ctx, e.active.quiz.StartedAt, correct, len(e.active.quiz.Questions))
	if err != nil {
		return domain.SessionSummary{}, err
	}

	e.active = nil
	return summary, nil
}

// Cancel discards the active session without a summary.
func (e *Engine) Cancel() {
	if e.active != nil {
		e.active.cancel()
		e.active = nil
	}
}

// ToggleBookmark flips a word's bookmark flag and returns the new state.
func (e *Engine) ToggleBookmark(ctx context.Context, wordID int64) (bool, error) {
	return e.tracker.ToggleBookmark(ctx, wordID)
}

// WeakWords returns the words most in need of review.
func (e *Engine) WeakWords(ctx context.Context) ([]domain.WordEntry, error) {
	return e.tracker.WeakWords(ctx)
}

// BookmarkedWords returns the learner's bookmarked words.
func (e *Engine) BookmarkedWords(ctx context.Context) ([]domain.WordEntry, error) {
	return e.tracker.BookmarkedWords(ctx)
}

// TodayStats aggregates today's study sessions.
func (e *Engine) TodayStats(ctx context.Context) (domain.StudyStats, error) {
	return e.tracker.TodayStats(ctx)
}

// WeeklyStats aggregates the last seven days of study sessions.
func (e *Engine) WeeklyStats(ctx context.Context) (domain.StudyStats, error) {
	return e.tracker.WeeklyStats(ctx)
}
