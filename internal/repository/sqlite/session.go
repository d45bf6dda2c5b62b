package sqlite

import (
	"context"
	"fmt"
	"time"

	"lexitrain/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	store *Store
}

// NewSessionRepo creates a new study session repository
func NewSessionRepo(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// InsertStudySession appends one study log row and sets its generated ID.
// Rows are never updated afterwards.
func (r *SessionRepo) InsertStudySession(ctx context.Context, session *domain.DailyStudySession) error {
	if !r.store.Ready() {
		return domain.ErrStoreUnavailable
	}

	query := `
		INSERT INTO study_sessions (session_date, duration_minutes, words_studied, correct_answers, total_questions)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.store.db.ExecContext(ctx, query,
		session.Date,
		session.DurationMinutes,
		session.WordsStudied,
		session.CorrectAnswers,
		session.TotalQuestions,
	)
	if err != nil {
		return fmt.Errorf("failed to insert study session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	session.ID = id
	return nil
}

// SessionsSince returns study log rows on or after the given time, oldest
// first.
func (r *SessionRepo) SessionsSince(ctx context.Context, from time.Time) ([]domain.DailyStudySession, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}

	query := `
		SELECT id, session_date, duration_minutes, words_studied, correct_answers, total_questions
		FROM study_sessions
		WHERE session_date >= ?
		ORDER BY session_date ASC
	`

	rows, err := r.store.db.QueryContext(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get study sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.DailyStudySession
	for rows.Next() {
		var s domain.DailyStudySession
		if err := rows.Scan(&s.ID, &s.Date, &s.DurationMinutes, &s.WordsStudied, &s.CorrectAnswers, &s.TotalQuestions); err != nil {
			return nil, fmt.Errorf("failed to scan study session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
