package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"lexitrain/internal/domain"
)

func TestSessionRepo_InsertStudySession(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewSessionRepo(store)

	session := domain.DailyStudySession{
		Date:            time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
		DurationMinutes: 7,
		WordsStudied:    10,
		CorrectAnswers:  8,
		TotalQuestions:  10,
	}

	mock.ExpectExec("INSERT INTO study_sessions").
		WithArgs(session.Date, 7, 10, 8, 10).
		WillReturnResult(sqlmock.NewResult(3, 1))

	err := repo.InsertStudySession(context.Background(), &session)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), session.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_SessionsSince(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewSessionRepo(store)

	from := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "session_date", "duration_minutes", "words_studied", "correct_answers", "total_questions"}).
		AddRow(1, from.AddDate(0, 0, 1), 5, 10, 7, 10).
		AddRow(2, from.AddDate(0, 0, 3), 12, 20, 18, 20)

	mock.ExpectQuery("SELECT id, session_date, duration_minutes").
		WithArgs(from).
		WillReturnRows(rows)

	sessions, err := repo.SessionsSince(context.Background(), from)

	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, 18, sessions[1].CorrectAnswers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_SessionsSince_QueryError(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewSessionRepo(store)

	mock.ExpectQuery("SELECT id, session_date, duration_minutes").
		WillReturnError(fmt.Errorf("query error"))

	sessions, err := repo.SessionsSince(context.Background(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, sessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_StoreUnavailable(t *testing.T) {
	repo := NewSessionRepo(New())

	err := repo.InsertStudySession(context.Background(), &domain.DailyStudySession{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repo.SessionsSince(context.Background(), time.Now())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
