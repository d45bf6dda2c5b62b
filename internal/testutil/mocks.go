package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lexitrain/internal/domain"
)

// MockWordRepository is a mock for repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) WordsByLevel(ctx context.Context, level domain.Level, limit int) ([]domain.WordEntry, error) {
	args := m.Called(ctx, level, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockWordRepository) WordByID(ctx context.Context, id int64) (*domain.WordEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordEntry), args.Error(1)
}

func (m *MockWordRepository) WordBySurfaceForm(ctx context.Context, surfaceForm string) (*domain.WordEntry, error) {
	args := m.Called(ctx, surfaceForm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordEntry), args.Error(1)
}

func (m *MockWordRepository) CreateWord(ctx context.Context, word *domain.WordEntry) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) UpsertEnrichment(ctx context.Context, wordID int64, enrichment domain.Enrichment) error {
	args := m.Called(ctx, wordID, enrichment)
	return args.Error(0)
}

// MockProgressRepository is a mock for repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Progress(ctx context.Context, wordID int64) (*domain.ProgressRecord, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) ApplyAnswerOutcome(ctx context.Context, wordID int64, correct bool) error {
	args := m.Called(ctx, wordID, correct)
	return args.Error(0)
}

func (m *MockProgressRepository) ToggleBookmark(ctx context.Context, wordID int64) (bool, error) {
	args := m.Called(ctx, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressRepository) WeakWords(ctx context.Context) ([]domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockProgressRepository) BookmarkedWords(ctx context.Context) ([]domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockProgressRepository) ClearProgress(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) InsertStudySession(ctx context.Context, session *domain.DailyStudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) SessionsSince(ctx context.Context, from time.Time) ([]domain.DailyStudySession, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyStudySession), args.Error(1)
}

// MockProfileRepository is a mock for repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Profile(ctx context.Context) (*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) SetLevels(ctx context.Context, current, target domain.Level) error {
	args := m.Called(ctx, current, target)
	return args.Error(0)
}

func (m *MockProfileRepository) AddExperience(ctx context.Context, xp int) (int, error) {
	args := m.Called(ctx, xp)
	return args.Int(0), args.Error(1)
}

// MockProvider is a mock for enrichment.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProvider) Lookup(ctx context.Context, surfaceForm string) (domain.Enrichment, error) {
	args := m.Called(ctx, surfaceForm)
	return args.Get(0).(domain.Enrichment), args.Error(1)
}
