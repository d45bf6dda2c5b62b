package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"lexitrain/internal/domain"
	"lexitrain/internal/repository"
)

// FakeStore is an in-memory implementation of every repository interface,
// used by end-to-end tests. Reads return words sorted lexicographically by
// surface form, mimicking the default return order of the real store that
// the three-stage shuffle exists to defeat.
type FakeStore struct {
	mu       sync.Mutex
	words    map[int64]domain.WordEntry
	progress map[int64]domain.ProgressRecord
	sessions []domain.DailyStudySession
	profile  domain.UserProfile
	nextID   int64
}

// NewFakeStore creates an empty in-memory store.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		words:    make(map[int64]domain.WordEntry),
		progress: make(map[int64]domain.ProgressRecord),
		profile:  domain.UserProfile{CurrentLevel: domain.LevelA1, TargetLevel: domain.LevelB2},
	}
}

// AddWord inserts a word directly, assigning an ID.
func (f *FakeStore) AddWord(word domain.WordEntry) domain.WordEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	word.ID = f.nextID
	f.words[word.ID] = word
	return word
}

// StudySessions returns a copy of the inserted study log.
func (f *FakeStore) StudySessions() []domain.DailyStudySession {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.DailyStudySession, len(f.sessions))
	copy(out, f.sessions)
	return out
}

func (f *FakeStore) WordsByLevel(_ context.Context, level domain.Level, limit int) ([]domain.WordEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.WordEntry
	for _, w := range f.words {
		if w.Level == level {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SurfaceForm < out[j].SurfaceForm })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeStore) WordByID(_ context.Context, id int64) (*domain.WordEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.words[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (f *FakeStore) WordBySurfaceForm(_ context.Context, surfaceForm string) (*domain.WordEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.words {
		if w.SurfaceForm == surfaceForm {
			return &w, nil
		}
	}
	return nil, nil
}

func (f *FakeStore) CreateWord(_ context.Context, word *domain.WordEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	word.ID = f.nextID
	f.words[word.ID] = *word
	return nil
}

func (f *FakeStore) UpsertEnrichment(_ context.Context, wordID int64, enrichment domain.Enrichment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.words[wordID]; ok {
		f.words[wordID] = enrichment.Apply(w)
	}
	return nil
}

func (f *FakeStore) Progress(_ context.Context, wordID int64) (*domain.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.progress[wordID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *FakeStore) ApplyAnswerOutcome(_ context.Context, wordID int64, correct bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.progress[wordID]
	p.WordID = wordID
	p.Attempts++
	if correct {
		p.CorrectAttempts++
	}
	p.MasteryLevel = domain.ComputeMastery(p.Attempts, p.CorrectAttempts)
	p.LastAttemptAt = time.Now()
	f.progress[wordID] = p
	return nil
}

func (f *FakeStore) ToggleBookmark(_ context.Context, wordID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.progress[wordID]
	p.WordID = wordID
	p.IsBookmarked = !p.IsBookmarked
	f.progress[wordID] = p
	return p.IsBookmarked, nil
}

func (f *FakeStore) WeakWords(_ context.Context) ([]domain.WordEntry, error) {
	return f.filterByProgress(func(p domain.ProgressRecord) bool { return p.IsWeak() })
}

func (f *FakeStore) BookmarkedWords(_ context.Context) ([]domain.WordEntry, error) {
	return f.filterByProgress(func(p domain.ProgressRecord) bool { return p.IsBookmarked })
}

func (f *FakeStore) filterByProgress(keep func(domain.ProgressRecord) bool) ([]domain.WordEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.ProgressRecord
	for _, p := range f.progress {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].MasteryLevel < matched[j].MasteryLevel })
	if len(matched) > repository.ReviewListLimit {
		matched = matched[:repository.ReviewListLimit]
	}

	out := make([]domain.WordEntry, 0, len(matched))
	for _, p := range matched {
		if w, ok := f.words[p.WordID]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *FakeStore) ClearProgress(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = make(map[int64]domain.ProgressRecord)
	return nil
}

func (f *FakeStore) InsertStudySession(_ context.Context, session *domain.DailyStudySession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session.ID = int64(len(f.sessions) + 1)
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *FakeStore) SessionsSince(_ context.Context, from time.Time) ([]domain.DailyStudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.DailyStudySession
	for _, s := range f.sessions {
		if !s.Date.Before(from) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeStore) Profile(_ context.Context) (*domain.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.profile
	return &p, nil
}

func (f *FakeStore) SetLevels(_ context.Context, current, target domain.Level) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.CurrentLevel = current
	f.profile.TargetLevel = target
	return nil
}

func (f *FakeStore) AddExperience(_ context.Context, xp int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.ExperiencePoints += xp
	return f.profile.ExperiencePoints, nil
}
