package sqlite

import (
	"context"
	"fmt"

	"lexitrain/internal/domain"
)

// ProfileRepo implements repository.ProfileRepository over the single-row
// user_profile table.
type ProfileRepo struct {
	store *Store
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(store *Store) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// Profile returns the learner profile.
func (r *ProfileRepo) Profile(ctx context.Context) (*domain.UserProfile, error) {
	if !r.store.Ready() {
		return nil, domain.ErrStoreUnavailable
	}

	var row struct {
		CurrentLevel     string `db:"current_level"`
		TargetLevel      string `db:"target_level"`
		ExperiencePoints int    `db:"experience_points"`
	}

	query := "SELECT current_level, target_level, experience_points FROM user_profile WHERE id = 1"
	if err := r.store.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &domain.UserProfile{
		CurrentLevel:     domain.Level(row.CurrentLevel),
		TargetLevel:      domain.Level(row.TargetLevel),
		ExperiencePoints: row.ExperiencePoints,
	}, nil
}

// SetLevels updates the learner's current and target CEFR levels.
func (r *ProfileRepo) SetLevels(ctx context.Context, current, target domain.Level) error {
	if !r.store.Ready() {
		return domain.ErrStoreUnavailable
	}

	query := "UPDATE user_profile SET current_level = ?, target_level = ? WHERE id = 1"
	if _, err := r.store.db.ExecContext(ctx, query, string(current), string(target)); err != nil {
		return fmt.Errorf("failed to set levels: %w", err)
	}
	return nil
}

// AddExperience adds xp to the running total and returns the new total.
func (r *ProfileRepo) AddExperience(ctx context.Context, xp int) (int, error) {
	if !r.store.Ready() {
		return 0, domain.ErrStoreUnavailable
	}

	query := "UPDATE user_profile SET experience_points = experience_points + ? WHERE id = 1"
	if _, err := r.store.db.ExecContext(ctx, query, xp); err != nil {
		return 0, fmt.Errorf("failed to add experience: %w", err)
	}

	var total int
	if err := r.store.db.GetContext(ctx, &total,
		"SELECT experience_points FROM user_profile WHERE id = 1"); err != nil {
		return 0, fmt.Errorf("failed to read experience: %w", err)
	}
	return total, nil
}
