package domain

import (
	"math"
	"time"
)

const (
	// WeakMasteryThreshold is the canonical mastery score below which a word
	// counts as weak. The minimum attempt count keeps single-miss words from
	// flooding the weak list.
	WeakMasteryThreshold = 60
	WeakMinAttempts      = 3
)

// ProgressRecord is the per-word mutable mastery state. It is created lazily
// on first answer or first bookmark toggle and only ever written through the
// progress tracker.
type ProgressRecord struct {
	WordID          int64
	Attempts        int
	CorrectAttempts int
	MasteryLevel    int
	IsBookmarked    bool
	LastAttemptAt   time.Time
}

// ComputeMastery derives the 0-100 mastery score from attempt counts.
// Zero attempts means zero mastery.
func ComputeMastery(attempts, correct int) int {
	if attempts <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(attempts) * 100))
}

// IsWeak reports whether the word needs targeted review: mastery below the
// threshold with enough attempts to be statistically meaningful.
func (p ProgressRecord) IsWeak() bool {
	return p.MasteryLevel < WeakMasteryThreshold && p.Attempts >= WeakMinAttempts
}
