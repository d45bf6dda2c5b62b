package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the on-device store has not been opened yet.
	// Callers should defer and retry once initialization completes.
	ErrStoreUnavailable = errors.New("vocabulary store not initialized")

	// ErrEnrichmentUnavailable means the provider cannot be reached or is not
	// configured. It is never surfaced to the learner; callers degrade to
	// unenriched entries.
	ErrEnrichmentUnavailable = errors.New("enrichment provider unavailable")

	// ErrNoActiveSession is returned by session operations when no quiz is
	// in progress.
	ErrNoActiveSession = errors.New("no active quiz session")

	// ErrSessionFinished is returned when answering or advancing a session
	// that already reached a terminal state.
	ErrSessionFinished = errors.New("quiz session already finished")
)

// InsufficientCorpusError is the hard failure for a quiz-start request: the
// whole corpus, across every level, could not supply the requested number of
// distinct words.
type InsufficientCorpusError struct {
	Level     Level
	Requested int
	Available int
}

func (e *InsufficientCorpusError) Error() string {
	return fmt.Sprintf("corpus exhausted: level %s requested %d words, only %d available across all levels",
		e.Level, e.Requested, e.Available)
}
