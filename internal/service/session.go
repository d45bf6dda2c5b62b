package service

import (
	"fmt"
	"time"

	"lexitrain/internal/domain"
)

type sessionState int

const (
	sessionActive sessionState = iota
	sessionFinished
	sessionCancelled
)

// session enforces the quiz state machine rules over the ephemeral
// QuizSession aggregate. Durable writes happen in the engine; the session
// only tracks position, the answer log, and which questions already produced
// a mastery write this session.
type session struct {
	quiz           domain.QuizSession
	state          sessionState
	masteryWritten map[int]bool
}

func newSession(questions []domain.QuizQuestion, startedAt time.Time) *session {
	return &session{
		quiz: domain.QuizSession{
			Questions: questions,
			Answered:  make(map[int]bool),
			StartedAt: startedAt,
		},
		masteryWritten: make(map[int]bool),
	}
}

func (s *session) current() *domain.QuizQuestion {
	return &s.quiz.Questions[s.quiz.Index]
}

// answer records correctness for the current question. It does not advance
// the index. firstWrite reports whether this answer event should produce a
// durable mastery update: retreating and re-answering never writes twice.
func (s *session) answer(questionID int64, choice string) (correct, firstWrite bool, err error) {
	if s.state != sessionActive {
		return false, false, domain.ErrSessionFinished
	}

	q := s.current()
	if q.SourceWord.ID != questionID {
		return false, false, fmt.Errorf("question %d is not the current question", questionID)
	}

	correct = q.IsCorrect(choice)
	s.quiz.Answered[s.quiz.Index] = correct

	firstWrite = !s.masteryWritten[s.quiz.Index]
	s.masteryWritten[s.quiz.Index] = true
	return correct, firstWrite, nil
}

// advance moves to the next question, only when the current one has been
// answered and this is not the last question.
func (s *session) advance() error {
	if s.state != sessionActive {
		return domain.ErrSessionFinished
	}
	if _, answered := s.quiz.Answered[s.quiz.Index]; !answered {
		return fmt.Errorf("current question not answered yet")
	}
	if s.quiz.Index >= len(s.quiz.Questions)-1 {
		return fmt.Errorf("already on the last question")
	}
	s.quiz.Index++
	return nil
}

// retreat moves back one question and clears its answered flag so the UI can
// re-ask it. The durable mastery write from the original answer stands.
func (s *session) retreat() error {
	if s.state != sessionActive {
		return domain.ErrSessionFinished
	}
	if s.quiz.Index == 0 {
		return fmt.Errorf("already on the first question")
	}
	s.quiz.Index--
	delete(s.quiz.Answered, s.quiz.Index)
	return nil
}

// finish closes the session and returns the correct-answer count from the
// in-memory log. Only reachable once the last question has been answered.
func (s *session) finish() (correct int, err error) {
	if s.state != sessionActive {
		return 0, domain.ErrSessionFinished
	}
	last := len(s.quiz.Questions) - 1
	if _, answered := s.quiz.Answered[last]; !answered {
		return 0, fmt.Errorf("last question not answered yet")
	}

	for _, ok := range s.quiz.Answered {
		if ok {
			correct++
		}
	}
	s.state = sessionFinished
	return correct, nil
}

// cancel terminates the session without a summary. Mastery updates already
// recorded per answer stay in place.
func (s *session) cancel() {
	if s.state == sessionActive {
		s.state = sessionCancelled
	}
}
