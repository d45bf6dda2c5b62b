package domain

import "time"

// QuestionKind identifies which enrichment field a question was built from.
type QuestionKind string

const (
	KindDefinition   QuestionKind = "definition"
	KindSynonym      QuestionKind = "synonym"
	KindExample      QuestionKind = "example"
	KindPartOfSpeech QuestionKind = "part_of_speech"
)

// OptionCount is the fixed number of choices per question.
const OptionCount = 4

// QuizQuestion is one multiple-choice question, generated per quiz and never
// persisted.
type QuizQuestion struct {
	SourceWord    WordEntry
	Prompt        string
	Options       []string
	CorrectOption string
	Kind          QuestionKind
}

// IsCorrect reports whether the given choice matches the correct option.
func (q QuizQuestion) IsCorrect(choice string) bool {
	return choice == q.CorrectOption
}

// QuizSession is the ephemeral aggregate for one quiz run. The question list
// is fixed at creation; only the index and answer log change afterwards.
type QuizSession struct {
	Questions []QuizQuestion
	Index     int
	Answered  map[int]bool // question index -> answered correctly
	StartedAt time.Time
}

// SessionSummary is the result of finishing a session.
type SessionSummary struct {
	CorrectCount int
	TotalCount   int
	Accuracy     int // percentage 0-100
	XPAwarded    int
}

// DailyStudySession is one append-only study log row, aggregated by the
// stats views and never mutated after insertion.
type DailyStudySession struct {
	ID              int64
	Date            time.Time
	DurationMinutes int
	WordsStudied    int
	CorrectAnswers  int
	TotalQuestions  int
}

// StudyStats aggregates study session rows over a date range.
type StudyStats struct {
	Sessions       int
	WordsStudied   int
	CorrectAnswers int
	TotalQuestions int
	DurationMin    int
}

// Accuracy returns the aggregate answer accuracy as a 0-100 percentage.
func (s StudyStats) Accuracy() int {
	if s.TotalQuestions == 0 {
		return 0
	}
	return ComputeMastery(s.TotalQuestions, s.CorrectAnswers)
}
