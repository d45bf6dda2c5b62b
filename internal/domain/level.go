package domain

import "fmt"

// Level is a CEFR proficiency band used to bucket vocabulary difficulty.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all bands in ascending difficulty order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseLevel validates a level string
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown CEFR level %q", s)
}

// Rank returns the position of the level in the A1..C2 order, A1 being 0.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

// Less reports whether l is an easier band than other
func (l Level) Less(other Level) bool {
	return l.Rank() < other.Rank()
}

// ExpansionOrder returns the adjacent levels to fall back to when l cannot
// supply enough words: nearest lower, nearest upper, second-nearest lower,
// second-nearest upper, then any remaining levels in ascending order.
func (l Level) ExpansionOrder() []Level {
	rank := l.Rank()
	if rank < 0 {
		return nil
	}

	order := make([]Level, 0, len(Levels)-1)
	seen := map[Level]bool{l: true}

	for dist := 1; dist <= 2; dist++ {
		if lower := rank - dist; lower >= 0 {
			order = append(order, Levels[lower])
			seen[Levels[lower]] = true
		}
		if upper := rank + dist; upper < len(Levels) {
			order = append(order, Levels[upper])
			seen[Levels[upper]] = true
		}
	}

	for _, v := range Levels {
		if !seen[v] {
			order = append(order, v)
		}
	}

	return order
}
