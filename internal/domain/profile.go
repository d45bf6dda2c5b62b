package domain

const (
	// XPPerCorrect and XPPerIncorrect are the per-answer experience awards
	// granted when a session finishes. Purely additive.
	XPPerCorrect   = 10
	XPPerIncorrect = 5

	xpPerDisplayLevel = 100
)

// UserProfile is the single local learner profile.
type UserProfile struct {
	CurrentLevel     Level
	TargetLevel      Level
	ExperiencePoints int
}

// DisplayLevel converts accumulated experience into the 1-based level shown
// to the learner.
func DisplayLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerDisplayLevel + 1
}
