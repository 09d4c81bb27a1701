package quiz

// Stars converts a score to a 0-3 star award:
//
//	>= 80% -> 3, >= 60% -> 2, >= 40% -> 1, otherwise 0.
//
// Thresholds are compared exactly in integer arithmetic.
func Stars(correct, total int) int {
	if total <= 0 {
		return 0
	}
	switch {
	case correct*100 >= 80*total:
		return 3
	case correct*100 >= 60*total:
		return 2
	case correct*100 >= 40*total:
		return 1
	default:
		return 0
	}
}

// Percentage returns correct/total as a whole percentage, rounded half up.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

// Tier is the results copy shown for a score band.
type Tier struct {
	Emoji   string
	Message string
}

// TierFor returns the results copy for a percentage.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 80:
		return Tier{Emoji: "🏆", Message: "Incredible! You're a time-telling superstar!"}
	case percentage >= 60:
		return Tier{Emoji: "🌟", Message: "Great job! You're getting really good at this!"}
	case percentage >= 40:
		return Tier{Emoji: "👍", Message: "Good effort! Keep practicing and you'll be a pro!"}
	default:
		return Tier{Emoji: "💪", Message: "Don't worry! Every expert was once a beginner. Keep trying!"}
	}
}

// RetryMessages are shown after a wrong attempt that still has tries left.
var RetryMessages = []string{
	"Hmm, not quite! Give it another try! 🤔",
	"Oops! That's not it. You can do this! 💪",
	"Almost! Think again and try once more! 🌟",
	"Not that one! Keep going, you've got this! 🎯",
	"Nope, but don't give up! Try again! ✨",
}
