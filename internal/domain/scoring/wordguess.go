package scoring

const (
	wordGuessPerAnswer    = 5
	wordGuessMaxAnswers   = 5
	wordGuessPerfectScore = 30
)

// WordGuessScore awards 5 points per correct answer, with a bumped 30-point
// payout for a perfect round of 5.
func WordGuessScore(correctAnswers int) int {
	if correctAnswers <= 0 {
		return 0
	}
	if correctAnswers >= wordGuessMaxAnswers {
		return wordGuessPerfectScore
	}
	return correctAnswers * wordGuessPerAnswer
}
