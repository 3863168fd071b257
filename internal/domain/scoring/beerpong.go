package scoring

const (
	beerPongPerThrow     = 5
	beerPongMaxThrows    = 5
	beerPongPerfectScore = 30
)

// BeerPongScore awards 5 points per successful throw, with a bumped 30-point
// payout for a perfect round of 5.
func BeerPongScore(successfulThrows int) int {
	if successfulThrows <= 0 {
		return 0
	}
	if successfulThrows >= beerPongMaxThrows {
		return beerPongPerfectScore
	}
	return successfulThrows * beerPongPerThrow
}
