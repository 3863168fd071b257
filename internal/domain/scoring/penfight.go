package scoring

import "fmt"

// PenFightOutcome classifies one player slot in a pen-fight round.
type PenFightOutcome string

const (
	PenFightKnockedOut   PenFightOutcome = "knocked_out"
	PenFightRingOut      PenFightOutcome = "ring_out"
	PenFightFriendlyFire PenFightOutcome = "friendly_fire"
	PenFightWinner       PenFightOutcome = "winner"
	PenFightPlaying      PenFightOutcome = "playing"
)

var AllPenFightOutcomes = map[PenFightOutcome]struct{}{
	PenFightKnockedOut:   {},
	PenFightRingOut:      {},
	PenFightFriendlyFire: {},
	PenFightWinner:       {},
	PenFightPlaying:      {},
}

const (
	penFightKnockOutPoints = 20
	penFightWinnerPoints   = 20
	penFightFoulPenalty    = 10
)

func ValidatePenFightOutcomes(outcomes []PenFightOutcome) error {
	for i, outcome := range outcomes {
		if _, ok := AllPenFightOutcomes[outcome]; !ok {
			return fmt.Errorf("invalid pen fight outcome at slot %d: %s", i, outcome)
		}
	}
	return nil
}

// PenFightDeltas sums score deltas for both sides from their slot outcomes.
// A knockout rewards the opposing side; fouls cost the side that committed
// them. Deltas can go negative and are applied unclamped.
func PenFightDeltas(sideA, sideB []PenFightOutcome) (int, int) {
	deltaA, deltaB := 0, 0
	for _, outcome := range sideA {
		own, opposing := penFightPoints(outcome)
		deltaA += own
		deltaB += opposing
	}
	for _, outcome := range sideB {
		own, opposing := penFightPoints(outcome)
		deltaB += own
		deltaA += opposing
	}
	return deltaA, deltaB
}

func penFightPoints(outcome PenFightOutcome) (own, opposing int) {
	switch outcome {
	case PenFightKnockedOut:
		return 0, penFightKnockOutPoints
	case PenFightRingOut, PenFightFriendlyFire:
		return -penFightFoulPenalty, 0
	case PenFightWinner:
		return penFightWinnerPoints, 0
	default:
		return 0, 0
	}
}
