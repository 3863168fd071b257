package scoring

import "fmt"

// CharadesMode selects the base score for a dumb-charades round.
type CharadesMode string

const (
	CharadesModeAction         CharadesMode = "action"
	CharadesModeLetterByLetter CharadesMode = "letter-by-letter"
)

const (
	charadesActionBase     = 50
	charadesLetterBase     = 25
	charadesGraceSeconds   = 30
	charadesPenaltyWindow  = 20
	charadesPenaltyStep    = 5
	charadesPenaltyMaxStep = 5
)

func CharadesBase(mode CharadesMode) (int, error) {
	switch mode {
	case CharadesModeAction:
		return charadesActionBase, nil
	case CharadesModeLetterByLetter:
		return charadesLetterBase, nil
	default:
		return 0, fmt.Errorf("invalid charades mode: %s", mode)
	}
}

// CharadesPenalty is 0 within the 30s grace window, then 5 points per started
// 20s block, capped at 25.
func CharadesPenalty(elapsedSeconds int) int {
	if elapsedSeconds <= charadesGraceSeconds {
		return 0
	}
	steps := (elapsedSeconds-charadesGraceSeconds)/charadesPenaltyWindow + 1
	if steps > charadesPenaltyMaxStep {
		steps = charadesPenaltyMaxStep
	}
	return steps * charadesPenaltyStep
}

// CharadesScore is base minus the time penalty, floored at zero. A timed-out
// round scores zero regardless of mode.
func CharadesScore(mode CharadesMode, elapsedSeconds int, timedOut bool) (int, error) {
	base, err := CharadesBase(mode)
	if err != nil {
		return 0, err
	}
	if timedOut {
		return 0, nil
	}

	total := base - CharadesPenalty(elapsedSeconds)
	if total < 0 {
		total = 0
	}
	return total, nil
}
