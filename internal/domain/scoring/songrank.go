package scoring

// Popular-song point values. Components are additive, not mutually exclusive:
// an exact rank-1 guess earns the in-top-three, exact-match and has-top-song
// points at once.
const (
	songInTopThreePoints = 5
	songExactMatchPoints = 5
	songHasTopSongBonus  = 5
	songPerfectBonus     = 15
)

// SongRankBreakdown itemizes a popular-song score for display.
type SongRankBreakdown struct {
	InTopThree   int
	ExactMatches int
	HasTopSong   bool
	PerfectBonus bool
}

// SongRankScore compares a team's three ordered guesses against the true
// top-three song ids. A short top-three (album below the playable threshold)
// scores zero.
func SongRankScore(topThree []string, guesses []string) (int, SongRankBreakdown) {
	var breakdown SongRankBreakdown
	if len(topThree) < 3 {
		return 0, breakdown
	}

	inTop := make(map[string]struct{}, len(topThree))
	for _, id := range topThree {
		inTop[id] = struct{}{}
	}

	for i, guess := range guesses {
		if guess == "" {
			continue
		}
		if _, ok := inTop[guess]; ok {
			breakdown.InTopThree++
		}
		if i < len(topThree) && guess == topThree[i] {
			breakdown.ExactMatches++
		}
		if guess == topThree[0] {
			breakdown.HasTopSong = true
		}
	}
	breakdown.PerfectBonus = breakdown.ExactMatches == 3

	total := breakdown.InTopThree*songInTopThreePoints +
		breakdown.ExactMatches*songExactMatchPoints
	if breakdown.HasTopSong {
		total += songHasTopSongBonus
	}
	if breakdown.PerfectBonus {
		total += songPerfectBonus
	}

	return total, breakdown
}
