package team

import (
	"fmt"
	"time"
)

// DefaultColor is used when a team is created without an explicit color.
const DefaultColor = "#3B82F6"

// Team owns a roster, an auction budget and the running scores for every
// mini-game. Budget has no floor: concurrent sales can overdraw it.
type Team struct {
	ID                      string
	Name                    string
	Color                   string
	CaptainID               *string
	Budget                  int
	Score                   int
	GuessTheWordRounds      int
	DumbCharadesRounds      int
	PictionaryRounds        int
	PenFightRounds          int
	BeerPongRounds          int
	BeerPongPlayersPlayed   int
	BeerPongPlayedPlayerIDs []string
	BeerPongTotalScore      int
	CreatedAt               time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// HasPlayedBeerPong reports whether the player already scored a beer-pong
// round for this team.
func (t Team) HasPlayedBeerPong(playerID string) bool {
	for _, id := range t.BeerPongPlayedPlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// Update carries a partial modification. AddBeerPongPlayerID is applied as an
// append to BeerPongPlayedPlayerIDs, never a replace.
type Update struct {
	Name                  *string
	Color                 *string
	CaptainID             *string
	ClearCaptainID        bool
	Budget                *int
	Score                 *int
	GuessTheWordRounds    *int
	DumbCharadesRounds    *int
	PictionaryRounds      *int
	PenFightRounds        *int
	BeerPongRounds        *int
	BeerPongPlayersPlayed *int
	BeerPongTotalScore    *int
	AddBeerPongPlayerID   *string
}

// Apply merges the update into the team, field by field.
func (t *Team) Apply(update Update) {
	if update.Name != nil {
		t.Name = *update.Name
	}
	if update.Color != nil {
		t.Color = *update.Color
	}
	if update.ClearCaptainID {
		t.CaptainID = nil
	} else if update.CaptainID != nil {
		captainID := *update.CaptainID
		t.CaptainID = &captainID
	}
	if update.Budget != nil {
		t.Budget = *update.Budget
	}
	if update.Score != nil {
		t.Score = *update.Score
	}
	if update.GuessTheWordRounds != nil {
		t.GuessTheWordRounds = *update.GuessTheWordRounds
	}
	if update.DumbCharadesRounds != nil {
		t.DumbCharadesRounds = *update.DumbCharadesRounds
	}
	if update.PictionaryRounds != nil {
		t.PictionaryRounds = *update.PictionaryRounds
	}
	if update.PenFightRounds != nil {
		t.PenFightRounds = *update.PenFightRounds
	}
	if update.BeerPongRounds != nil {
		t.BeerPongRounds = *update.BeerPongRounds
	}
	if update.BeerPongPlayersPlayed != nil {
		t.BeerPongPlayersPlayed = *update.BeerPongPlayersPlayed
	}
	if update.BeerPongTotalScore != nil {
		t.BeerPongTotalScore = *update.BeerPongTotalScore
	}
	if update.AddBeerPongPlayerID != nil {
		t.BeerPongPlayedPlayerIDs = append(t.BeerPongPlayedPlayerIDs, *update.AddBeerPongPlayerID)
	}
}
