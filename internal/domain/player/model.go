package player

import (
	"fmt"
	"time"
)

// Player is a participant in the party. A player without a team is still in
// the auction pool; SoldPrice is set only once a team buys them.
type Player struct {
	ID        string
	Name      string
	Photo     *string
	TeamID    *string
	SoldPrice *int
	IsCaptain bool
	CreatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.SoldPrice != nil && *p.SoldPrice < 0 {
		return fmt.Errorf("player sold price cannot be negative")
	}

	return nil
}

// Unsold reports whether the player has no team assignment yet.
func (p Player) Unsold() bool {
	return p.TeamID == nil
}

// Update carries a partial modification. Nil pointer fields leave the
// current value untouched; the Clear flags set a field back to null.
type Update struct {
	Name           *string
	Photo          *string
	ClearPhoto     bool
	TeamID         *string
	ClearTeamID    bool
	SoldPrice      *int
	ClearSoldPrice bool
	IsCaptain      *bool
}

// Apply merges the update into the player, field by field.
func (p *Player) Apply(update Update) {
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.ClearPhoto {
		p.Photo = nil
	} else if update.Photo != nil {
		photo := *update.Photo
		p.Photo = &photo
	}
	if update.ClearTeamID {
		p.TeamID = nil
	} else if update.TeamID != nil {
		teamID := *update.TeamID
		p.TeamID = &teamID
	}
	if update.ClearSoldPrice {
		p.SoldPrice = nil
	} else if update.SoldPrice != nil {
		price := *update.SoldPrice
		p.SoldPrice = &price
	}
	if update.IsCaptain != nil {
		p.IsCaptain = *update.IsCaptain
	}
}
