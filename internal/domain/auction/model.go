package auction

import (
	"fmt"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
)

// Status tracks where the live auction is in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

var AllStatuses = map[Status]struct{}{
	StatusPending:    {},
	StatusInProgress: {},
	StatusCompleted:  {},
}

// Settings is the singleton auction state. CurrentPlayerIndex points into the
// unsold pool, which is recomputed from player records on every read.
type Settings struct {
	BasePrice          int
	BidIncrement       int
	Status             Status
	CurrentPlayerIndex int
}

// Defaults returns the settings a fresh or reset auction starts with.
func Defaults(basePrice, bidIncrement int) Settings {
	return Settings{
		BasePrice:          basePrice,
		BidIncrement:       bidIncrement,
		Status:             StatusPending,
		CurrentPlayerIndex: 0,
	}
}

func (s Settings) Validate() error {
	if s.BasePrice <= 0 {
		return fmt.Errorf("base price must be greater than zero")
	}
	if s.BidIncrement <= 0 {
		return fmt.Errorf("bid increment must be greater than zero")
	}
	if _, ok := AllStatuses[s.Status]; !ok {
		return fmt.Errorf("invalid auction status: %s", s.Status)
	}
	if s.CurrentPlayerIndex < 0 {
		return fmt.Errorf("current player index cannot be negative")
	}

	return nil
}

// NextBid is the bid ladder: the opening bid is the base price, every further
// bid climbs by the increment.
func (s Settings) NextBid(hasBidder bool, currentBid int) int {
	if hasBidder {
		return currentBid + s.BidIncrement
	}
	return s.BasePrice
}

// Complete reports whether the auction is over, either explicitly or because
// the unsold pool drained.
func (s Settings) Complete(unsoldCount int) bool {
	return unsoldCount == 0 || s.Status == StatusCompleted
}

// UnsoldPlayers filters the auction pool: no team and not a captain, in the
// order given (callers pass creation-ordered lists).
func UnsoldPlayers(players []player.Player) []player.Player {
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.TeamID == nil && !p.IsCaptain {
			out = append(out, p)
		}
	}
	return out
}

// CurrentPlayer resolves the index against the unsold pool, falling back to
// the head of the pool when the index points past it.
func CurrentPlayer(unsold []player.Player, index int) (player.Player, bool) {
	if len(unsold) == 0 {
		return player.Player{}, false
	}
	if index < 0 || index >= len(unsold) {
		return unsold[0], true
	}
	return unsold[index], true
}

// NextIndex rotates the pointer over the pool. The pool size seen here is the
// one before the skip takes effect, so the pointer wraps to 0 at the end.
func NextIndex(index, poolSize int) int {
	if poolSize < 1 {
		poolSize = 1
	}
	return (index + 1) % poolSize
}

// Update carries a partial settings modification.
type Update struct {
	BasePrice          *int
	BidIncrement       *int
	Status             *Status
	CurrentPlayerIndex *int
}

// Apply merges the update into the settings, field by field.
func (s *Settings) Apply(update Update) {
	if update.BasePrice != nil {
		s.BasePrice = *update.BasePrice
	}
	if update.BidIncrement != nil {
		s.BidIncrement = *update.BidIncrement
	}
	if update.Status != nil {
		s.Status = *update.Status
	}
	if update.CurrentPlayerIndex != nil {
		s.CurrentPlayerIndex = *update.CurrentPlayerIndex
	}
}
