package postgres

import (
	"time"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
)

type playerTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Photo     *string   `db:"photo"`
	TeamID    *string   `db:"team_id"`
	SoldPrice *int      `db:"sold_price"`
	IsCaptain bool      `db:"is_captain"`
	CreatedAt time.Time `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		Photo:     m.Photo,
		TeamID:    m.TeamID,
		SoldPrice: m.SoldPrice,
		IsCaptain: m.IsCaptain,
		CreatedAt: m.CreatedAt,
	}
}
