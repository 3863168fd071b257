package postgres

import "github.com/ThangaBalajiS/party-games/internal/domain/auction"

type auctionSettingsTableModel struct {
	ID                 int    `db:"id"`
	BasePrice          int    `db:"base_price"`
	BidIncrement       int    `db:"bid_increment"`
	Status             string `db:"status"`
	CurrentPlayerIndex int    `db:"current_player_index"`
}

func (m auctionSettingsTableModel) toDomain() auction.Settings {
	return auction.Settings{
		BasePrice:          m.BasePrice,
		BidIncrement:       m.BidIncrement,
		Status:             auction.Status(m.Status),
		CurrentPlayerIndex: m.CurrentPlayerIndex,
	}
}
