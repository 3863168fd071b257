package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/ThangaBalajiS/party-games/internal/domain/team"
)

type teamTableModel struct {
	ID                      string         `db:"id"`
	Name                    string         `db:"name"`
	Color                   string         `db:"color"`
	CaptainID               *string        `db:"captain_id"`
	Budget                  int            `db:"budget"`
	Score                   int            `db:"score"`
	GuessTheWordRounds      int            `db:"guess_the_word_rounds"`
	DumbCharadesRounds      int            `db:"dumb_charades_rounds"`
	PictionaryRounds        int            `db:"pictionary_rounds"`
	PenFightRounds          int            `db:"pen_fight_rounds"`
	BeerPongRounds          int            `db:"beer_pong_rounds"`
	BeerPongPlayersPlayed   int            `db:"beer_pong_players_played"`
	BeerPongPlayedPlayerIDs pq.StringArray `db:"beer_pong_played_player_ids"`
	BeerPongTotalScore      int            `db:"beer_pong_total_score"`
	CreatedAt               time.Time      `db:"created_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:                      m.ID,
		Name:                    m.Name,
		Color:                   m.Color,
		CaptainID:               m.CaptainID,
		Budget:                  m.Budget,
		Score:                   m.Score,
		GuessTheWordRounds:      m.GuessTheWordRounds,
		DumbCharadesRounds:      m.DumbCharadesRounds,
		PictionaryRounds:        m.PictionaryRounds,
		PenFightRounds:          m.PenFightRounds,
		BeerPongRounds:          m.BeerPongRounds,
		BeerPongPlayersPlayed:   m.BeerPongPlayersPlayed,
		BeerPongPlayedPlayerIDs: append([]string(nil), m.BeerPongPlayedPlayerIDs...),
		BeerPongTotalScore:      m.BeerPongTotalScore,
		CreatedAt:               m.CreatedAt,
	}
}
