package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	qb "github.com/ThangaBalajiS/party-games/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"id",
	"name",
	"color",
	"captain_id",
	"budget",
	"score",
	"guess_the_word_rounds",
	"dumb_charades_rounds",
	"pictionary_rounds",
	"pen_fight_rounds",
	"beer_pong_rounds",
	"beer_pong_players_played",
	"beer_pong_played_player_ids",
	"beer_pong_total_score",
	"created_at",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertInto("teams").
		Columns(
			"id",
			"name",
			"color",
			"captain_id",
			"budget",
			"score",
			"beer_pong_played_player_ids",
			"created_at",
		).
		Values(
			t.ID,
			t.Name,
			t.Color,
			t.CaptainID,
			t.Budget,
			t.Score,
			pq.StringArray(t.BeerPongPlayedPlayerIDs),
			t.CreatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, update team.Update) (team.Team, bool, error) {
	builder := qb.Update("teams")
	if update.Name != nil {
		builder.Set("name", *update.Name)
	}
	if update.Color != nil {
		builder.Set("color", *update.Color)
	}
	if update.ClearCaptainID {
		builder.Set("captain_id", nil)
	} else if update.CaptainID != nil {
		builder.Set("captain_id", *update.CaptainID)
	}
	if update.Budget != nil {
		builder.Set("budget", *update.Budget)
	}
	if update.Score != nil {
		builder.Set("score", *update.Score)
	}
	if update.GuessTheWordRounds != nil {
		builder.Set("guess_the_word_rounds", *update.GuessTheWordRounds)
	}
	if update.DumbCharadesRounds != nil {
		builder.Set("dumb_charades_rounds", *update.DumbCharadesRounds)
	}
	if update.PictionaryRounds != nil {
		builder.Set("pictionary_rounds", *update.PictionaryRounds)
	}
	if update.PenFightRounds != nil {
		builder.Set("pen_fight_rounds", *update.PenFightRounds)
	}
	if update.BeerPongRounds != nil {
		builder.Set("beer_pong_rounds", *update.BeerPongRounds)
	}
	if update.BeerPongPlayersPlayed != nil {
		builder.Set("beer_pong_players_played", *update.BeerPongPlayersPlayed)
	}
	if update.BeerPongTotalScore != nil {
		builder.Set("beer_pong_total_score", *update.BeerPongTotalScore)
	}
	if update.AddBeerPongPlayerID != nil {
		builder.SetExpr(
			"beer_pong_played_player_ids",
			"array_append(beer_pong_played_player_ids, ?)",
			*update.AddBeerPongPlayerID,
		)
	}

	query, args, err := builder.
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + teamReturningColumns()).
		ToSQL()
	if err != nil {
		return r.GetByID(ctx, id)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("update team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete team rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("delete all teams: %w", err)
	}

	return nil
}

func teamReturningColumns() string {
	return "id, name, color, captain_id, budget, score, guess_the_word_rounds, " +
		"dumb_charades_rounds, pictionary_rounds, pen_fight_rounds, beer_pong_rounds, " +
		"beer_pong_players_played, beer_pong_played_player_ids, beer_pong_total_score, created_at"
}
