package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	qb "github.com/ThangaBalajiS/party-games/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"photo",
	"team_id",
	"sold_price",
	"is_captain",
	"created_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "photo", "team_id", "sold_price", "is_captain", "created_at").
		Values(p.ID, p.Name, p.Photo, p.TeamID, p.SoldPrice, p.IsCaptain, p.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, id string, update player.Update) (player.Player, bool, error) {
	builder := qb.Update("players")
	if update.Name != nil {
		builder.Set("name", *update.Name)
	}
	if update.ClearPhoto {
		builder.Set("photo", nil)
	} else if update.Photo != nil {
		builder.Set("photo", *update.Photo)
	}
	if update.ClearTeamID {
		builder.Set("team_id", nil)
	} else if update.TeamID != nil {
		builder.Set("team_id", *update.TeamID)
	}
	if update.ClearSoldPrice {
		builder.Set("sold_price", nil)
	} else if update.SoldPrice != nil {
		builder.Set("sold_price", *update.SoldPrice)
	}
	if update.IsCaptain != nil {
		builder.Set("is_captain", *update.IsCaptain)
	}

	query, args, err := builder.
		Where(qb.Eq("id", id)).
		Suffix("RETURNING " + playerReturningColumns()).
		ToSQL()
	if err != nil {
		// An empty update has no assignments; reread the current row instead.
		return r.GetByID(ctx, id)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("delete all players: %w", err)
	}

	return nil
}

func playerReturningColumns() string {
	return "id, name, photo, team_id, sold_price, is_captain, created_at"
}
