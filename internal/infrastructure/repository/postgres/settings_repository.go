package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	qb "github.com/ThangaBalajiS/party-games/internal/platform/querybuilder"
)

// settingsRowID pins the auction settings to a single row.
const settingsRowID = 1

// SettingsRepository persists the auction settings singleton. Get inserts the
// defaults on first use so callers never see a missing row.
type SettingsRepository struct {
	db       *sqlx.DB
	defaults auction.Settings
}

var settingsSelectColumns = []string{
	"id",
	"base_price",
	"bid_increment",
	"status",
	"current_player_index",
}

func NewSettingsRepository(db *sqlx.DB, defaults auction.Settings) *SettingsRepository {
	return &SettingsRepository{db: db, defaults: defaults}
}

func (r *SettingsRepository) Get(ctx context.Context) (auction.Settings, error) {
	query, args, err := qb.InsertInto("auction_settings").
		Columns("id", "base_price", "bid_increment", "status", "current_player_index").
		Values(settingsRowID, r.defaults.BasePrice, r.defaults.BidIncrement, string(r.defaults.Status), r.defaults.CurrentPlayerIndex).
		Suffix("ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id RETURNING " + settingsReturningColumns()).
		ToSQL()
	if err != nil {
		return auction.Settings{}, fmt.Errorf("build get auction settings query: %w", err)
	}

	var row auctionSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return auction.Settings{}, fmt.Errorf("get auction settings: %w", err)
	}

	return row.toDomain(), nil
}

func (r *SettingsRepository) Update(ctx context.Context, update auction.Update) (auction.Settings, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return auction.Settings{}, err
	}
	current.Apply(update)

	return r.write(ctx, current)
}

func (r *SettingsRepository) Reset(ctx context.Context) (auction.Settings, error) {
	return r.write(ctx, r.defaults)
}

func (r *SettingsRepository) write(ctx context.Context, settings auction.Settings) (auction.Settings, error) {
	query, args, err := qb.Update("auction_settings").
		Set("base_price", settings.BasePrice).
		Set("bid_increment", settings.BidIncrement).
		Set("status", string(settings.Status)).
		Set("current_player_index", settings.CurrentPlayerIndex).
		Where(qb.Eq("id", settingsRowID)).
		Suffix("RETURNING " + settingsReturningColumns()).
		ToSQL()
	if err != nil {
		return auction.Settings{}, fmt.Errorf("build update auction settings query: %w", err)
	}

	var row auctionSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			// The row vanished between get and write; recreate it.
			if _, err := r.Get(ctx); err != nil {
				return auction.Settings{}, err
			}
			if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
				return auction.Settings{}, fmt.Errorf("update auction settings: %w", err)
			}
			return row.toDomain(), nil
		}
		return auction.Settings{}, fmt.Errorf("update auction settings: %w", err)
	}

	return row.toDomain(), nil
}

func settingsReturningColumns() string {
	return "id, base_price, bid_increment, status, current_player_index"
}
