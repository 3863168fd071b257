package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

// AuctionState is the derived auction view served to clients: the live
// settings plus the recomputed unsold queue.
type AuctionState struct {
	Settings      auction.Settings
	UnsoldPlayers []player.Player
	CurrentPlayer *player.Player
	NextBid       int
	Complete      bool
}

// SellPlayerInput finalizes one sale.
type SellPlayerInput struct {
	PlayerID string
	TeamID   string
	Price    int
}

type AuctionService struct {
	settingsRepo  auction.Repository
	playerRepo    player.Repository
	teamRepo      team.Repository
	defaultBudget int
	resetWorkers  int
	logger        *logging.Logger
}

func NewAuctionService(
	settingsRepo auction.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	defaultBudget int,
	resetWorkers int,
	logger *logging.Logger,
) *AuctionService {
	if logger == nil {
		logger = logging.Default()
	}
	if resetWorkers < 1 {
		resetWorkers = 1
	}

	return &AuctionService{
		settingsRepo:  settingsRepo,
		playerRepo:    playerRepo,
		teamRepo:      teamRepo,
		defaultBudget: defaultBudget,
		resetWorkers:  resetWorkers,
		logger:        logger,
	}
}

func (s *AuctionService) Settings(ctx context.Context) (auction.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("get auction settings: %w", err)
	}

	return settings, nil
}

func (s *AuctionService) UpdateSettings(ctx context.Context, update auction.Update) (auction.Settings, error) {
	if update.BasePrice != nil && *update.BasePrice <= 0 {
		return auction.Settings{}, fmt.Errorf("%w: base price must be greater than zero", ErrInvalidInput)
	}
	if update.BidIncrement != nil && *update.BidIncrement <= 0 {
		return auction.Settings{}, fmt.Errorf("%w: bid increment must be greater than zero", ErrInvalidInput)
	}
	if update.Status != nil {
		if _, ok := auction.AllStatuses[*update.Status]; !ok {
			return auction.Settings{}, fmt.Errorf("%w: invalid auction status %s", ErrInvalidInput, *update.Status)
		}
	}
	if update.CurrentPlayerIndex != nil && *update.CurrentPlayerIndex < 0 {
		return auction.Settings{}, fmt.Errorf("%w: current player index cannot be negative", ErrInvalidInput)
	}

	settings, err := s.settingsRepo.Update(ctx, update)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("update auction settings: %w", err)
	}

	return settings, nil
}

// State recomputes the unsold queue from player records and resolves the
// current-player pointer against it.
func (s *AuctionService) State(ctx context.Context) (AuctionState, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return AuctionState{}, fmt.Errorf("get auction settings: %w", err)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return AuctionState{}, fmt.Errorf("list players: %w", err)
	}

	unsold := auction.UnsoldPlayers(players)
	state := AuctionState{
		Settings:      settings,
		UnsoldPlayers: unsold,
		NextBid:       settings.NextBid(false, 0),
		Complete:      settings.Complete(len(unsold)),
	}
	if current, ok := auction.CurrentPlayer(unsold, settings.CurrentPlayerIndex); ok {
		state.CurrentPlayer = &current
	}

	return state, nil
}

// SellPlayer finalizes a sale: the player joins the roster at the given price
// and the team budget is debited. The two writes are sequential with no
// rollback; the budget has no floor and can go negative under racing clients.
func (s *AuctionService) SellPlayer(ctx context.Context, input SellPlayerInput) (player.Player, error) {
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.PlayerID == "" || input.TeamID == "" {
		return player.Player{}, fmt.Errorf("%w: player id and team id are required", ErrInvalidInput)
	}
	if input.Price <= 0 {
		return player.Player{}, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}
	if p.TeamID != nil {
		return player.Player{}, fmt.Errorf("%w: player=%s is already sold", ErrConflict, input.PlayerID)
	}
	if p.IsCaptain {
		return player.Player{}, fmt.Errorf("%w: player=%s is a captain and exempt from the auction", ErrConflict, input.PlayerID)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	sold, exists, err := s.playerRepo.Update(ctx, input.PlayerID, player.Update{
		TeamID:    &input.TeamID,
		SoldPrice: &input.Price,
	})
	if err != nil {
		return player.Player{}, fmt.Errorf("assign player to team: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	newBudget := t.Budget - input.Price
	if _, _, err := s.teamRepo.Update(ctx, t.ID, team.Update{Budget: &newBudget}); err != nil {
		return player.Player{}, fmt.Errorf("debit team budget: %w", err)
	}

	s.logger.InfoContext(ctx, "player sold",
		"player_id", sold.ID,
		"team_id", t.ID,
		"price", input.Price,
		"budget", newBudget,
	)

	return sold, nil
}

// SkipPlayer rotates the current-player pointer over the unsold pool. The
// pointer is numeric, so the pool keeps its creation order and the skipped
// player comes around again on the next lap.
func (s *AuctionService) SkipPlayer(ctx context.Context) (auction.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("get auction settings: %w", err)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("list players: %w", err)
	}

	next := auction.NextIndex(settings.CurrentPlayerIndex, len(auction.UnsoldPlayers(players)))
	updated, err := s.settingsRepo.Update(ctx, auction.Update{CurrentPlayerIndex: &next})
	if err != nil {
		return auction.Settings{}, fmt.Errorf("advance current player index: %w", err)
	}

	return updated, nil
}

// FinishAuction marks the auction completed regardless of remaining unsold
// players.
func (s *AuctionService) FinishAuction(ctx context.Context) (auction.Settings, error) {
	status := auction.StatusCompleted
	settings, err := s.settingsRepo.Update(ctx, auction.Update{Status: &status})
	if err != nil {
		return auction.Settings{}, fmt.Errorf("finish auction: %w", err)
	}

	s.logger.InfoContext(ctx, "auction finished")

	return settings, nil
}

// TradePlayers swaps the team assignments of two sold, non-captain players.
// Sold prices stay with the player. Two sequential writes, no transaction.
func (s *AuctionService) TradePlayers(ctx context.Context, firstID, secondID string) ([]player.Player, error) {
	firstID = strings.TrimSpace(firstID)
	secondID = strings.TrimSpace(secondID)
	if firstID == "" || secondID == "" {
		return nil, fmt.Errorf("%w: both player ids are required", ErrInvalidInput)
	}
	if firstID == secondID {
		return nil, fmt.Errorf("%w: cannot trade a player with themselves", ErrInvalidInput)
	}

	first, err := s.tradeCandidate(ctx, firstID)
	if err != nil {
		return nil, err
	}
	second, err := s.tradeCandidate(ctx, secondID)
	if err != nil {
		return nil, err
	}

	updatedFirst, exists, err := s.playerRepo.Update(ctx, first.ID, player.Update{TeamID: second.TeamID})
	if err != nil {
		return nil, fmt.Errorf("reassign player=%s: %w", first.ID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, first.ID)
	}

	updatedSecond, exists, err := s.playerRepo.Update(ctx, second.ID, player.Update{TeamID: first.TeamID})
	if err != nil {
		return nil, fmt.Errorf("reassign player=%s: %w", second.ID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, second.ID)
	}

	s.logger.InfoContext(ctx, "players traded",
		"first_player_id", first.ID,
		"second_player_id", second.ID,
	)

	return []player.Player{updatedFirst, updatedSecond}, nil
}

func (s *AuctionService) tradeCandidate(ctx context.Context, playerID string) (player.Player, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if p.IsCaptain {
		return player.Player{}, fmt.Errorf("%w: player=%s is a captain and exempt from trade", ErrConflict, playerID)
	}
	if p.TeamID == nil {
		return player.Player{}, fmt.Errorf("%w: player=%s is not assigned to a team", ErrConflict, playerID)
	}

	return p, nil
}

// ResetAuction returns every non-captain player to the unsold pool, restores
// every team budget to the default and resets the settings singleton. Entity
// updates are fanned out through a worker pool; the sweep keeps going past
// individual failures and the first error is reported.
func (s *AuctionService) ResetAuction(ctx context.Context) (auction.Settings, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("list players: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("list teams: %w", err)
	}

	pool, err := ants.NewPool(s.resetWorkers)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	recordErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, p := range players {
		if p.IsCaptain || (p.TeamID == nil && p.SoldPrice == nil) {
			continue
		}
		p := p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			update := player.Update{ClearTeamID: true, ClearSoldPrice: true}
			if _, _, err := s.playerRepo.Update(ctx, p.ID, update); err != nil {
				recordErr(fmt.Errorf("reset player=%s: %w", p.ID, err))
			}
		}); err != nil {
			workers.Done()
			recordErr(fmt.Errorf("submit player reset: %w", err))
		}
	}

	for _, t := range teams {
		t := t
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			budget := s.defaultBudget
			if _, _, err := s.teamRepo.Update(ctx, t.ID, team.Update{Budget: &budget}); err != nil {
				recordErr(fmt.Errorf("reset team=%s budget: %w", t.ID, err))
			}
		}); err != nil {
			workers.Done()
			recordErr(fmt.Errorf("submit team reset: %w", err))
		}
	}

	workers.Wait()
	if firstErr != nil {
		return auction.Settings{}, firstErr
	}

	settings, err := s.settingsRepo.Reset(ctx)
	if err != nil {
		return auction.Settings{}, fmt.Errorf("reset auction settings: %w", err)
	}

	s.logger.InfoContext(ctx, "auction reset",
		"player_count", len(players),
		"team_count", len(teams),
	)

	return settings, nil
}
