package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	idgen "github.com/ThangaBalajiS/party-games/internal/platform/id"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

// CreatePlayerInput is the incoming payload for player registration.
type CreatePlayerInput struct {
	Name  string
	Photo *string
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:        playerID,
		Name:      input.Name,
		Photo:     input.Photo,
		CreatedAt: s.now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", p.ID, "name", p.Name)

	return p, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, update player.Update) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return player.Player{}, fmt.Errorf("%w: player name cannot be empty", ErrInvalidInput)
		}
		update.Name = &name
	}
	if update.SoldPrice != nil && *update.SoldPrice < 0 {
		return player.Player{}, fmt.Errorf("%w: sold price cannot be negative", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.Update(ctx, playerID, update)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

// DeletePlayer removes the player and clears captaincy on any team that still
// references it. The two writes are sequential, not transactional.
func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list teams for captain cleanup: %w", err)
	}
	for _, t := range teams {
		if t.CaptainID == nil || *t.CaptainID != playerID {
			continue
		}
		if _, _, err := s.teamRepo.Update(ctx, t.ID, team.Update{ClearCaptainID: true}); err != nil {
			return fmt.Errorf("clear captain on team=%s: %w", t.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)

	return nil
}

func (s *PlayerService) DeleteAllPlayers(ctx context.Context) error {
	if err := s.playerRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all players: %w", err)
	}

	s.logger.InfoContext(ctx, "all players deleted")

	return nil
}
