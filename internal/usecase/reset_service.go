package usecase

import (
	"context"
	"fmt"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

type ResetService struct {
	playerRepo   player.Repository
	teamRepo     team.Repository
	albumRepo    album.Repository
	settingsRepo auction.Repository
	logger       *logging.Logger
}

func NewResetService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	albumRepo album.Repository,
	settingsRepo auction.Repository,
	logger *logging.Logger,
) *ResetService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ResetService{
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		albumRepo:    albumRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// ResetAll wipes every collection and restores default auction settings,
// returning the session to a blank slate.
func (s *ResetService) ResetAll(ctx context.Context) error {
	if err := s.playerRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all players: %w", err)
	}
	if err := s.teamRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all teams: %w", err)
	}
	if err := s.albumRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all albums: %w", err)
	}
	if _, err := s.settingsRepo.Reset(ctx); err != nil {
		return fmt.Errorf("reset auction settings: %w", err)
	}

	s.logger.InfoContext(ctx, "session reset")

	return nil
}
