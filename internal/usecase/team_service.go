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

// CreateTeamInput is the incoming payload for team creation.
type CreateTeamInput struct {
	Name  string
	Color *string
}

type TeamService struct {
	teamRepo      team.Repository
	playerRepo    player.Repository
	idGen         idgen.Generator
	defaultBudget int
	logger        *logging.Logger
	now           func() time.Time
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	defaultBudget int,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		idGen:         idGen,
		defaultBudget: defaultBudget,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	color := team.DefaultColor
	if input.Color != nil && strings.TrimSpace(*input.Color) != "" {
		color = strings.TrimSpace(*input.Color)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	t := team.Team{
		ID:        teamID,
		Name:      input.Name,
		Color:     color,
		Budget:    s.defaultBudget,
		CreatedAt: s.now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", t.ID, "name", t.Name, "budget", t.Budget)

	return t, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, update team.Update) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return team.Team{}, fmt.Errorf("%w: team name cannot be empty", ErrInvalidInput)
		}
		update.Name = &name
	}

	t, exists, err := s.teamRepo.Update(ctx, teamID, update)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}

// DeleteTeam removes the team and sends its players back to the unsold pool.
// The cascade is a sequence of independent writes.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	deleted, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list players for unassign: %w", err)
	}
	notCaptain := false
	for _, p := range players {
		if p.TeamID == nil || *p.TeamID != teamID {
			continue
		}
		update := player.Update{ClearTeamID: true, ClearSoldPrice: true}
		if p.IsCaptain {
			update.IsCaptain = &notCaptain
		}
		if _, _, err := s.playerRepo.Update(ctx, p.ID, update); err != nil {
			return fmt.Errorf("unassign player=%s: %w", p.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)

	return nil
}

// AssignCaptain pins a player to a team before the auction. Captains carry no
// sold price and are exempt from the unsold pool.
func (s *TeamService) AssignCaptain(ctx context.Context, teamID, playerID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return team.Team{}, fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	if p.TeamID != nil && *p.TeamID != teamID {
		return team.Team{}, fmt.Errorf("%w: player=%s already belongs to another team", ErrConflict, playerID)
	}

	if t.CaptainID != nil && *t.CaptainID != playerID {
		notCaptain := false
		if _, _, err := s.playerRepo.Update(ctx, *t.CaptainID, player.Update{IsCaptain: &notCaptain}); err != nil {
			return team.Team{}, fmt.Errorf("demote previous captain=%s: %w", *t.CaptainID, err)
		}
	}

	isCaptain := true
	if _, _, err := s.playerRepo.Update(ctx, playerID, player.Update{IsCaptain: &isCaptain, TeamID: &teamID}); err != nil {
		return team.Team{}, fmt.Errorf("promote captain=%s: %w", playerID, err)
	}

	updated, exists, err := s.teamRepo.Update(ctx, teamID, team.Update{CaptainID: &playerID})
	if err != nil {
		return team.Team{}, fmt.Errorf("set team captain: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	s.logger.InfoContext(ctx, "captain assigned", "team_id", teamID, "player_id", playerID)

	return updated, nil
}

// AdjustScore applies a manual scoreboard delta. The running score is clamped
// at zero.
func (s *TeamService) AdjustScore(ctx context.Context, teamID string, delta int) (team.Team, error) {
	t, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	newScore := t.Score + delta
	if newScore < 0 {
		newScore = 0
	}

	updated, exists, err := s.teamRepo.Update(ctx, t.ID, team.Update{Score: &newScore})
	if err != nil {
		return team.Team{}, fmt.Errorf("adjust team score: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	s.logger.InfoContext(ctx, "team score adjusted", "team_id", t.ID, "delta", delta, "score", newScore)

	return updated, nil
}

func (s *TeamService) DeleteAllTeams(ctx context.Context) error {
	if err := s.teamRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all teams: %w", err)
	}

	s.logger.InfoContext(ctx, "all teams deleted")

	return nil
}
