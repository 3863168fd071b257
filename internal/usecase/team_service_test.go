package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/memory"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

const testDefaultBudget = 1000

func newTeamService(teams []team.Team, players []player.Player) (*TeamService, *memory.TeamRepository, *memory.PlayerRepository) {
	teamRepo := memory.NewTeamRepository(teams)
	playerRepo := memory.NewPlayerRepository(players)
	svc := NewTeamService(teamRepo, playerRepo, &seqIDGen{}, testDefaultBudget, logging.NewNop())

	return svc, teamRepo, playerRepo
}

func TestTeamService_CreateTeamDefaults(t *testing.T) {
	svc, _, _ := newTeamService(nil, nil)

	created, err := svc.CreateTeam(context.Background(), CreateTeamInput{Name: "Reds"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Color != team.DefaultColor {
		t.Fatalf("color = %q, want default %q", created.Color, team.DefaultColor)
	}
	if created.Budget != testDefaultBudget {
		t.Fatalf("budget = %d, want %d", created.Budget, testDefaultBudget)
	}
	if created.Score != 0 {
		t.Fatalf("score = %d, want 0", created.Score)
	}
}

func TestTeamService_CreateTeamRejectsEmptyName(t *testing.T) {
	svc, _, _ := newTeamService(nil, nil)

	_, err := svc.CreateTeam(context.Background(), CreateTeamInput{Name: " "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_AssignCaptain(t *testing.T) {
	svc, teamRepo, playerRepo := newTeamService(
		[]team.Team{{ID: "t1", Name: "Reds", Budget: testDefaultBudget}},
		[]player.Player{{ID: "p1", Name: "Arun"}},
	)

	updated, err := svc.AssignCaptain(context.Background(), "t1", "p1")
	if err != nil {
		t.Fatalf("assign captain: %v", err)
	}
	if updated.CaptainID == nil || *updated.CaptainID != "p1" {
		t.Fatalf("team captain = %v, want p1", updated.CaptainID)
	}

	p, _, err := playerRepo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if !p.IsCaptain {
		t.Fatalf("player should be flagged captain")
	}
	if p.TeamID == nil || *p.TeamID != "t1" {
		t.Fatalf("captain team id = %v, want t1", p.TeamID)
	}
	if p.SoldPrice != nil {
		t.Fatalf("captain should carry no sold price, got %v", *p.SoldPrice)
	}

	_ = teamRepo
}

func TestTeamService_AssignCaptainDemotesPrevious(t *testing.T) {
	previousID := "p1"
	svc, _, playerRepo := newTeamService(
		[]team.Team{{ID: "t1", Name: "Reds", CaptainID: &previousID}},
		[]player.Player{
			{ID: "p1", Name: "Arun", IsCaptain: true},
			{ID: "p2", Name: "Bala"},
		},
	)

	if _, err := svc.AssignCaptain(context.Background(), "t1", "p2"); err != nil {
		t.Fatalf("assign captain: %v", err)
	}

	previous, _, err := playerRepo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get previous captain: %v", err)
	}
	if previous.IsCaptain {
		t.Fatalf("previous captain should be demoted")
	}
}

func TestTeamService_AssignCaptainRejectsOtherTeamsPlayer(t *testing.T) {
	otherTeam := "t2"
	svc, _, _ := newTeamService(
		[]team.Team{{ID: "t1", Name: "Reds"}, {ID: "t2", Name: "Blues"}},
		[]player.Player{{ID: "p1", Name: "Arun", TeamID: &otherTeam}},
	)

	_, err := svc.AssignCaptain(context.Background(), "t1", "p1")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_AdjustScoreClampsAtZero(t *testing.T) {
	svc, _, _ := newTeamService([]team.Team{{ID: "t1", Name: "Reds", Score: 10}}, nil)

	updated, err := svc.AdjustScore(context.Background(), "t1", -25)
	if err != nil {
		t.Fatalf("adjust score: %v", err)
	}
	if updated.Score != 0 {
		t.Fatalf("score = %d, want clamped 0", updated.Score)
	}

	updated, err = svc.AdjustScore(context.Background(), "t1", 15)
	if err != nil {
		t.Fatalf("adjust score: %v", err)
	}
	if updated.Score != 15 {
		t.Fatalf("score = %d, want 15", updated.Score)
	}
}

func TestTeamService_DeleteTeamUnassignsPlayers(t *testing.T) {
	teamID := "t1"
	price := 300
	svc, _, playerRepo := newTeamService(
		[]team.Team{{ID: "t1", Name: "Reds"}},
		[]player.Player{
			{ID: "p1", Name: "Arun", TeamID: &teamID, SoldPrice: &price},
			{ID: "p2", Name: "Bala", TeamID: &teamID, IsCaptain: true},
			{ID: "p3", Name: "Chitra"},
		},
	)

	if err := svc.DeleteTeam(context.Background(), "t1"); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	players, err := playerRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, p := range players {
		if p.TeamID != nil {
			t.Fatalf("player %s should be unassigned", p.ID)
		}
		if p.SoldPrice != nil {
			t.Fatalf("player %s should have no sold price", p.ID)
		}
		if p.IsCaptain {
			t.Fatalf("player %s should no longer be captain", p.ID)
		}
	}
}

func TestTeamService_DeleteMissingTeam(t *testing.T) {
	svc, _, _ := newTeamService(nil, nil)

	err := svc.DeleteTeam(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
