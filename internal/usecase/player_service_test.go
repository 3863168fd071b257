package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/memory"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	svc := NewPlayerService(playerRepo, teamRepo, &seqIDGen{}, logging.NewNop())

	created, err := svc.CreatePlayer(context.Background(), CreatePlayerInput{Name: "  Arun  "})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Name != "Arun" {
		t.Fatalf("name = %q, want trimmed Arun", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected server-set created at")
	}
	if !created.Unsold() {
		t.Fatalf("new player should be in the unsold pool")
	}
}

func TestPlayerService_CreatePlayerRejectsEmptyName(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewTeamRepository(nil), &seqIDGen{}, logging.NewNop())

	_, err := svc.CreatePlayer(context.Background(), CreatePlayerInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_UpdatePlayerPartialMerge(t *testing.T) {
	teamID := "t1"
	price := 200
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "p1", Name: "Arun", TeamID: &teamID, SoldPrice: &price},
	})
	svc := NewPlayerService(playerRepo, memory.NewTeamRepository(nil), &seqIDGen{}, logging.NewNop())

	name := "Arjun"
	updated, err := svc.UpdatePlayer(context.Background(), "p1", player.Update{Name: &name})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if updated.Name != "Arjun" {
		t.Fatalf("name = %q, want Arjun", updated.Name)
	}
	if updated.TeamID == nil || *updated.TeamID != "t1" || updated.SoldPrice == nil || *updated.SoldPrice != 200 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestPlayerService_UpdateMissingPlayer(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewTeamRepository(nil), &seqIDGen{}, logging.NewNop())

	name := "x"
	_, err := svc.UpdatePlayer(context.Background(), "nope", player.Update{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_DeletePlayerClearsCaptaincy(t *testing.T) {
	captainID := "p1"
	playerRepo := memory.NewPlayerRepository([]player.Player{{ID: "p1", Name: "Arun", IsCaptain: true}})
	teamRepo := memory.NewTeamRepository([]team.Team{{ID: "t1", Name: "Reds", CaptainID: &captainID}})
	svc := NewPlayerService(playerRepo, teamRepo, &seqIDGen{}, logging.NewNop())

	if err := svc.DeletePlayer(context.Background(), "p1"); err != nil {
		t.Fatalf("delete player: %v", err)
	}

	updated, exists, err := teamRepo.GetByID(context.Background(), "t1")
	if err != nil || !exists {
		t.Fatalf("get team: exists=%v err=%v", exists, err)
	}
	if updated.CaptainID != nil {
		t.Fatalf("team captain should be cleared, got %v", *updated.CaptainID)
	}
}

func TestPlayerService_DeleteMissingPlayer(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewTeamRepository(nil), &seqIDGen{}, logging.NewNop())

	err := svc.DeletePlayer(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
