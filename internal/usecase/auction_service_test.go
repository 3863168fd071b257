package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/memory"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

func newAuctionService(players []player.Player, teams []team.Team) (*AuctionService, *memory.PlayerRepository, *memory.TeamRepository, *memory.SettingsRepository) {
	playerRepo := memory.NewPlayerRepository(players)
	teamRepo := memory.NewTeamRepository(teams)
	settingsRepo := memory.NewSettingsRepository(auction.Defaults(100, 10))
	svc := NewAuctionService(settingsRepo, playerRepo, teamRepo, testDefaultBudget, 4, logging.NewNop())

	return svc, playerRepo, teamRepo, settingsRepo
}

func TestAuctionService_SellPlayerDebitsExactPrice(t *testing.T) {
	svc, playerRepo, teamRepo, _ := newAuctionService(
		[]player.Player{{ID: "p1", Name: "Arun"}},
		[]team.Team{{ID: "t1", Name: "Reds", Budget: 1000}},
	)

	sold, err := svc.SellPlayer(context.Background(), SellPlayerInput{PlayerID: "p1", TeamID: "t1", Price: 300})
	if err != nil {
		t.Fatalf("sell player: %v", err)
	}
	if sold.TeamID == nil || *sold.TeamID != "t1" {
		t.Fatalf("player team id = %v, want t1", sold.TeamID)
	}
	if sold.SoldPrice == nil || *sold.SoldPrice != 300 {
		t.Fatalf("sold price = %v, want 300", sold.SoldPrice)
	}

	updated, _, err := teamRepo.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if updated.Budget != 700 {
		t.Fatalf("budget = %d, want 700", updated.Budget)
	}

	_ = playerRepo
}

func TestAuctionService_SellPlayerAllowsOverdraw(t *testing.T) {
	svc, _, teamRepo, _ := newAuctionService(
		[]player.Player{{ID: "p1", Name: "Arun"}},
		[]team.Team{{ID: "t1", Name: "Reds", Budget: 100}},
	)

	if _, err := svc.SellPlayer(context.Background(), SellPlayerInput{PlayerID: "p1", TeamID: "t1", Price: 250}); err != nil {
		t.Fatalf("sell player: %v", err)
	}

	updated, _, err := teamRepo.GetByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if updated.Budget != -150 {
		t.Fatalf("budget = %d, want -150 (no floor)", updated.Budget)
	}
}

func TestAuctionService_SellPlayerRejectsSoldAndCaptain(t *testing.T) {
	teamID := "t1"
	svc, _, _, _ := newAuctionService(
		[]player.Player{
			{ID: "p1", Name: "Arun", TeamID: &teamID},
			{ID: "p2", Name: "Bala", IsCaptain: true},
		},
		[]team.Team{{ID: "t1", Name: "Reds", Budget: 1000}},
	)

	_, err := svc.SellPlayer(context.Background(), SellPlayerInput{PlayerID: "p1", TeamID: "t1", Price: 100})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for sold player, got %v", err)
	}

	_, err = svc.SellPlayer(context.Background(), SellPlayerInput{PlayerID: "p2", TeamID: "t1", Price: 100})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for captain, got %v", err)
	}
}

func TestAuctionService_SkipPlayerWrapsAround(t *testing.T) {
	svc, _, _, settingsRepo := newAuctionService(
		[]player.Player{{ID: "p1", Name: "Arun"}, {ID: "p2", Name: "Bala"}, {ID: "p3", Name: "Chitra"}},
		nil,
	)

	// Move the pointer to the last unsold player, then skip.
	index := 2
	if _, err := settingsRepo.Update(context.Background(), auction.Update{CurrentPlayerIndex: &index}); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	settings, err := svc.SkipPlayer(context.Background())
	if err != nil {
		t.Fatalf("skip player: %v", err)
	}
	if settings.CurrentPlayerIndex != 0 {
		t.Fatalf("index = %d, want wraparound to 0", settings.CurrentPlayerIndex)
	}
}

func TestAuctionService_StateFallsBackToPoolHead(t *testing.T) {
	svc, _, _, settingsRepo := newAuctionService(
		[]player.Player{{ID: "p1", Name: "Arun"}, {ID: "p2", Name: "Bala"}},
		nil,
	)

	index := 9
	if _, err := settingsRepo.Update(context.Background(), auction.Update{CurrentPlayerIndex: &index}); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	state, err := svc.State(context.Background())
	if err != nil {
		t.Fatalf("auction state: %v", err)
	}
	if state.CurrentPlayer == nil || state.CurrentPlayer.ID != "p1" {
		t.Fatalf("current player = %+v, want p1 fallback", state.CurrentPlayer)
	}
	if state.NextBid != 100 {
		t.Fatalf("opening next bid = %d, want 100", state.NextBid)
	}
	if state.Complete {
		t.Fatalf("auction with unsold players should not be complete")
	}
}

func TestAuctionService_TradeSwapsTeamIDsOnly(t *testing.T) {
	teamA, teamB := "t1", "t2"
	priceA, priceB := 300, 150
	svc, playerRepo, _, _ := newAuctionService(
		[]player.Player{
			{ID: "p1", Name: "Arun", TeamID: &teamA, SoldPrice: &priceA},
			{ID: "p2", Name: "Bala", TeamID: &teamB, SoldPrice: &priceB},
		},
		[]team.Team{{ID: "t1", Name: "Reds"}, {ID: "t2", Name: "Blues"}},
	)

	if _, err := svc.TradePlayers(context.Background(), "p1", "p2"); err != nil {
		t.Fatalf("trade players: %v", err)
	}

	first, _, _ := playerRepo.GetByID(context.Background(), "p1")
	second, _, _ := playerRepo.GetByID(context.Background(), "p2")
	if first.TeamID == nil || *first.TeamID != "t2" {
		t.Fatalf("p1 team = %v, want t2", first.TeamID)
	}
	if second.TeamID == nil || *second.TeamID != "t1" {
		t.Fatalf("p2 team = %v, want t1", second.TeamID)
	}
	if *first.SoldPrice != 300 || *second.SoldPrice != 150 {
		t.Fatalf("sold prices must stay with players: %v %v", *first.SoldPrice, *second.SoldPrice)
	}
}

func TestAuctionService_TradeRejectsCaptainAndUnsold(t *testing.T) {
	teamA := "t1"
	svc, _, _, _ := newAuctionService(
		[]player.Player{
			{ID: "p1", Name: "Arun", TeamID: &teamA, IsCaptain: true},
			{ID: "p2", Name: "Bala", TeamID: &teamA},
			{ID: "p3", Name: "Chitra"},
		},
		[]team.Team{{ID: "t1", Name: "Reds"}},
	)

	_, err := svc.TradePlayers(context.Background(), "p1", "p2")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for captain, got %v", err)
	}

	_, err = svc.TradePlayers(context.Background(), "p2", "p3")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for unsold player, got %v", err)
	}

	_, err = svc.TradePlayers(context.Background(), "p2", "p2")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for self-trade, got %v", err)
	}
}

func TestAuctionService_FinishAuction(t *testing.T) {
	svc, _, _, _ := newAuctionService([]player.Player{{ID: "p1", Name: "Arun"}}, nil)

	settings, err := svc.FinishAuction(context.Background())
	if err != nil {
		t.Fatalf("finish auction: %v", err)
	}
	if settings.Status != auction.StatusCompleted {
		t.Fatalf("status = %s, want completed", settings.Status)
	}

	state, err := svc.State(context.Background())
	if err != nil {
		t.Fatalf("auction state: %v", err)
	}
	if !state.Complete {
		t.Fatalf("finished auction should report complete despite unsold players")
	}
}

func TestAuctionService_ResetAuction(t *testing.T) {
	teamID := "t1"
	price := 400
	captainTeam := "t2"
	svc, playerRepo, teamRepo, settingsRepo := newAuctionService(
		[]player.Player{
			{ID: "p1", Name: "Arun", TeamID: &teamID, SoldPrice: &price},
			{ID: "p2", Name: "Bala", TeamID: &captainTeam, IsCaptain: true},
			{ID: "p3", Name: "Chitra"},
		},
		[]team.Team{
			{ID: "t1", Name: "Reds", Budget: 600},
			{ID: "t2", Name: "Blues", Budget: -50},
		},
	)

	status := auction.StatusInProgress
	index := 2
	if _, err := settingsRepo.Update(context.Background(), auction.Update{Status: &status, CurrentPlayerIndex: &index}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	settings, err := svc.ResetAuction(context.Background())
	if err != nil {
		t.Fatalf("reset auction: %v", err)
	}
	if settings.Status != auction.StatusPending || settings.CurrentPlayerIndex != 0 {
		t.Fatalf("settings not restored to defaults: %+v", settings)
	}

	players, _ := playerRepo.List(context.Background())
	for _, p := range players {
		if p.IsCaptain {
			if p.TeamID == nil {
				t.Fatalf("captain %s should keep their team", p.ID)
			}
			continue
		}
		if p.TeamID != nil || p.SoldPrice != nil {
			t.Fatalf("player %s should be back in the unsold pool: %+v", p.ID, p)
		}
	}

	teams, _ := teamRepo.List(context.Background())
	for _, tm := range teams {
		if tm.Budget != testDefaultBudget {
			t.Fatalf("team %s budget = %d, want %d", tm.ID, tm.Budget, testDefaultBudget)
		}
	}
}
