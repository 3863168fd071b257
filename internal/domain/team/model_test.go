package team

import "testing"

func TestApplyAppendsBeerPongPlayerID(t *testing.T) {
	tm := Team{ID: "t1", Name: "reds", BeerPongPlayedPlayerIDs: []string{"p1"}}

	playerID := "p2"
	tm.Apply(Update{AddBeerPongPlayerID: &playerID})

	if len(tm.BeerPongPlayedPlayerIDs) != 2 {
		t.Fatalf("played ids length = %d, want 2", len(tm.BeerPongPlayedPlayerIDs))
	}
	if tm.BeerPongPlayedPlayerIDs[0] != "p1" || tm.BeerPongPlayedPlayerIDs[1] != "p2" {
		t.Fatalf("append replaced existing ids: %+v", tm.BeerPongPlayedPlayerIDs)
	}
}

func TestApplyPartialMerge(t *testing.T) {
	captainID := "p9"
	tm := Team{ID: "t1", Name: "reds", Color: DefaultColor, CaptainID: &captainID, Budget: 1000, Score: 40}

	score := 55
	tm.Apply(Update{Score: &score})

	if tm.Score != 55 {
		t.Fatalf("score = %d, want 55", tm.Score)
	}
	if tm.Budget != 1000 || tm.CaptainID == nil || *tm.CaptainID != "p9" {
		t.Fatalf("untouched fields changed: %+v", tm)
	}
}

func TestApplyClearCaptain(t *testing.T) {
	captainID := "p9"
	tm := Team{ID: "t1", Name: "reds", CaptainID: &captainID}

	tm.Apply(Update{ClearCaptainID: true})

	if tm.CaptainID != nil {
		t.Fatalf("captain id should be cleared, got %v", tm.CaptainID)
	}
}

func TestHasPlayedBeerPong(t *testing.T) {
	tm := Team{ID: "t1", Name: "reds", BeerPongPlayedPlayerIDs: []string{"p1", "p2"}}

	if !tm.HasPlayedBeerPong("p1") {
		t.Fatalf("p1 should be marked as played")
	}
	if tm.HasPlayedBeerPong("p3") {
		t.Fatalf("p3 should not be marked as played")
	}
}
