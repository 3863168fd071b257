package memory

import (
	"time"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
)

// Seed data for dev sessions running on the memory driver.

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-red", Name: "Red Dragons", Color: "#EF4444", Budget: 1000, CreatedAt: seedTime(0)},
		{ID: "team-blue", Name: "Blue Sharks", Color: team.DefaultColor, Budget: 1000, CreatedAt: seedTime(1)},
		{ID: "team-green", Name: "Green Goblins", Color: "#22C55E", Budget: 1000, CreatedAt: seedTime(2)},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "player-01", Name: "Arun", CreatedAt: seedTime(3)},
		{ID: "player-02", Name: "Bala", CreatedAt: seedTime(4)},
		{ID: "player-03", Name: "Chitra", CreatedAt: seedTime(5)},
		{ID: "player-04", Name: "Deepak", CreatedAt: seedTime(6)},
		{ID: "player-05", Name: "Eswari", CreatedAt: seedTime(7)},
		{ID: "player-06", Name: "Farhan", CreatedAt: seedTime(8)},
		{ID: "player-07", Name: "Gayathri", CreatedAt: seedTime(9)},
		{ID: "player-08", Name: "Hari", CreatedAt: seedTime(10)},
		{ID: "player-09", Name: "Indira", CreatedAt: seedTime(11)},
	}
}

func SeedAlbums() []album.Album {
	return []album.Album{
		{
			ID:   "album-01",
			Name: "Road Trip Mix",
			Songs: []album.Song{
				{ID: "song-01", Title: "Midnight Drive", Streams: 920000},
				{ID: "song-02", Title: "Coastal Line", Streams: 640000},
				{ID: "song-03", Title: "Second Gear", Streams: 810000},
				{ID: "song-04", Title: "Last Exit", Streams: 330000},
				{ID: "song-05", Title: "Neon Rain", Streams: 540000},
			},
			CreatedAt: seedTime(12),
		},
		{
			ID:   "album-02",
			Name: "Campfire Classics",
			Songs: []album.Song{
				{ID: "song-06", Title: "Ember Song", Streams: 450000},
				{ID: "song-07", Title: "Northern Sky", Streams: 780000},
				{ID: "song-08", Title: "Paper Boats", Streams: 450000},
				{ID: "song-09", Title: "Old Maps", Streams: 210000},
			},
			CreatedAt: seedTime(13),
		},
	}
}

func seedTime(offset int) time.Time {
	return time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC).Add(time.Duration(offset) * time.Minute)
}
