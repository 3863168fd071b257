package album

import (
	"fmt"
	"sort"
	"time"
)

// Song is one track in an album, ranked by stream count during the
// popular-song game.
type Song struct {
	ID      string
	Title   string
	Streams int
}

// Album is a song-ranking game asset. Played flips once a round using this
// album has been scored.
type Album struct {
	ID        string
	Name      string
	CoverArt  *string
	Songs     []Song
	Played    bool
	CreatedAt time.Time
}

func (a Album) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("album id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("album name is required")
	}
	for i, song := range a.Songs {
		if song.Title == "" {
			return fmt.Errorf("song %d title is required", i)
		}
		if song.Streams < 0 {
			return fmt.Errorf("song %d streams cannot be negative", i)
		}
	}

	return nil
}

// Playable reports whether the album has enough songs for a ranking round.
func (a Album) Playable() bool {
	return len(a.Songs) >= 3
}

// SortedSongs returns the songs ordered by streams descending. The sort is
// stable so ties keep their input order.
func (a Album) SortedSongs() []Song {
	out := make([]Song, len(a.Songs))
	copy(out, a.Songs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Streams > out[j].Streams
	})
	return out
}

// TopThree returns the three most-streamed songs, or nil when the album is
// not playable.
func (a Album) TopThree() []Song {
	if !a.Playable() {
		return nil
	}
	return a.SortedSongs()[:3]
}

// Update carries a partial modification. A non-nil Songs replaces the whole
// song list.
type Update struct {
	Name          *string
	CoverArt      *string
	ClearCoverArt bool
	Songs         *[]Song
	Played        *bool
}

// Apply merges the update into the album, field by field.
func (a *Album) Apply(update Update) {
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.ClearCoverArt {
		a.CoverArt = nil
	} else if update.CoverArt != nil {
		coverArt := *update.CoverArt
		a.CoverArt = &coverArt
	}
	if update.Songs != nil {
		songs := make([]Song, len(*update.Songs))
		copy(songs, *update.Songs)
		a.Songs = songs
	}
	if update.Played != nil {
		a.Played = *update.Played
	}
}
