package postgres

import (
	"time"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
)

type albumTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CoverArt  *string   `db:"cover_art"`
	Played    bool      `db:"played"`
	CreatedAt time.Time `db:"created_at"`
}

type albumSongTableModel struct {
	ID      int64  `db:"id"`
	AlbumID string `db:"album_id"`
	SongID  string `db:"song_id"`
	Title   string `db:"title"`
	Streams int    `db:"streams"`
}

func (m albumTableModel) toDomain(songs []albumSongTableModel) album.Album {
	out := album.Album{
		ID:        m.ID,
		Name:      m.Name,
		CoverArt:  m.CoverArt,
		Played:    m.Played,
		CreatedAt: m.CreatedAt,
	}
	out.Songs = make([]album.Song, 0, len(songs))
	for _, song := range songs {
		out.Songs = append(out.Songs, album.Song{
			ID:      song.SongID,
			Title:   song.Title,
			Streams: song.Streams,
		})
	}

	return out
}
