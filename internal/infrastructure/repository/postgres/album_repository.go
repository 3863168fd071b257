package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	qb "github.com/ThangaBalajiS/party-games/internal/platform/querybuilder"
)

// AlbumRepository stores albums and their songs in two tables. Songs keep
// their insert order via the serial key, which is what makes stream-count
// ties resolve deterministically.
type AlbumRepository struct {
	db *sqlx.DB
}

var albumSelectColumns = []string{
	"id",
	"name",
	"cover_art",
	"played",
	"created_at",
}

var albumSongSelectColumns = []string{
	"id",
	"album_id",
	"song_id",
	"title",
	"streams",
}

func NewAlbumRepository(db *sqlx.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) List(ctx context.Context) ([]album.Album, error) {
	query, args, err := qb.Select(albumSelectColumns...).From("albums").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select albums query: %w", err)
	}

	var rows []albumTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}

	songQuery, songArgs, err := qb.Select(albumSongSelectColumns...).From("album_songs").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select album songs query: %w", err)
	}

	var songRows []albumSongTableModel
	if err := r.db.SelectContext(ctx, &songRows, songQuery, songArgs...); err != nil {
		return nil, fmt.Errorf("select album songs: %w", err)
	}

	songsByAlbum := make(map[string][]albumSongTableModel, len(rows))
	for _, song := range songRows {
		songsByAlbum[song.AlbumID] = append(songsByAlbum[song.AlbumID], song)
	}

	out := make([]album.Album, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(songsByAlbum[row.ID]))
	}

	return out, nil
}

func (r *AlbumRepository) GetByID(ctx context.Context, id string) (album.Album, bool, error) {
	query, args, err := qb.Select(albumSelectColumns...).From("albums").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return album.Album{}, false, fmt.Errorf("build select album query: %w", err)
	}

	var row albumTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return album.Album{}, false, nil
		}
		return album.Album{}, false, fmt.Errorf("select album: %w", err)
	}

	songs, err := r.listSongs(ctx, r.db, id)
	if err != nil {
		return album.Album{}, false, err
	}

	return row.toDomain(songs), true, nil
}

func (r *AlbumRepository) Create(ctx context.Context, a album.Album) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for album create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertInto("albums").
		Columns("id", "name", "cover_art", "played", "created_at").
		Values(a.ID, a.Name, a.CoverArt, a.Played, a.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert album query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert album: %w", err)
	}

	if err := insertSongs(ctx, tx, a.ID, a.Songs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit album create tx: %w", err)
	}

	return nil
}

func (r *AlbumRepository) Update(ctx context.Context, id string, update album.Update) (album.Album, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return album.Album{}, false, fmt.Errorf("begin tx for album update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	builder := qb.Update("albums")
	assigned := false
	if update.Name != nil {
		builder.Set("name", *update.Name)
		assigned = true
	}
	if update.ClearCoverArt {
		builder.Set("cover_art", nil)
		assigned = true
	} else if update.CoverArt != nil {
		builder.Set("cover_art", *update.CoverArt)
		assigned = true
	}
	if update.Played != nil {
		builder.Set("played", *update.Played)
		assigned = true
	}

	var row albumTableModel
	if assigned {
		query, args, err := builder.
			Where(qb.Eq("id", id)).
			Suffix("RETURNING id, name, cover_art, played, created_at").
			ToSQL()
		if err != nil {
			return album.Album{}, false, fmt.Errorf("build update album query: %w", err)
		}
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			if isNotFound(err) {
				return album.Album{}, false, nil
			}
			return album.Album{}, false, fmt.Errorf("update album: %w", err)
		}
	} else {
		query, args, err := qb.Select(albumSelectColumns...).From("albums").
			Where(qb.Eq("id", id)).
			ToSQL()
		if err != nil {
			return album.Album{}, false, fmt.Errorf("build select album query: %w", err)
		}
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			if isNotFound(err) {
				return album.Album{}, false, nil
			}
			return album.Album{}, false, fmt.Errorf("select album for update: %w", err)
		}
	}

	if update.Songs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM album_songs WHERE album_id = $1`, id); err != nil {
			return album.Album{}, false, fmt.Errorf("delete album songs: %w", err)
		}
		if err := insertSongs(ctx, tx, id, *update.Songs); err != nil {
			return album.Album{}, false, err
		}
	}

	songs, err := r.listSongs(ctx, tx, id)
	if err != nil {
		return album.Album{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return album.Album{}, false, fmt.Errorf("commit album update tx: %w", err)
	}

	return row.toDomain(songs), true, nil
}

func (r *AlbumRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete album: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete album rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *AlbumRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM albums`); err != nil {
		return fmt.Errorf("delete all albums: %w", err)
	}

	return nil
}

func (r *AlbumRepository) listSongs(ctx context.Context, q sqlx.QueryerContext, albumID string) ([]albumSongTableModel, error) {
	query, args, err := qb.Select(albumSongSelectColumns...).From("album_songs").
		Where(qb.Eq("album_id", albumID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select album songs query: %w", err)
	}

	var rows []albumSongTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select album songs: %w", err)
	}

	return rows, nil
}

func insertSongs(ctx context.Context, tx *sqlx.Tx, albumID string, songs []album.Song) error {
	if len(songs) == 0 {
		return nil
	}

	builder := qb.InsertInto("album_songs").
		Columns("album_id", "song_id", "title", "streams")
	for _, song := range songs {
		builder.Values(albumID, song.ID, song.Title, song.Streams)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert album songs query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert album songs: %w", err)
	}

	return nil
}
