package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	idgen "github.com/ThangaBalajiS/party-games/internal/platform/id"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

// CreateAlbumInput is the incoming payload for album creation.
type CreateAlbumInput struct {
	Name     string
	CoverArt *string
	Songs    []album.Song
}

type AlbumService struct {
	albumRepo album.Repository
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewAlbumService(albumRepo album.Repository, idGen idgen.Generator, logger *logging.Logger) *AlbumService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AlbumService{
		albumRepo: albumRepo,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AlbumService) ListAlbums(ctx context.Context) ([]album.Album, error) {
	albums, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	return albums, nil
}

// ListUnplayedAlbums returns the albums still available for a popular-song
// round.
func (s *AlbumService) ListUnplayedAlbums(ctx context.Context) ([]album.Album, error) {
	albums, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	out := make([]album.Album, 0, len(albums))
	for _, a := range albums {
		if !a.Played {
			out = append(out, a)
		}
	}

	return out, nil
}

func (s *AlbumService) GetAlbum(ctx context.Context, albumID string) (album.Album, error) {
	albumID = strings.TrimSpace(albumID)
	if albumID == "" {
		return album.Album{}, fmt.Errorf("%w: album id is required", ErrInvalidInput)
	}

	a, exists, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return album.Album{}, fmt.Errorf("get album: %w", err)
	}
	if !exists {
		return album.Album{}, fmt.Errorf("%w: album=%s", ErrNotFound, albumID)
	}

	return a, nil
}

func (s *AlbumService) CreateAlbum(ctx context.Context, input CreateAlbumInput) (album.Album, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return album.Album{}, fmt.Errorf("%w: album name is required", ErrInvalidInput)
	}

	albumID, err := s.idGen.NewID()
	if err != nil {
		return album.Album{}, fmt.Errorf("generate album id: %w", err)
	}
	songs, err := s.assignSongIDs(input.Songs)
	if err != nil {
		return album.Album{}, err
	}

	a := album.Album{
		ID:        albumID,
		Name:      input.Name,
		CoverArt:  input.CoverArt,
		Songs:     songs,
		CreatedAt: s.now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return album.Album{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.albumRepo.Create(ctx, a); err != nil {
		return album.Album{}, fmt.Errorf("create album: %w", err)
	}

	s.logger.InfoContext(ctx, "album created", "album_id", a.ID, "name", a.Name, "song_count", len(a.Songs))

	return a, nil
}

func (s *AlbumService) UpdateAlbum(ctx context.Context, albumID string, update album.Update) (album.Album, error) {
	albumID = strings.TrimSpace(albumID)
	if albumID == "" {
		return album.Album{}, fmt.Errorf("%w: album id is required", ErrInvalidInput)
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return album.Album{}, fmt.Errorf("%w: album name cannot be empty", ErrInvalidInput)
		}
		update.Name = &name
	}
	if update.Songs != nil {
		songs, err := s.assignSongIDs(*update.Songs)
		if err != nil {
			return album.Album{}, err
		}
		update.Songs = &songs
	}

	a, exists, err := s.albumRepo.Update(ctx, albumID, update)
	if err != nil {
		return album.Album{}, fmt.Errorf("update album: %w", err)
	}
	if !exists {
		return album.Album{}, fmt.Errorf("%w: album=%s", ErrNotFound, albumID)
	}

	return a, nil
}

func (s *AlbumService) DeleteAlbum(ctx context.Context, albumID string) error {
	albumID = strings.TrimSpace(albumID)
	if albumID == "" {
		return fmt.Errorf("%w: album id is required", ErrInvalidInput)
	}

	deleted, err := s.albumRepo.Delete(ctx, albumID)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: album=%s", ErrNotFound, albumID)
	}

	s.logger.InfoContext(ctx, "album deleted", "album_id", albumID)

	return nil
}

func (s *AlbumService) DeleteAllAlbums(ctx context.Context) error {
	if err := s.albumRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all albums: %w", err)
	}

	s.logger.InfoContext(ctx, "all albums deleted")

	return nil
}

func (s *AlbumService) assignSongIDs(songs []album.Song) ([]album.Song, error) {
	out := make([]album.Song, len(songs))
	copy(out, songs)
	for i := range out {
		out[i].Title = strings.TrimSpace(out[i].Title)
		if out[i].ID != "" {
			continue
		}
		songID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate song id: %w", err)
		}
		out[i].ID = songID
	}

	return out, nil
}
