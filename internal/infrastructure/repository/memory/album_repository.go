package memory

import (
	"context"
	"sync"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
)

// AlbumRepository keeps albums in creation order behind a RWMutex.
type AlbumRepository struct {
	mu     sync.RWMutex
	albums []album.Album
}

func NewAlbumRepository(albums []album.Album) *AlbumRepository {
	out := make([]album.Album, len(albums))
	copy(out, albums)

	return &AlbumRepository{albums: out}
}

func (r *AlbumRepository) List(_ context.Context) ([]album.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]album.Album, 0, len(r.albums))
	for _, item := range r.albums {
		out = append(out, cloneAlbum(item))
	}

	return out, nil
}

func (r *AlbumRepository) GetByID(_ context.Context, id string) (album.Album, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.albums {
		if item.ID == id {
			return cloneAlbum(item), true, nil
		}
	}

	return album.Album{}, false, nil
}

func (r *AlbumRepository) Create(_ context.Context, a album.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.albums = append(r.albums, cloneAlbum(a))

	return nil
}

func (r *AlbumRepository) Update(_ context.Context, id string, update album.Update) (album.Album, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.albums {
		if r.albums[idx].ID != id {
			continue
		}
		r.albums[idx].Apply(update)
		return cloneAlbum(r.albums[idx]), true, nil
	}

	return album.Album{}, false, nil
}

func (r *AlbumRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.albums {
		if r.albums[idx].ID != id {
			continue
		}
		r.albums = append(r.albums[:idx], r.albums[idx+1:]...)
		return true, nil
	}

	return false, nil
}

func (r *AlbumRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.albums = nil

	return nil
}

func cloneAlbum(a album.Album) album.Album {
	out := a
	if a.Songs != nil {
		out.Songs = make([]album.Song, len(a.Songs))
		copy(out.Songs, a.Songs)
	}

	return out
}
