package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/memory"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
)

func TestAlbumService_CreateAlbumAssignsSongIDs(t *testing.T) {
	svc := NewAlbumService(memory.NewAlbumRepository(nil), &seqIDGen{}, logging.NewNop())

	created, err := svc.CreateAlbum(context.Background(), CreateAlbumInput{
		Name: "  Thriller  ",
		Songs: []album.Song{
			{Title: " Beat It ", Streams: 900},
			{ID: "keep-me", Title: "Billie Jean", Streams: 1200},
		},
	})
	if err != nil {
		t.Fatalf("create album: %v", err)
	}
	if created.Name != "Thriller" {
		t.Fatalf("name = %q, want trimmed Thriller", created.Name)
	}
	if created.Songs[0].ID == "" {
		t.Fatalf("expected generated song id")
	}
	if created.Songs[0].Title != "Beat It" {
		t.Fatalf("song title = %q, want trimmed Beat It", created.Songs[0].Title)
	}
	if created.Songs[1].ID != "keep-me" {
		t.Fatalf("explicit song id should be kept, got %q", created.Songs[1].ID)
	}
	if created.Played {
		t.Fatalf("new album should not be marked played")
	}
}

func TestAlbumService_CreateAlbumRejectsEmptyName(t *testing.T) {
	svc := NewAlbumService(memory.NewAlbumRepository(nil), &seqIDGen{}, logging.NewNop())

	_, err := svc.CreateAlbum(context.Background(), CreateAlbumInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAlbumService_ListUnplayedAlbums(t *testing.T) {
	repo := memory.NewAlbumRepository([]album.Album{
		{ID: "a1", Name: "First", Played: true},
		{ID: "a2", Name: "Second"},
	})
	svc := NewAlbumService(repo, &seqIDGen{}, logging.NewNop())

	unplayed, err := svc.ListUnplayedAlbums(context.Background())
	if err != nil {
		t.Fatalf("list unplayed albums: %v", err)
	}
	if len(unplayed) != 1 || unplayed[0].ID != "a2" {
		t.Fatalf("unexpected unplayed albums: %+v", unplayed)
	}
}

func TestAlbumService_UpdateAlbumReplacesSongs(t *testing.T) {
	repo := memory.NewAlbumRepository([]album.Album{
		{ID: "a1", Name: "First", Songs: []album.Song{{ID: "s1", Title: "Old", Streams: 10}}},
	})
	svc := NewAlbumService(repo, &seqIDGen{}, logging.NewNop())

	songs := []album.Song{{Title: "New Song", Streams: 50}}
	updated, err := svc.UpdateAlbum(context.Background(), "a1", album.Update{Songs: &songs})
	if err != nil {
		t.Fatalf("update album: %v", err)
	}
	if len(updated.Songs) != 1 || updated.Songs[0].Title != "New Song" {
		t.Fatalf("unexpected songs after replace: %+v", updated.Songs)
	}
	if updated.Songs[0].ID == "" {
		t.Fatalf("expected generated id for replacement song")
	}
}

func TestAlbumService_UpdateAlbumNotFound(t *testing.T) {
	svc := NewAlbumService(memory.NewAlbumRepository(nil), &seqIDGen{}, logging.NewNop())

	name := "Renamed"
	_, err := svc.UpdateAlbum(context.Background(), "missing", album.Update{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAlbumService_DeleteAlbum(t *testing.T) {
	repo := memory.NewAlbumRepository([]album.Album{{ID: "a1", Name: "First"}})
	svc := NewAlbumService(repo, &seqIDGen{}, logging.NewNop())

	if err := svc.DeleteAlbum(context.Background(), "a1"); err != nil {
		t.Fatalf("delete album: %v", err)
	}
	if err := svc.DeleteAlbum(context.Background(), "a1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
