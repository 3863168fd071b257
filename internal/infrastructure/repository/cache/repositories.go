package cache

import (
	"context"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	basecache "github.com/ThangaBalajiS/party-games/internal/platform/cache"
)

const (
	playerListKey   = "players:list"
	playerIDPrefix  = "players:id:"
	teamListKey     = "teams:list"
	teamIDPrefix    = "teams:id:"
	albumListKey    = "albums:list"
	albumIDPrefix   = "albums:id:"
	auctionStateKey = "auction:settings"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerIDPrefix+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx, p.ID)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, id string, update player.Update) (player.Player, bool, error) {
	item, exists, err := r.next.Update(ctx, id, update)
	if err != nil {
		return player.Player{}, false, err
	}
	r.invalidate(ctx, id)
	return item, exists, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx, id)
	return deleted, nil
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "players:")
	return nil
}

func (r *PlayerRepository) invalidate(ctx context.Context, id string) {
	r.cache.Delete(ctx, playerListKey)
	r.cache.Delete(ctx, playerIDPrefix+id)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]team.Team, 0, len(items))
		for _, item := range items {
			out = append(out, cloneTeam(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, cloneTeam(item))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamIDPrefix+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: cloneTeam(item), exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cloneTeam(cached.value), cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	if err := r.next.Create(ctx, t); err != nil {
		return err
	}
	r.invalidate(ctx, t.ID)
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, update team.Update) (team.Team, bool, error) {
	item, exists, err := r.next.Update(ctx, id, update)
	if err != nil {
		return team.Team{}, false, err
	}
	r.invalidate(ctx, id)
	return item, exists, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx, id)
	return deleted, nil
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "teams:")
	return nil
}

func (r *TeamRepository) invalidate(ctx context.Context, id string) {
	r.cache.Delete(ctx, teamListKey)
	r.cache.Delete(ctx, teamIDPrefix+id)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func cloneTeam(item team.Team) team.Team {
	out := item
	out.BeerPongPlayedPlayerIDs = append([]string(nil), item.BeerPongPlayedPlayerIDs...)
	return out
}

type AlbumRepository struct {
	next  album.Repository
	cache *basecache.Store
}

func NewAlbumRepository(next album.Repository, cache *basecache.Store) *AlbumRepository {
	return &AlbumRepository{next: next, cache: cache}
}

func (r *AlbumRepository) List(ctx context.Context) ([]album.Album, error) {
	v, err := r.cache.GetOrLoad(ctx, albumListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]album.Album, 0, len(items))
		for _, item := range items {
			out = append(out, cloneAlbum(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]album.Album)
	out := make([]album.Album, 0, len(items))
	for _, item := range items {
		out = append(out, cloneAlbum(item))
	}
	return out, nil
}

func (r *AlbumRepository) GetByID(ctx context.Context, id string) (album.Album, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, albumIDPrefix+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedAlbumByID{value: cloneAlbum(item), exists: exists}, nil
	})
	if err != nil {
		return album.Album{}, false, err
	}

	cached, _ := v.(cachedAlbumByID)
	return cloneAlbum(cached.value), cached.exists, nil
}

func (r *AlbumRepository) Create(ctx context.Context, a album.Album) error {
	if err := r.next.Create(ctx, a); err != nil {
		return err
	}
	r.invalidate(ctx, a.ID)
	return nil
}

func (r *AlbumRepository) Update(ctx context.Context, id string, update album.Update) (album.Album, bool, error) {
	item, exists, err := r.next.Update(ctx, id, update)
	if err != nil {
		return album.Album{}, false, err
	}
	r.invalidate(ctx, id)
	return item, exists, nil
}

func (r *AlbumRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx, id)
	return deleted, nil
}

func (r *AlbumRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "albums:")
	return nil
}

func (r *AlbumRepository) invalidate(ctx context.Context, id string) {
	r.cache.Delete(ctx, albumListKey)
	r.cache.Delete(ctx, albumIDPrefix+id)
}

type cachedAlbumByID struct {
	value  album.Album
	exists bool
}

func cloneAlbum(item album.Album) album.Album {
	out := item
	out.Songs = append([]album.Song(nil), item.Songs...)
	return out
}

type SettingsRepository struct {
	next  auction.Repository
	cache *basecache.Store
}

func NewSettingsRepository(next auction.Repository, cache *basecache.Store) *SettingsRepository {
	return &SettingsRepository{next: next, cache: cache}
}

func (r *SettingsRepository) Get(ctx context.Context) (auction.Settings, error) {
	v, err := r.cache.GetOrLoad(ctx, auctionStateKey, func(ctx context.Context) (any, error) {
		return r.next.Get(ctx)
	})
	if err != nil {
		return auction.Settings{}, err
	}

	item, _ := v.(auction.Settings)
	return item, nil
}

func (r *SettingsRepository) Update(ctx context.Context, update auction.Update) (auction.Settings, error) {
	settings, err := r.next.Update(ctx, update)
	if err != nil {
		return auction.Settings{}, err
	}
	r.cache.Delete(ctx, auctionStateKey)
	return settings, nil
}

func (r *SettingsRepository) Reset(ctx context.Context) (auction.Settings, error) {
	settings, err := r.next.Reset(ctx)
	if err != nil {
		return auction.Settings{}, err
	}
	r.cache.Delete(ctx, auctionStateKey)
	return settings, nil
}
