package memory

import (
	"context"
	"sync"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
)

// PlayerRepository keeps players in creation order behind a RWMutex.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	out := make([]player.Player, len(players))
	copy(out, players)

	return &PlayerRepository{players: out}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players {
		if item.ID == id {
			return item, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = append(r.players, p)

	return nil
}

func (r *PlayerRepository) Update(_ context.Context, id string, update player.Update) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.players {
		if r.players[idx].ID != id {
			continue
		}
		r.players[idx].Apply(update)
		return r.players[idx], true, nil
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.players {
		if r.players[idx].ID != id {
			continue
		}
		r.players = append(r.players[:idx], r.players[idx+1:]...)
		return true, nil
	}

	return false, nil
}

func (r *PlayerRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = nil

	return nil
}
