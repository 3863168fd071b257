package memory

import (
	"context"
	"sync"

	"github.com/ThangaBalajiS/party-games/internal/domain/team"
)

// TeamRepository keeps teams in creation order behind a RWMutex.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, len(teams))
	copy(out, teams)

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, cloneTeam(item))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == id {
			return cloneTeam(item), true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = append(r.teams, cloneTeam(t))

	return nil
}

func (r *TeamRepository) Update(_ context.Context, id string, update team.Update) (team.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID != id {
			continue
		}
		r.teams[idx].Apply(update)
		return cloneTeam(r.teams[idx]), true, nil
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID != id {
			continue
		}
		r.teams = append(r.teams[:idx], r.teams[idx+1:]...)
		return true, nil
	}

	return false, nil
}

func (r *TeamRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = nil

	return nil
}

func cloneTeam(t team.Team) team.Team {
	out := t
	if t.BeerPongPlayedPlayerIDs != nil {
		out.BeerPongPlayedPlayerIDs = make([]string, len(t.BeerPongPlayedPlayerIDs))
		copy(out.BeerPongPlayedPlayerIDs, t.BeerPongPlayedPlayerIDs)
	}

	return out
}
