package app

import (
	"fmt"
	"net/http"

	"github.com/ThangaBalajiS/party-games/internal/config"
	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	cacherepo "github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/cache"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/memory"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/postgres"
	"github.com/ThangaBalajiS/party-games/internal/interfaces/httpapi"
	basecache "github.com/ThangaBalajiS/party-games/internal/platform/cache"
	idgen "github.com/ThangaBalajiS/party-games/internal/platform/id"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type repositories struct {
	players  player.Repository
	teams    team.Repository
	albums   album.Repository
	settings auction.Repository
	close    func() error
}

// NewHTTPServer builds the full service: store, repositories, services and
// the HTTP router. The returned cleanup closes the backing store.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.albums = cacherepo.NewAlbumRepository(repos.albums, store)
		repos.settings = cacherepo.NewSettingsRepository(repos.settings, store)
	}

	idGen := idgen.NewRandomGenerator()

	playerService := usecase.NewPlayerService(repos.players, repos.teams, idGen, logger)
	teamService := usecase.NewTeamService(repos.teams, repos.players, idGen, cfg.TeamDefaultBudget, logger)
	albumService := usecase.NewAlbumService(repos.albums, idGen, logger)
	auctionService := usecase.NewAuctionService(
		repos.settings,
		repos.players,
		repos.teams,
		cfg.TeamDefaultBudget,
		cfg.ResetWorkers,
		logger,
	)
	gameService := usecase.NewGameService(repos.teams, repos.players, repos.albums, logger)
	resetService := usecase.NewResetService(repos.players, repos.teams, repos.albums, repos.settings, logger)

	handler := httpapi.NewHandler(
		playerService,
		teamService,
		albumService,
		auctionService,
		gameService,
		resetService,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = repos.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	defaults := auction.Defaults(cfg.AuctionBasePrice, cfg.AuctionBidIncrement)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Info("using in-memory store with seed data")
		return repositories{
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			albums:   memory.NewAlbumRepository(memory.SeedAlbums()),
			settings: memory.NewSettingsRepository(defaults),
			close:    func() error { return nil },
		}, nil
	case config.StoreDriverPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("using postgres store", "db_name", dbNameFromURL(cfg.DBURL))
		return repositories{
			players:  postgres.NewPlayerRepository(db),
			teams:    postgres.NewTeamRepository(db),
			albums:   postgres.NewAlbumRepository(db),
			settings: postgres.NewSettingsRepository(db, defaults),
			close:    db.Close,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
