package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type Handler struct {
	playerService  *usecase.PlayerService
	teamService    *usecase.TeamService
	albumService   *usecase.AlbumService
	auctionService *usecase.AuctionService
	gameService    *usecase.GameService
	resetService   *usecase.ResetService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	albumService *usecase.AlbumService,
	auctionService *usecase.AuctionService,
	gameService *usecase.GameService,
	resetService *usecase.ResetService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:  playerService,
		teamService:    teamService,
		albumService:   albumService,
		auctionService: auctionService,
		gameService:    gameService,
		resetService:   resetService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ResetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetAll")
	defer span.End()

	if err := h.resetService.ResetAll(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reset all failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type playerDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Photo     *string `json:"photo"`
	TeamID    *string `json:"teamId"`
	SoldPrice *int    `json:"soldPrice"`
	IsCaptain bool    `json:"isCaptain"`
	CreatedAt string  `json:"createdAt"`
}

type teamDTO struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Color                   string   `json:"color"`
	CaptainID               *string  `json:"captainId"`
	Budget                  int      `json:"budget"`
	Score                   int      `json:"score"`
	GuessTheWordRounds      int      `json:"guessTheWordRounds"`
	DumbCharadesRounds      int      `json:"dumbCharadesRounds"`
	PictionaryRounds        int      `json:"pictionaryRounds"`
	PenFightRounds          int      `json:"penFightRounds"`
	BeerPongRounds          int      `json:"beerPongRounds"`
	BeerPongPlayersPlayed   int      `json:"beerPongPlayersPlayed"`
	BeerPongPlayedPlayerIDs []string `json:"beerPongPlayedPlayerIds"`
	BeerPongTotalScore      int      `json:"beerPongTotalScore"`
	CreatedAt               string   `json:"createdAt"`
}

type songDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Streams int    `json:"streams"`
}

type albumDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CoverArt  *string   `json:"coverArt"`
	Songs     []songDTO `json:"songs"`
	Played    bool      `json:"played"`
	CreatedAt string    `json:"createdAt"`
}

type settingsDTO struct {
	BasePrice          int    `json:"basePrice"`
	BidIncrement       int    `json:"bidIncrement"`
	AuctionStatus      string `json:"auctionStatus"`
	CurrentPlayerIndex int    `json:"currentPlayerIndex"`
}

type auctionStateDTO struct {
	Settings      settingsDTO `json:"settings"`
	UnsoldPlayers []playerDTO `json:"unsoldPlayers"`
	CurrentPlayer *playerDTO  `json:"currentPlayer"`
	NextBid       int         `json:"nextBid"`
	Complete      bool        `json:"complete"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Photo:     v.Photo,
		TeamID:    v.TeamID,
		SoldPrice: v.SoldPrice,
		IsCaptain: v.IsCaptain,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:                      v.ID,
		Name:                    v.Name,
		Color:                   v.Color,
		CaptainID:               v.CaptainID,
		Budget:                  v.Budget,
		Score:                   v.Score,
		GuessTheWordRounds:      v.GuessTheWordRounds,
		DumbCharadesRounds:      v.DumbCharadesRounds,
		PictionaryRounds:        v.PictionaryRounds,
		PenFightRounds:          v.PenFightRounds,
		BeerPongRounds:          v.BeerPongRounds,
		BeerPongPlayersPlayed:   v.BeerPongPlayersPlayed,
		BeerPongPlayedPlayerIDs: append([]string{}, v.BeerPongPlayedPlayerIDs...),
		BeerPongTotalScore:      v.BeerPongTotalScore,
		CreatedAt:               v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func albumToDTO(v album.Album) albumDTO {
	songs := make([]songDTO, 0, len(v.Songs))
	for _, song := range v.Songs {
		songs = append(songs, songDTO{ID: song.ID, Title: song.Title, Streams: song.Streams})
	}

	return albumDTO{
		ID:        v.ID,
		Name:      v.Name,
		CoverArt:  v.CoverArt,
		Songs:     songs,
		Played:    v.Played,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func settingsToDTO(v auction.Settings) settingsDTO {
	return settingsDTO{
		BasePrice:          v.BasePrice,
		BidIncrement:       v.BidIncrement,
		AuctionStatus:      string(v.Status),
		CurrentPlayerIndex: v.CurrentPlayerIndex,
	}
}

func auctionStateToDTO(v usecase.AuctionState) auctionStateDTO {
	unsold := make([]playerDTO, 0, len(v.UnsoldPlayers))
	for _, p := range v.UnsoldPlayers {
		unsold = append(unsold, playerToDTO(p))
	}

	out := auctionStateDTO{
		Settings:      settingsToDTO(v.Settings),
		UnsoldPlayers: unsold,
		NextBid:       v.NextBid,
		Complete:      v.Complete,
	}
	if v.CurrentPlayer != nil {
		current := playerToDTO(*v.CurrentPlayer)
		out.CurrentPlayer = &current
	}

	return out
}
