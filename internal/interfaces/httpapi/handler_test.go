package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/infrastructure/repository/memory"
	idgen "github.com/ThangaBalajiS/party-games/internal/platform/id"
	"github.com/ThangaBalajiS/party-games/internal/platform/logging"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	playerRepo := memory.NewPlayerRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	albumRepo := memory.NewAlbumRepository(nil)
	settingsRepo := memory.NewSettingsRepository(auction.Defaults(100, 10))

	idGen := idgen.NewRandomGenerator()
	logger := logging.NewNop()

	playerService := usecase.NewPlayerService(playerRepo, teamRepo, idGen, logger)
	teamService := usecase.NewTeamService(teamRepo, playerRepo, idGen, 1000, logger)
	albumService := usecase.NewAlbumService(albumRepo, idGen, logger)
	auctionService := usecase.NewAuctionService(settingsRepo, playerRepo, teamRepo, 1000, 4, logger)
	gameService := usecase.NewGameService(teamRepo, playerRepo, albumRepo, logger)
	resetService := usecase.NewResetService(playerRepo, teamRepo, albumRepo, settingsRepo, logger)

	handler := NewHandler(playerService, teamService, albumService, auctionService, gameService, resetService, logger)

	return NewRouter(handler, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]string](t, rec)
	require.Equal(t, "ok", data["status"])
}

func TestRouter_CreatePlayer_Validation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/players", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/players", `{"name":"Alice","unknown":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PlayerLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/players", `{"name":"Alice","photo":"https://example.com/a.png"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[playerDTO](t, rec)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Alice", created.Name)
	require.NotNil(t, created.Photo)

	rec = doJSON(t, router, http.MethodPatch, "/v1/players/"+created.ID, `{"name":"Alice B","photo":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeData[playerDTO](t, rec)
	require.Equal(t, "Alice B", patched.Name)
	require.Nil(t, patched.Photo)

	rec = doJSON(t, router, http.MethodGet, "/v1/players/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/v1/players/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/players/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_AuctionSellDebitsBudget(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Red"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	teamCreated := decodeData[teamDTO](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/players", `{"name":"Bob"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	playerCreated := decodeData[playerDTO](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/auction/sell",
		`{"playerId":"`+playerCreated.ID+`","teamId":"`+teamCreated.ID+`","price":150}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sold := decodeData[playerDTO](t, rec)
	require.NotNil(t, sold.TeamID)
	require.Equal(t, teamCreated.ID, *sold.TeamID)
	require.NotNil(t, sold.SoldPrice)
	require.Equal(t, 150, *sold.SoldPrice)

	rec = doJSON(t, router, http.MethodGet, "/v1/teams/"+teamCreated.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	teamAfter := decodeData[teamDTO](t, rec)
	require.Equal(t, 850, teamAfter.Budget)

	// Selling the same player twice is a conflict.
	rec = doJSON(t, router, http.MethodPost, "/v1/auction/sell",
		`{"playerId":"`+playerCreated.ID+`","teamId":"`+teamCreated.ID+`","price":150}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_WordGuessRound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Blue"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	teamCreated := decodeData[teamDTO](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/games/guess-the-word/rounds",
		`{"teamId":"`+teamCreated.ID+`","correctAnswers":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeData[gameRoundResultDTO](t, rec)
	require.Equal(t, 30, result.Score)
	require.Equal(t, 30, result.Team.Score)
	require.Equal(t, 1, result.Team.GuessTheWordRounds)
}

func TestRouter_SettingsAndState(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decodeData[settingsDTO](t, rec)
	require.Equal(t, 100, settings.BasePrice)
	require.Equal(t, "pending", settings.AuctionStatus)

	rec = doJSON(t, router, http.MethodPatch, "/v1/settings", `{"auctionStatus":"in-progress","basePrice":200}`)
	require.Equal(t, http.StatusOK, rec.Code)
	settings = decodeData[settingsDTO](t, rec)
	require.Equal(t, 200, settings.BasePrice)
	require.Equal(t, "in-progress", settings.AuctionStatus)

	rec = doJSON(t, router, http.MethodGet, "/v1/auction", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeData[auctionStateDTO](t, rec)
	require.Empty(t, state.UnsoldPlayers)
	require.Nil(t, state.CurrentPlayer)
	require.Equal(t, 200, state.NextBid)
}
