package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("DELETE /v1/players", handler.DeleteAllPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PATCH /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("DELETE /v1/teams", handler.DeleteAllTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PATCH /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
	mux.HandleFunc("POST /v1/teams/{teamID}/captain", handler.AssignCaptain)
	mux.HandleFunc("POST /v1/teams/{teamID}/score/adjust", handler.AdjustTeamScore)

	mux.HandleFunc("GET /v1/albums", handler.ListAlbums)
	mux.HandleFunc("POST /v1/albums", handler.CreateAlbum)
	mux.HandleFunc("DELETE /v1/albums", handler.DeleteAllAlbums)
	mux.HandleFunc("GET /v1/albums/{albumID}", handler.GetAlbum)
	mux.HandleFunc("PATCH /v1/albums/{albumID}", handler.UpdateAlbum)
	mux.HandleFunc("DELETE /v1/albums/{albumID}", handler.DeleteAlbum)

	mux.HandleFunc("POST /v1/reset", handler.ResetAll)
}

func registerAuctionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/settings", handler.GetSettings)
	mux.HandleFunc("PATCH /v1/settings", handler.UpdateSettings)
	mux.HandleFunc("DELETE /v1/settings", handler.ResetAuction)

	mux.HandleFunc("GET /v1/auction", handler.GetAuctionState)
	mux.HandleFunc("POST /v1/auction/sell", handler.SellPlayer)
	mux.HandleFunc("POST /v1/auction/skip", handler.SkipPlayer)
	mux.HandleFunc("POST /v1/auction/finish", handler.FinishAuction)
	mux.HandleFunc("POST /v1/auction/trade", handler.TradePlayers)
	mux.HandleFunc("POST /v1/auction/reset", handler.ResetAuction)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/games/popular-song/rounds", handler.ApplyPopularSongRound)
	mux.HandleFunc("POST /v1/games/dumb-charades/rounds", handler.ApplyCharadesRound)
	mux.HandleFunc("POST /v1/games/guess-the-word/rounds", handler.ApplyWordGuessRound)
	mux.HandleFunc("POST /v1/games/beer-pong/rounds", handler.ApplyBeerPongRound)
	mux.HandleFunc("POST /v1/games/pen-fight/rounds", handler.ApplyPenFightRound)
	mux.HandleFunc("POST /v1/games/pictionary/rounds", handler.ApplyPictionaryRound)
}
