package httpapi

import (
	"net/http"

	"github.com/ThangaBalajiS/party-games/internal/domain/scoring"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type popularSongAnswerRequest struct {
	TeamID  string   `json:"teamId" validate:"required"`
	SongIDs []string `json:"songIds" validate:"len=3,unique"`
}

type popularSongRoundRequest struct {
	AlbumID string                     `json:"albumId" validate:"required"`
	Answers []popularSongAnswerRequest `json:"answers" validate:"required,dive"`
}

type charadesRoundRequest struct {
	TeamID         string `json:"teamId" validate:"required"`
	Mode           string `json:"mode" validate:"required"`
	ElapsedSeconds int    `json:"elapsedSeconds" validate:"min=0"`
	TimedOut       bool   `json:"timedOut"`
}

type wordGuessRoundRequest struct {
	TeamID         string `json:"teamId" validate:"required"`
	CorrectAnswers int    `json:"correctAnswers" validate:"min=0,max=5"`
}

type beerPongRoundRequest struct {
	TeamID           string `json:"teamId" validate:"required"`
	PlayerID         string `json:"playerId" validate:"required"`
	SuccessfulThrows int    `json:"successfulThrows" validate:"min=0,max=5"`
}

type penFightRoundRequest struct {
	TeamAID   string   `json:"teamAId" validate:"required"`
	TeamBID   string   `json:"teamBId" validate:"required"`
	OutcomesA []string `json:"outcomesA" validate:"len=3"`
	OutcomesB []string `json:"outcomesB" validate:"len=3"`
}

type pictionaryRoundRequest struct {
	TeamID string `json:"teamId" validate:"required"`
	Delta  int    `json:"delta"`
}

type songRankBreakdownDTO struct {
	InTopThree   int  `json:"inTopThree"`
	ExactMatches int  `json:"exactMatches"`
	HasTopSong   bool `json:"hasTopSong"`
	PerfectBonus bool `json:"perfectBonus"`
}

type popularSongResultDTO struct {
	TeamID    string               `json:"teamId"`
	Total     int                  `json:"total"`
	Breakdown songRankBreakdownDTO `json:"breakdown"`
}

type gameRoundResultDTO struct {
	Team  teamDTO `json:"team"`
	Score int     `json:"score"`
}

type penFightResultDTO struct {
	TeamAID string `json:"teamAId"`
	TeamBID string `json:"teamBId"`
	DeltaA  int    `json:"deltaA"`
	DeltaB  int    `json:"deltaB"`
}

func gameRoundResultToDTO(v usecase.GameRoundResult) gameRoundResultDTO {
	return gameRoundResultDTO{Team: teamToDTO(v.Team), Score: v.Score}
}

func penFightOutcomes(raw []string) []scoring.PenFightOutcome {
	out := make([]scoring.PenFightOutcome, 0, len(raw))
	for _, o := range raw {
		out = append(out, scoring.PenFightOutcome(o))
	}

	return out
}

func (h *Handler) ApplyPopularSongRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPopularSongRound")
	defer span.End()

	var req popularSongRoundRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	answers := make([]usecase.PopularSongAnswer, 0, len(req.Answers))
	for _, answer := range req.Answers {
		answers = append(answers, usecase.PopularSongAnswer{
			TeamID:  answer.TeamID,
			SongIDs: answer.SongIDs,
		})
	}

	results, err := h.gameService.ApplyPopularSongRound(ctx, usecase.PopularSongRoundInput{
		AlbumID: req.AlbumID,
		Answers: answers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "popular song round failed", "album_id", req.AlbumID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]popularSongResultDTO, 0, len(results))
	for _, result := range results {
		items = append(items, popularSongResultDTO{
			TeamID: result.TeamID,
			Total:  result.Total,
			Breakdown: songRankBreakdownDTO{
				InTopThree:   result.Breakdown.InTopThree,
				ExactMatches: result.Breakdown.ExactMatches,
				HasTopSong:   result.Breakdown.HasTopSong,
				PerfectBonus: result.Breakdown.PerfectBonus,
			},
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ApplyCharadesRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyCharadesRound")
	defer span.End()

	var req charadesRoundRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.gameService.ApplyCharadesRound(ctx, usecase.CharadesRoundInput{
		TeamID:         req.TeamID,
		Mode:           scoring.CharadesMode(req.Mode),
		ElapsedSeconds: req.ElapsedSeconds,
		TimedOut:       req.TimedOut,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "charades round failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameRoundResultToDTO(result))
}

func (h *Handler) ApplyWordGuessRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyWordGuessRound")
	defer span.End()

	var req wordGuessRoundRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.gameService.ApplyWordGuessRound(ctx, usecase.WordGuessRoundInput{
		TeamID:         req.TeamID,
		CorrectAnswers: req.CorrectAnswers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "word guess round failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameRoundResultToDTO(result))
}

func (h *Handler) ApplyBeerPongRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyBeerPongRound")
	defer span.End()

	var req beerPongRoundRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.gameService.ApplyBeerPongRound(ctx, usecase.BeerPongRoundInput{
		TeamID:           req.TeamID,
		PlayerID:         req.PlayerID,
		SuccessfulThrows: req.SuccessfulThrows,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "beer pong round failed", "team_id", req.TeamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameRoundResultToDTO(result))
}

func (h *Handler) ApplyPenFightRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPenFightRound")
	defer span.End()

	var req penFightRoundRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.gameService.ApplyPenFightRound(ctx, usecase.PenFightRoundInput{
		TeamAID:   req.TeamAID,
		TeamBID:   req.TeamBID,
		OutcomesA: penFightOutcomes(req.OutcomesA),
		OutcomesB: penFightOutcomes(req.OutcomesB),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "pen fight round failed", "team_a", req.TeamAID, "team_b", req.TeamBID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, penFightResultDTO{
		TeamAID: result.TeamAID,
		TeamBID: result.TeamBID,
		DeltaA:  result.DeltaA,
		DeltaB:  result.DeltaB,
	})
}

func (h *Handler) ApplyPictionaryRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPictionaryRound")
	defer span.End()

	var req pictionaryRoundRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.gameService.ApplyPictionaryRound(ctx, usecase.PictionaryRoundInput{
		TeamID: req.TeamID,
		Delta:  req.Delta,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "pictionary round failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameRoundResultToDTO(result))
}
