package httpapi

import (
	"net/http"

	"github.com/ThangaBalajiS/party-games/internal/domain/auction"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type patchSettingsRequest struct {
	BasePrice          *int    `json:"basePrice"`
	BidIncrement       *int    `json:"bidIncrement"`
	AuctionStatus      *string `json:"auctionStatus"`
	CurrentPlayerIndex *int    `json:"currentPlayerIndex"`
}

type sellPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	Price    int    `json:"price" validate:"gt=0"`
}

type tradePlayersRequest struct {
	FirstPlayerID  string `json:"firstPlayerId" validate:"required"`
	SecondPlayerID string `json:"secondPlayerId" validate:"required"`
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettings")
	defer span.End()

	settings, err := h.auctionService.Settings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get auction settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSettings")
	defer span.End()

	var req patchSettingsRequest
	if _, err := decodePatch(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	update := auction.Update{
		BasePrice:          req.BasePrice,
		BidIncrement:       req.BidIncrement,
		CurrentPlayerIndex: req.CurrentPlayerIndex,
	}
	if req.AuctionStatus != nil {
		status := auction.Status(*req.AuctionStatus)
		update.Status = &status
	}

	settings, err := h.auctionService.UpdateSettings(ctx, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update auction settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}

func (h *Handler) GetAuctionState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuctionState")
	defer span.End()

	state, err := h.auctionService.State(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get auction state failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionStateToDTO(state))
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SellPlayer")
	defer span.End()

	var req sellPlayerRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.auctionService.SellPlayer(ctx, usecase.SellPlayerInput{
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Price:    req.Price,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "sell player failed", "player_id", req.PlayerID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) SkipPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SkipPlayer")
	defer span.End()

	settings, err := h.auctionService.SkipPlayer(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "skip player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}

func (h *Handler) FinishAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishAuction")
	defer span.End()

	settings, err := h.auctionService.FinishAuction(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "finish auction failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}

func (h *Handler) TradePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TradePlayers")
	defer span.End()

	var req tradePlayersRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.auctionService.TradePlayers(ctx, req.FirstPlayerID, req.SecondPlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "trade players failed",
			"first_player_id", req.FirstPlayerID,
			"second_player_id", req.SecondPlayerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ResetAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetAuction")
	defer span.End()

	settings, err := h.auctionService.ResetAuction(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reset auction failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}
