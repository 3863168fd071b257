package httpapi

import (
	"net/http"

	"github.com/ThangaBalajiS/party-games/internal/domain/player"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type createPlayerRequest struct {
	Name  string  `json:"name" validate:"required"`
	Photo *string `json:"photo"`
}

type patchPlayerRequest struct {
	Name      *string `json:"name"`
	Photo     *string `json:"photo"`
	TeamID    *string `json:"teamId"`
	SoldPrice *int    `json:"soldPrice"`
	IsCaptain *bool   `json:"isCaptain"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req patchPlayerRequest
	fields, err := decodePatch(r, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	update := player.Update{
		Name:      req.Name,
		Photo:     req.Photo,
		TeamID:    req.TeamID,
		SoldPrice: req.SoldPrice,
		IsCaptain: req.IsCaptain,
	}
	if raw, ok := fields["photo"]; ok && isJSONNull(raw) {
		update.ClearPhoto = true
	}
	if raw, ok := fields["teamId"]; ok && isJSONNull(raw) {
		update.ClearTeamID = true
	}
	if raw, ok := fields["soldPrice"]; ok && isJSONNull(raw) {
		update.ClearSoldPrice = true
	}

	p, err := h.playerService.UpdatePlayer(ctx, playerID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": playerID})
}

func (h *Handler) DeleteAllPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllPlayers")
	defer span.End()

	if err := h.playerService.DeleteAllPlayers(ctx); err != nil {
		h.logger.ErrorContext(ctx, "delete all players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
