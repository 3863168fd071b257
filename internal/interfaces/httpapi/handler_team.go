package httpapi

import (
	"net/http"

	"github.com/ThangaBalajiS/party-games/internal/domain/team"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type createTeamRequest struct {
	Name  string  `json:"name" validate:"required"`
	Color *string `json:"color"`
}

type patchTeamRequest struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	CaptainID *string `json:"captainId"`
}

type assignCaptainRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

type adjustScoreRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	t, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(t))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	var req patchTeamRequest
	fields, err := decodePatch(r, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	update := team.Update{
		Name:      req.Name,
		Color:     req.Color,
		CaptainID: req.CaptainID,
	}
	if raw, ok := fields["captainId"]; ok && isJSONNull(raw) {
		update.ClearCaptainID = true
	}

	t, err := h.teamService.UpdateTeam(ctx, teamID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": teamID})
}

func (h *Handler) DeleteAllTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllTeams")
	defer span.End()

	if err := h.teamService.DeleteAllTeams(ctx); err != nil {
		h.logger.ErrorContext(ctx, "delete all teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AssignCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignCaptain")
	defer span.End()

	teamID := r.PathValue("teamID")
	var req assignCaptainRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.teamService.AssignCaptain(ctx, teamID, req.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign captain failed", "team_id", teamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) AdjustTeamScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdjustTeamScore")
	defer span.End()

	teamID := r.PathValue("teamID")
	var req adjustScoreRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.teamService.AdjustScore(ctx, teamID, req.Delta)
	if err != nil {
		h.logger.WarnContext(ctx, "adjust team score failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}
