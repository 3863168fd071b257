package httpapi

import (
	"net/http"

	"github.com/ThangaBalajiS/party-games/internal/domain/album"
	"github.com/ThangaBalajiS/party-games/internal/usecase"
)

type createAlbumSongRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title" validate:"required"`
	Streams int    `json:"streams" validate:"min=0"`
}

type createAlbumRequest struct {
	Name     string                   `json:"name" validate:"required"`
	CoverArt *string                  `json:"coverArt"`
	Songs    []createAlbumSongRequest `json:"songs" validate:"dive"`
}

type patchAlbumRequest struct {
	Name     *string                   `json:"name"`
	CoverArt *string                   `json:"coverArt"`
	Songs    *[]createAlbumSongRequest `json:"songs"`
	Played   *bool                     `json:"played"`
}

func songsFromRequest(songs []createAlbumSongRequest) []album.Song {
	out := make([]album.Song, 0, len(songs))
	for _, song := range songs {
		out = append(out, album.Song{ID: song.ID, Title: song.Title, Streams: song.Streams})
	}

	return out
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAlbums")
	defer span.End()

	var (
		albums []album.Album
		err    error
	)
	if r.URL.Query().Get("unplayed") == "true" {
		albums, err = h.albumService.ListUnplayedAlbums(ctx)
	} else {
		albums, err = h.albumService.ListAlbums(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list albums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]albumDTO, 0, len(albums))
	for _, a := range albums {
		items = append(items, albumToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAlbum")
	defer span.End()

	albumID := r.PathValue("albumID")
	a, err := h.albumService.GetAlbum(ctx, albumID)
	if err != nil {
		h.logger.WarnContext(ctx, "get album failed", "album_id", albumID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, albumToDTO(a))
}

func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAlbum")
	defer span.End()

	var req createAlbumRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	a, err := h.albumService.CreateAlbum(ctx, usecase.CreateAlbumInput{
		Name:     req.Name,
		CoverArt: req.CoverArt,
		Songs:    songsFromRequest(req.Songs),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create album failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, albumToDTO(a))
}

func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAlbum")
	defer span.End()

	albumID := r.PathValue("albumID")
	var req patchAlbumRequest
	fields, err := decodePatch(r, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	update := album.Update{
		Name:     req.Name,
		CoverArt: req.CoverArt,
		Played:   req.Played,
	}
	if req.Songs != nil {
		songs := songsFromRequest(*req.Songs)
		update.Songs = &songs
	}
	if raw, ok := fields["coverArt"]; ok && isJSONNull(raw) {
		update.ClearCoverArt = true
	}

	a, err := h.albumService.UpdateAlbum(ctx, albumID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update album failed", "album_id", albumID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, albumToDTO(a))
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAlbum")
	defer span.End()

	albumID := r.PathValue("albumID")
	if err := h.albumService.DeleteAlbum(ctx, albumID); err != nil {
		h.logger.WarnContext(ctx, "delete album failed", "album_id", albumID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": albumID})
}

func (h *Handler) DeleteAllAlbums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAllAlbums")
	defer span.End()

	if err := h.albumService.DeleteAllAlbums(ctx); err != nil {
		h.logger.ErrorContext(ctx, "delete all albums failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
