package files

import (
	"net/http"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// Publish godoc
// @Summary     Make file public
// @Tags        files
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       id path string true "file id"
// @Success     200 {object} fileOut
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Router      /files/{id}/publish [put]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, "files.publish", true)
}

// Unpublish godoc
// @Summary     Make file private
// @Tags        files
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       id path string true "file id"
// @Success     200 {object} fileOut
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Router      /files/{id}/unpublish [put]
func (h *Handler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, "files.unpublish", false)
}

// повторный вызов идемпотентен: флаг просто перезаписывается
func (h *Handler) setPublic(w http.ResponseWriter, r *http.Request, op string, public bool) {
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, domain.ErrUnauth)
		return
	}

	id, valid := pathID(r)
	if !valid {
		v1.WriteDomainError(w, domain.ErrNotFound)
		return
	}

	f, err := h.Files.SetPublic(r.Context(), id, me.ID, public)
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "file_id", id)
		v1.WriteDomainError(w, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "file_id", id)
	v1.WriteJSON(w, http.StatusOK, fileJSON(f))
}
