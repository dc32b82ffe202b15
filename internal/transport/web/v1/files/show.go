package files

import (
	"net/http"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// Show godoc
// @Summary     Get file metadata by id
// @Description Возвращает метаданные только владельцу.
// @Tags        files
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       id path string true "file id"
// @Success     200 {object} fileOut
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Router      /files/{id} [get]
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	const op = "files.show"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, domain.ErrUnauth)
		return
	}

	id, valid := pathID(r)
	if !valid {
		// кривой uuid неотличим от несуществующего файла
		v1.WriteDomainError(w, domain.ErrNotFound)
		return
	}

	f, err := h.Files.FileByID(r.Context(), id, me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "lookup failed", err, "file_id", id)
		v1.WriteDomainError(w, err)
		return
	}

	v1.WriteJSON(w, http.StatusOK, fileJSON(f))
}
