package files

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// Index godoc
// @Summary     List files by parent
// @Description Без parentId — корень. Неизвестный родитель даёт пустой список.
// @Tags        files
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       parentId query string false "parent folder id, 0 = root"
// @Success     200 {array} fileOut
// @Failure     401 {object} map[string]string
// @Router      /files [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	const op = "files.index"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, domain.ErrUnauth)
		return
	}

	var parent *domain.FileID
	if raw := r.URL.Query().Get("parentId"); !rootParent(raw) {
		id, err := uuid.Parse(raw)
		if err != nil {
			// мусорный parentId — просто пустой список, не ошибка
			v1.WriteJSON(w, http.StatusOK, []fileOut{})
			return
		}
		parent = &id
	}

	list, err := h.Files.FilesByParent(r.Context(), me.ID, parent)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, err)
		return
	}

	out := make([]fileOut, 0, len(list))
	for _, f := range list {
		out = append(out, fileJSON(f))
	}
	v1.WriteJSON(w, http.StatusOK, out)
}
