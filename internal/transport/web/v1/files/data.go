package files

import (
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// Data godoc
// @Summary     Download file content
// @Description Для изображений параметр size={100,250,500} отдаёт миниатюру.
// @Tags        files
// @Produce     octet-stream
// @Param       X-Token header string true "session token"
// @Param       id path string true "file id"
// @Param       size query int false "thumbnail width"
// @Success     200 {string} binary
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Router      /files/{id}/data [get]
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	const op = "files.data"
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

	f, err := h.Files.FileByID(r.Context(), id, me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "lookup failed", err, "file_id", id)
		v1.WriteDomainError(w, err)
		return
	}

	if f.Type == domain.TypeFolder {
		v1.WriteDomainError(w, domain.ErrFolderNoContent)
		return
	}

	ctype := mime.TypeByExtension(filepath.Ext(f.Name))
	if ctype == "" {
		// без расширения не знаем, как отдавать контент
		v1.WriteDomainError(w, domain.ErrNotFound)
		return
	}

	var data []byte
	if raw := r.URL.Query().Get("size"); raw != "" {
		width, werr := strconv.Atoi(raw)
		if werr != nil || !domain.ValidThumbnailWidth(width) {
			v1.WriteDomainError(w, domain.ErrNotFound)
			return
		}
		data, err = h.Storage.GetVariant(r.Context(), f.StorageKey, width)
	} else {
		data, err = h.Storage.Get(r.Context(), f.StorageKey)
	}
	if err != nil {
		logx.Error(h.Log, reqID, op, "read failed", err, "file_id", id)
		v1.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
