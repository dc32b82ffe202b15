package files

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// Upload godoc
// @Summary     Upload file, image or folder
// @Description Контент приходит в base64 (для папок отсутствует). Родитель, если задан, должен существовать и быть папкой.
// @Tags        files
// @Accept      json
// @Produce     json
// @Param       X-Token header string true "session token"
// @Param       request body domain.UploadInput true "name, type, data, isPublic, parentId"
// @Success     201 {object} fileOut
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /files [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "files.upload"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, domain.ErrUnauth)
		return
	}

	var in domain.UploadInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, domain.ErrMissingName)
		return
	}

	data, err := domain.ValidateUpload(in)
	if err != nil {
		logx.Error(h.Log, reqID, op, "validation failed", err)
		v1.WriteDomainError(w, err)
		return
	}

	// родитель (если задан) обязан существовать и быть папкой —
	// иначе вставка упрётся в FK и наружу уйдёт 500
	var parentID *domain.FileID
	if !rootParent(in.ParentID) {
		id, perr := uuid.Parse(in.ParentID)
		if perr != nil {
			logx.Error(h.Log, reqID, op, "bad parent id", perr, "parent_id", in.ParentID)
			v1.WriteDomainError(w, domain.ErrParentNotFound)
			return
		}

		parent, perr := h.Files.ParentByID(r.Context(), id)
		if perr != nil {
			logx.Error(h.Log, reqID, op, "parent lookup failed", perr, "parent_id", id)
			v1.WriteDomainError(w, domain.ErrParentNotFound)
			return
		}
		if parent.Type != domain.TypeFolder {
			logx.Error(h.Log, reqID, op, "parent is not a folder", domain.ErrParentNotFolder, "parent_id", id)
			v1.WriteDomainError(w, domain.ErrParentNotFolder)
			return
		}
		parentID = &id
	}

	f := domain.File{
		OwnerID:  me.ID,
		Name:     data.Name,
		Type:     data.Type,
		Public:   data.IsPublic,
		ParentID: parentID,
	}

	// папка — только метаданные, без записи на диск
	if data.Type != domain.TypeFolder {
		decoded, derr := base64.StdEncoding.DecodeString(data.Data)
		if derr != nil || len(decoded) == 0 {
			logx.Error(h.Log, reqID, op, "bad content encoding", derr)
			v1.WriteDomainError(w, domain.ErrUnauth)
			return
		}

		key, serr := h.Storage.Put(r.Context(), decoded)
		if serr != nil {
			// сбой диска — инфраструктурная ошибка, наружу уходит 500
			logx.Error(h.Log, reqID, op, "storage put failed", serr)
			v1.WriteDomainError(w, serr)
			return
		}
		f.StorageKey = key
	}

	created, err := h.Files.CreateFile(r.Context(), f)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db create failed", err)
		v1.WriteDomainError(w, err)
		return
	}

	// миниатюры — только для изображений, fire-and-forget
	if domain.ThumbnailEligible(created.Type) {
		if err := h.Queue.EnqueueFile(r.Context(), domain.FileJob{UserID: me.ID, FileID: created.ID}); err != nil {
			logx.Error(h.Log, reqID, op, "enqueue thumbnail failed", err, "file_id", created.ID)
		}
	}

	logx.Info(h.Log, reqID, op, "ok", "file_id", created.ID, "type", created.Type)
	v1.WriteJSON(w, http.StatusCreated, fileJSON(created))
}
