package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

type Pinger interface {
	Ping(context.Context) error
}

type Handler struct {
	Log   *log.Logger
	DB    domain.UsersRepo
	Files domain.FilesRepo
	Cache Pinger
}

type statusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

type statsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// Status godoc
// @Summary      Liveness of store collaborators
// @Description  Живость БД и Redis; всегда 200, состояние — в теле.
// @Tags         app
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	const op = "app.status"
	reqID := mw.RequestIDFromCtx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	out := statusResponse{
		DB:    h.DB.Ping(ctx) == nil,
		Redis: h.Cache.Ping(ctx) == nil,
	}
	logx.Info(h.Log, reqID, op, "ok", "db", out.DB, "redis", out.Redis)
	v1.WriteJSON(w, http.StatusOK, out)
}

// Stats godoc
// @Summary      Users and files counters
// @Tags         app
// @Produce      json
// @Success      200  {object}  statsResponse
// @Failure      500  {object}  map[string]string
// @Router       /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "app.stats"
	reqID := mw.RequestIDFromCtx(r.Context())

	users, err := h.DB.CountUsers(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "count users failed", err)
		v1.WriteDomainError(w, err)
		return
	}
	files, err := h.Files.CountFiles(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "count files failed", err)
		v1.WriteDomainError(w, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "users", users, "files", files)
	v1.WriteJSON(w, http.StatusOK, statsResponse{Users: users, Files: files})
}
