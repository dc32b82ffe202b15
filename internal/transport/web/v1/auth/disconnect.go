package auth

import (
	"net/http"

	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// Disconnect godoc
// @Summary     Sign out
// @Description Отзывает сессию по X-Token. Повторный вызов с тем же токеном — тоже 204.
// @Tags        auth
// @Param       X-Token header string true "session token"
// @Success     204
// @Failure     401 {object} map[string]string
// @Router      /disconnect [get]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	const op = "auth.disconnect"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	if err := h.Sessions.Logout(r.Context(), v1.XToken(r)); err != nil {
		logx.Error(h.Log, reqID, op, "logout failed", err)
		v1.WriteDomainError(w, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok")
	w.WriteHeader(http.StatusNoContent)
}
