package auth

import (
	"context"
	"log"
	"net/http"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

// SessionManager выпускает и отзывает сессии (internal/auth/session).
type SessionManager interface {
	Login(ctx context.Context, email, pswd string) (string, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	Log      *log.Logger
	Sessions SessionManager
}

type connectResponse struct {
	Token string `json:"token"`
}

// Connect godoc
// @Summary     Sign in
// @Description Выпускает сессионный токен по Basic-креденшлу (email:password в base64).
// @Tags        auth
// @Produce     json
// @Param       Authorization header string true "Basic base64(email:password)"
// @Success     200 {object} connectResponse
// @Failure     401 {object} map[string]string
// @Router      /connect [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	const op = "auth.connect"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	creds := v1.BasicCredsFromRequest(r)
	if creds == nil {
		logx.Error(h.Log, reqID, op, "bad authorization header", domain.ErrUnauth)
		v1.WriteDomainError(w, domain.ErrUnauth)
		return
	}

	token, err := h.Sessions.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "login failed", err, "email", creds.Email)
		v1.WriteDomainError(w, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "email", creds.Email)
	w.Header().Set("X-Token", token)
	v1.WriteJSON(w, http.StatusOK, connectResponse{Token: token})
}
