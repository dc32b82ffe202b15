package users

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/logx"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	v1 "github.com/EgorLis/file-vault/internal/transport/web/v1"
)

type Handler struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
	Queue  domain.JobQueue
}

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    domain.UserID `json:"id"`
	Email string        `json:"email"`
}

// Create godoc
// @Summary     Register new user
// @Description Регистрация по email/password; уникальность email обеспечивает БД.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body createRequest true "email, password"
// @Success     201 {object} userResponse
// @Failure     400 {object} map[string]string
// @Router      /users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "users.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, domain.ErrMissingEmail)
		return
	}

	// порядок проверок фиксирован: email -> password
	if req.Email == "" {
		v1.WriteDomainError(w, domain.ErrMissingEmail)
		return
	}
	if req.Password == "" {
		v1.WriteDomainError(w, domain.ErrMissingPassword)
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		v1.WriteDomainError(w, err)
		return
	}

	u, err := h.Users.CreateUser(r.Context(), req.Email, []byte(hash))
	if err != nil {
		logx.Error(h.Log, reqID, op, "create user failed", err, "email", req.Email)
		v1.WriteDomainError(w, err)
		return
	}

	// приветствие уходит в фон; неудача постановки не валит регистрацию
	if err := h.Queue.EnqueueUser(r.Context(), domain.UserJob{UserID: u.ID}); err != nil {
		logx.Error(h.Log, reqID, op, "enqueue welcome failed", err, "user_id", u.ID)
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteJSON(w, http.StatusCreated, userResponse{ID: u.ID, Email: u.Email})
}

// Me godoc
// @Summary     Current user
// @Tags        users
// @Produce     json
// @Param       X-Token header string true "session token"
// @Success     200 {object} userResponse
// @Failure     401 {object} map[string]string
// @Router      /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	const op = "users.me"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrUnauth)
		v1.WriteDomainError(w, domain.ErrUnauth)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", me.ID)
	v1.WriteJSON(w, http.StatusOK, userResponse{ID: me.ID, Email: me.Email})
}
