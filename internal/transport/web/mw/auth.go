package mw

import (
	"context"
	"net/http"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Gate — единая точка авторизации (session.Manager).
type Gate interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// RequireAuth резолвит X-Token в пользователя и кладёт его в контекст.
// Любая причина отказа схлопывается в один 401: клиент не узнаёт,
// протух ли токен или пользователя больше нет.
func RequireAuth(gate Gate, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Token")
		u, err := gate.Authenticate(r.Context(), token)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), u)))
	})
}
