package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/EgorLis/file-vault/internal/docs"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	appv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/app"
	authv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/auth"
	filesv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/files"
	usersv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/users"
)

func newRouter(ah *appv1.Handler, auth *authv1.Handler, uh *usersv1.Handler, fh *filesv1.Handler, gate mw.Gate, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// служебные
	mux.HandleFunc("GET /status", ah.Status)
	mux.HandleFunc("GET /stats", ah.Stats)

	// auth: connect сам разбирает Basic, disconnect отдаёт 401 без токена
	mux.HandleFunc("GET /connect", auth.Connect)
	mux.HandleFunc("GET /disconnect", auth.Disconnect)

	// users
	mux.HandleFunc("POST /users", uh.Create)
	mux.Handle("GET /users/me", mw.RequireAuth(gate, http.HandlerFunc(uh.Me)))

	// files: контент в base64 раздувается на треть, лимит с запасом
	protected := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(gate, h) }
	mux.Handle("POST /files", protected(limitBody(64<<20, fh.Upload))) // 64MB лимит
	mux.Handle("GET /files", protected(fh.Index))
	mux.Handle("GET /files/{id}", protected(fh.Show))
	mux.Handle("PUT /files/{id}/publish", protected(fh.Publish))
	mux.Handle("PUT /files/{id}/unpublish", protected(fh.Unpublish))
	mux.Handle("GET /files/{id}/data", protected(fh.Data))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
