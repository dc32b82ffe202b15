package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/EgorLis/file-vault/internal/config"
	appv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/app"
	authv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/auth"
	filesv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/files"
	usersv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/users"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, d Deps) *Server {
	appLog := log.New(logger.Writer(), logger.Prefix()+"[app] ", logger.Flags())
	authLog := log.New(logger.Writer(), logger.Prefix()+"[auth] ", logger.Flags())
	usersLog := log.New(logger.Writer(), logger.Prefix()+"[users] ", logger.Flags())
	filesLog := log.New(logger.Writer(), logger.Prefix()+"[files] ", logger.Flags())

	appHandler := &appv1.Handler{Log: appLog, DB: d.Repos.Users, Files: d.Repos.Files, Cache: d.Cache}
	authHandler := &authv1.Handler{Log: authLog, Sessions: d.Sessions}
	usersHandler := &usersv1.Handler{Log: usersLog, Users: d.Repos.Users, Hasher: d.Hasher, Queue: d.Queue}
	filesHandler := &filesv1.Handler{Log: filesLog, Files: d.Repos.Files, Storage: d.Storage, Queue: d.Queue}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(appHandler, authHandler, usersHandler, filesHandler, d.Sessions, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
