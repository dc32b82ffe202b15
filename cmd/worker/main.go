package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/EgorLis/file-vault/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := app.BuildWorker(ctx)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	if err := w.Run(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
