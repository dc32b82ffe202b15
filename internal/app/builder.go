package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/EgorLis/file-vault/internal/auth/password"
	"github.com/EgorLis/file-vault/internal/auth/session"
	"github.com/EgorLis/file-vault/internal/config"
	"github.com/EgorLis/file-vault/internal/domain"
	redisx "github.com/EgorLis/file-vault/internal/infra/cache/redis"
	"github.com/EgorLis/file-vault/internal/infra/database/postgres"
	"github.com/EgorLis/file-vault/internal/infra/queue/redisq"
	localstorage "github.com/EgorLis/file-vault/internal/infra/storage/local"
	s3storage "github.com/EgorLis/file-vault/internal/infra/storage/s3"
	"github.com/EgorLis/file-vault/internal/transport/web"
	"github.com/EgorLis/file-vault/internal/worker"
)

type App struct {
	config  *config.Config
	server  *web.Server
	log     *log.Logger
	storage domain.BlobStorage
	cache   domain.Cache
	queue   *redisq.Queue
	repo    *postgres.PGRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	storageLog := log.New(base.Writer(), base.Prefix()+"[storage] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	queueLog := log.New(base.Writer(), base.Prefix()+"[queue] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	storage, err := buildStorage(ctx, cfg, storageLog)
	if err != nil {
		return nil, err
	}

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	queue := redisq.New(redisq.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, queueLog)

	// Auth primitives
	hasher := password.NewDefault()
	sessions := session.New(session.NewStore(rc), pgRepo, hasher)

	base.Println("init Server")
	deps := web.Deps{
		Repos:    web.Repos{Users: pgRepo, Files: pgRepo},
		Sessions: sessions,
		Hasher:   hasher,
		Storage:  storage,
		Cache:    rc,
		Queue:    queue,
	}
	server := web.New(serverLog, cfg, deps)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config:  cfg,
		server:  server,
		log:     base,
		storage: storage,
		cache:   rc,
		queue:   queue,
		repo:    pgRepo,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.queue.Close()
	a.cache.Close()

	return nil
}

// WorkerApp — фоновый процесс: миниатюры и приветственные письма.
type WorkerApp struct {
	config *config.Config
	worker *worker.Worker
	log    *log.Logger
	queue  *redisq.Queue
	repo   *postgres.PGRepo
}

func BuildWorker(ctx context.Context) (*WorkerApp, error) {
	base := log.New(os.Stdout, "[worker] ", log.LstdFlags)

	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	storageLog := log.New(base.Writer(), base.Prefix()+"[storage] ", base.Flags())
	queueLog := log.New(base.Writer(), base.Prefix()+"[queue] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}

	storage, err := buildStorage(ctx, cfg, storageLog)
	if err != nil {
		return nil, err
	}

	queue := redisq.New(redisq.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, queueLog)

	w := worker.New(base, pgRepo, pgRepo, storage, queue)

	base.Println("build ended")
	return &WorkerApp{config: cfg, worker: w, log: base, queue: queue, repo: pgRepo}, nil
}

func (a *WorkerApp) Run(ctx context.Context) error {
	a.log.Println("start worker...")
	a.worker.Run(ctx)
	a.log.Println("stop worker...")

	a.repo.Close()
	a.queue.Close()
	return nil
}

// buildStorage выбирает бекенд контента по STORAGE_DRIVER.
func buildStorage(ctx context.Context, cfg *config.Config, logger *log.Logger) (domain.BlobStorage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverS3:
		s3cfg := s3storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			PathStyle: cfg.S3PathStyle,
		}
		s3, err := s3storage.New(ctx, s3cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed init s3: %w", err)
		}
		return s3, nil
	case config.StorageDriverLocal:
		ls, err := localstorage.New(cfg.FolderPath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed init local storage: %w", err)
		}
		return ls, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.StorageDriver)
	}
}
