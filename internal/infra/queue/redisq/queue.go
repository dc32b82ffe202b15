package redisq

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Очереди заданий поверх redis-списков: продюсер делает LPUSH,
// воркер — блокирующий BRPOP.
const (
	fileQueueKey = "file_queue"
	userQueueKey = "user_queue"

	popTimeout = 5 * time.Second
)

type Config struct {
	Addr     string
	DB       int
	Password string
}

type Queue struct {
	rdb    *redis.Client
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) *Queue {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	return &Queue{rdb: rdb, logger: logger}
}

func (q *Queue) Close() {
	if err := q.rdb.Close(); err != nil {
		q.logger.Printf("error while closing: %v", err)
	}
}

var _ domain.JobQueue = (*Queue)(nil)

func (q *Queue) EnqueueFile(ctx context.Context, job domain.FileJob) error {
	return q.push(ctx, fileQueueKey, job)
}

func (q *Queue) EnqueueUser(ctx context.Context, job domain.UserJob) error {
	return q.push(ctx, userQueueKey, job)
}

func (q *Queue) push(ctx context.Context, key string, job any) error {
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := q.rdb.LPush(ctx, key, b).Err(); err != nil {
		q.logger.Printf("LPUSH %q failed: %v", key, err)
		return err
	}
	q.logger.Printf("LPUSH %q ok: %s", key, b)
	return nil
}

// ---- Консьюмер (воркер) ----

// NextFile блокируется до появления задания либо отмены контекста.
func (q *Queue) NextFile(ctx context.Context) (domain.FileJob, error) {
	var job domain.FileJob
	err := q.pop(ctx, fileQueueKey, &job)
	return job, err
}

func (q *Queue) NextUser(ctx context.Context) (domain.UserJob, error) {
	var job domain.UserJob
	err := q.pop(ctx, userQueueKey, &job)
	return job, err
}

func (q *Queue) pop(ctx context.Context, key string, out any) error {
	for {
		res, err := q.rdb.BRPop(ctx, popTimeout, key).Result()
		if errors.Is(err, redis.Nil) {
			// таймаут опроса — пробуем снова
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			q.logger.Printf("BRPOP %q failed: %v", key, err)
			return err
		}
		// res[0] — имя ключа, res[1] — значение
		if len(res) != 2 {
			continue
		}
		if err := json.Unmarshal([]byte(res[1]), out); err != nil {
			q.logger.Printf("BRPOP %q: bad payload %q: %v", key, res[1], err)
			return err
		}
		return nil
	}
}
