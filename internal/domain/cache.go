package domain

import "context"

// Простой k/v интерфейс. Реализация — Redis.
type Cache interface {
	// nil, nil — ключа нет
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Ping(context.Context) error
	Close()
}
