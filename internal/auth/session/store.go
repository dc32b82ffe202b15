package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/EgorLis/file-vault/internal/domain"
)

// KV — минимальный интерфейс, который нам нужен от кеша.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
}

// Store хранит привязку токен -> user id с TTL.
// Истечение обеспечивает само хранилище, явных проверок срока нет.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store { return &Store{kv: kv} }

var _ domain.SessionStore = (*Store)(nil)

func (s *Store) Put(ctx context.Context, token string, userID domain.UserID, ttl time.Duration) error {
	return s.kv.Set(ctx, domain.SessionKey(token), []byte(userID.String()), int(ttl.Seconds()))
}

func (s *Store) Get(ctx context.Context, token string) (domain.UserID, bool, error) {
	b, err := s.kv.Get(ctx, domain.SessionKey(token))
	if err != nil {
		return uuid.Nil, false, err
	}
	if len(b) == 0 {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(string(b))
	if err != nil {
		// мусор под ключом — считаем, что сессии нет
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// Del идемпотентен: удаление отсутствующего ключа — не ошибка.
func (s *Store) Del(ctx context.Context, token string) error {
	return s.kv.Del(ctx, domain.SessionKey(token))
}
