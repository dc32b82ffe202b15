package domain

import (
	"context"
	"time"
)

// Сессия: непрозрачный токен -> user id, срок жизни гасит само хранилище (TTL),
// приложение сроки не проверяет.

// SessionTTL — фиксированное время жизни сессии.
const SessionTTL = 24 * time.Hour

// SessionKey — ключ сессии в KV-хранилище.
func SessionKey(token string) string { return "auth_" + token }

// Хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encodedHash string) (bool, error)
}

// Привязка токена к пользователю на время TTL (реализация — Redis)
type SessionStore interface {
	Put(ctx context.Context, token string, userID UserID, ttl time.Duration) error
	// ok=false — токен не выдавался либо истёк; это не ошибка
	Get(ctx context.Context, token string) (userID UserID, ok bool, err error)
	// Удаление отсутствующего ключа — не ошибка
	Del(ctx context.Context, token string) error
}
