package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Внутренние причины отказа различимы для логов и тестов,
// но все укладываются в domain.ErrUnauth — наружу уходит один 401.
var (
	ErrNoToken   = fmt.Errorf("%w: token missing", domain.ErrUnauth)
	ErrNoSession = fmt.Errorf("%w: session missing or expired", domain.ErrUnauth)
	ErrNoUser    = fmt.Errorf("%w: user missing", domain.ErrUnauth)
	ErrBadCreds  = fmt.Errorf("%w: bad credentials", domain.ErrUnauth)
)

// Manager выпускает, проверяет и отзывает сессии. Он же — единая точка
// авторизации: каждый защищённый хендлер проходит через Authenticate.
type Manager struct {
	sessions domain.SessionStore
	users    domain.UsersRepo
	hasher   domain.PasswordHasher
}

func New(sessions domain.SessionStore, users domain.UsersRepo, hasher domain.PasswordHasher) *Manager {
	return &Manager{sessions: sessions, users: users, hasher: hasher}
}

// Login сверяет учётные данные и выпускает свежий непрозрачный токен
// со сроком жизни domain.SessionTTL.
func (m *Manager) Login(ctx context.Context, email, pswd string) (string, error) {
	if email == "" || pswd == "" {
		return "", ErrBadCreds
	}

	u, err := m.users.UserByEmail(ctx, email)
	if err != nil {
		// несуществующий email не отличаем от неверного пароля
		return "", ErrBadCreds
	}

	ok, err := m.hasher.Verify(pswd, string(u.PassHash))
	if err != nil || !ok {
		return "", ErrBadCreds
	}

	token := uuid.NewString()
	if err := m.sessions.Put(ctx, token, u.ID, domain.SessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Logout отзывает сессию. Повторный logout того же токена — не ошибка.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoToken
	}
	if err := m.sessions.Del(ctx, token); err != nil {
		return fmt.Errorf("drop session: %w", err)
	}
	return nil
}

// Authenticate резолвит токен в персистентного пользователя:
// токен -> сессия -> запись в БД. Любой обрыв цепочки — 401.
func (m *Manager) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrNoToken
	}

	userID, ok, err := m.sessions.Get(ctx, token)
	if err != nil {
		return domain.User{}, fmt.Errorf("session lookup: %w", err)
	}
	if !ok {
		return domain.User{}, ErrNoSession
	}

	u, err := m.users.UserByID(ctx, userID)
	if err != nil {
		return domain.User{}, ErrNoUser
	}
	return u, nil
}
