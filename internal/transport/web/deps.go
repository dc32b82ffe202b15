package web

import (
	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
	authv1 "github.com/EgorLis/file-vault/internal/transport/web/v1/auth"
)

type Repos struct {
	Users domain.UsersRepo
	Files domain.FilesRepo
}

// Sessions объединяет выпуск/отзыв сессий и проверку токена
// (в проде обе роли играет session.Manager).
type Sessions interface {
	authv1.SessionManager
	mw.Gate
}

type Deps struct {
	Repos    Repos
	Sessions Sessions
	Hasher   domain.PasswordHasher
	Storage  domain.BlobStorage
	Cache    domain.Cache
	Queue    domain.JobQueue
}
