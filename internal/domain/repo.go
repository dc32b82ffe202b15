package domain

import "context"

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	// ErrEmailTaken при конфликте уникальности email
	CreateUser(ctx context.Context, email string, passHash []byte) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type FilesRepo interface {
	CreateFile(ctx context.Context, f File) (File, error)

	// Все выборки ниже — owner-scoped: чужой id даёт ErrNotFound, не Forbidden.
	FileByID(ctx context.Context, id FileID, owner UserID) (File, error)
	// parent == nil — корень
	FilesByParent(ctx context.Context, owner UserID, parent *FileID) ([]File, error)
	SetPublic(ctx context.Context, id FileID, owner UserID, public bool) (File, error)

	// Родителя ищем без owner-фильтра: проверяются только существование и тип.
	ParentByID(ctx context.Context, id FileID) (File, error)

	CountFiles(ctx context.Context) (int64, error)
}
