package domain

import "context"

// Хранилище бинарного контента (локальный диск или S3/MinIO).
// Put каждый раз генерирует свежий ключ — конкурирующие загрузки не пересекаются.
type BlobStorage interface {
	Put(ctx context.Context, data []byte) (storageKey string, err error)
	// ErrNotFound, если по ключу ничего нет
	Get(ctx context.Context, storageKey string) ([]byte, error)

	// Варианты (миниатюры) лежат рядом с оригиналом под ключом "<storageKey>_<width>"
	PutVariant(ctx context.Context, storageKey string, width int, data []byte) error
	GetVariant(ctx context.Context, storageKey string, width int) ([]byte, error)

	Ping(context.Context) error
}
