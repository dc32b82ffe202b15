package domain

import "context"

// Задания фоновой обработки. Отправка — fire-and-forget:
// успешная постановка в очередь считается финальным исходом.

type FileJob struct {
	UserID UserID `json:"userId"`
	FileID FileID `json:"fileId"`
}

type UserJob struct {
	UserID UserID `json:"userId"`
}

type JobQueue interface {
	EnqueueFile(ctx context.Context, job FileJob) error
	EnqueueUser(ctx context.Context, job UserJob) error
}
