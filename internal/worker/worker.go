package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/disintegration/imaging"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Source отдаёт задания; Next* блокируются до задания или отмены контекста.
type Source interface {
	NextFile(ctx context.Context) (domain.FileJob, error)
	NextUser(ctx context.Context) (domain.UserJob, error)
}

// Worker обрабатывает фоновые задания: миниатюры изображений и
// приветствие новых пользователей.
type Worker struct {
	logger  *log.Logger
	files   domain.FilesRepo
	users   domain.UsersRepo
	storage domain.BlobStorage
	src     Source
}

func New(logger *log.Logger, files domain.FilesRepo, users domain.UsersRepo, storage domain.BlobStorage, src Source) *Worker {
	return &Worker{logger: logger, files: files, users: users, storage: storage, src: src}
}

// Run крутит оба консьюмера до отмены контекста.
func (w *Worker) Run(ctx context.Context) {
	go w.consumeUsers(ctx)
	w.consumeFiles(ctx)
}

func (w *Worker) consumeFiles(ctx context.Context) {
	for {
		job, err := w.src.NextFile(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Printf("file queue: %v", err)
			continue
		}
		if err := w.ProcessFileJob(ctx, job); err != nil {
			w.logger.Printf("file job user=%s file=%s failed: %v", job.UserID, job.FileID, err)
		}
	}
}

func (w *Worker) consumeUsers(ctx context.Context) {
	for {
		job, err := w.src.NextUser(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Printf("user queue: %v", err)
			continue
		}
		if err := w.ProcessUserJob(ctx, job); err != nil {
			w.logger.Printf("user job user=%s failed: %v", job.UserID, err)
		}
	}
}

// ProcessFileJob строит миниатюры всех ширин для изображения.
// Задание несёт и владельца, и файл — выборка остаётся owner-scoped.
func (w *Worker) ProcessFileJob(ctx context.Context, job domain.FileJob) error {
	f, err := w.files.FileByID(ctx, job.FileID, job.UserID)
	if err != nil {
		return fmt.Errorf("file lookup: %w", err)
	}
	// политику перепроверяем на стороне воркера: очередь могли наполнить старые продюсеры
	if !domain.ThumbnailEligible(f.Type) {
		w.logger.Printf("skip file=%s type=%s: not thumbnail eligible", f.ID, f.Type)
		return nil
	}

	data, err := w.storage.Get(ctx, f.StorageKey)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	for _, width := range domain.ThumbnailWidths {
		thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, encodeFormat(format)); err != nil {
			return fmt.Errorf("encode %d: %w", width, err)
		}
		if err := w.storage.PutVariant(ctx, f.StorageKey, width, buf.Bytes()); err != nil {
			return fmt.Errorf("store %d: %w", width, err)
		}
		w.logger.Printf("thumbnail file=%s width=%d ok", f.ID, width)
	}
	return nil
}

// ProcessUserJob логирует приветствие нового пользователя.
func (w *Worker) ProcessUserJob(ctx context.Context, job domain.UserJob) error {
	u, err := w.users.UserByID(ctx, job.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %s not found", job.UserID)
		}
		return err
	}
	w.logger.Printf("Welcome %s", u.Email)
	return nil
}

func encodeFormat(format string) imaging.Format {
	switch format {
	case "png":
		return imaging.PNG
	case "gif":
		return imaging.GIF
	case "bmp":
		return imaging.BMP
	case "tiff":
		return imaging.TIFF
	default:
		return imaging.JPEG
	}
}
