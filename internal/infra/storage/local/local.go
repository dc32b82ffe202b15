package local

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Storage пишет контент на локальный диск под корнем root.
// Каждый Put получает свежий uuid-путь — конкурирующие записи не пересекаются.
type Storage struct {
	root   string
	logger *log.Logger
}

func New(root string, logger *log.Logger) (*Storage, error) {
	if root == "" {
		return nil, errors.New("empty storage root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Storage{root: root, logger: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

func (s *Storage) Put(ctx context.Context, data []byte) (string, error) {
	// каталог могли снести под работающим сервисом
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", err
	}
	key := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(key, data, 0o644); err != nil {
		s.logger.Printf("PUT %q failed: %v", key, err)
		return "", err
	}
	s.logger.Printf("PUT %q ok (%d bytes)", key, len(data))
	return key, nil
}

func (s *Storage) Get(_ context.Context, storageKey string) ([]byte, error) {
	return s.read(storageKey)
}

func (s *Storage) PutVariant(_ context.Context, storageKey string, width int, data []byte) error {
	key := variantKey(storageKey, width)
	if err := os.WriteFile(key, data, 0o644); err != nil {
		s.logger.Printf("PUT %q failed: %v", key, err)
		return err
	}
	s.logger.Printf("PUT %q ok (%d bytes)", key, len(data))
	return nil
}

func (s *Storage) GetVariant(_ context.Context, storageKey string, width int) ([]byte, error) {
	return s.read(variantKey(storageKey, width))
}

func (s *Storage) Ping(context.Context) error {
	_, err := os.Stat(s.root)
	return err
}

// Отсутствие байтов на диске — "данных нет" (404), не инфраструктурный сбой.
func (s *Storage) read(key string) ([]byte, error) {
	b, err := os.ReadFile(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Printf("GET %q: not found", key)
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("GET %q failed: %v", key, err)
		return nil, err
	}
	s.logger.Printf("GET %q ok (%d bytes)", key, len(b))
	return b, nil
}

func variantKey(storageKey string, width int) string {
	return fmt.Sprintf("%s_%d", storageKey, width)
}
