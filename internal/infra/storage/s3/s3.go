package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/EgorLis/file-vault/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

// Storage — реализация domain.BlobStorage поверх S3/MinIO
// (альтернатива локальному диску, выбирается через STORAGE_DRIVER=s3).
type Storage struct {
	cl     *minio.Client
	bucket string
	logger *log.Logger
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, logger: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

func (s *Storage) Put(ctx context.Context, data []byte) (string, error) {
	key := "files/" + uuid.NewString()
	_, err := s.cl.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{})
	if err != nil {
		s.logger.Printf("PUT %q failed: %v", key, err)
		return "", err
	}
	s.logger.Printf("PUT %q ok (%d bytes)", key, len(data))
	return key, nil
}

func (s *Storage) Get(ctx context.Context, storageKey string) ([]byte, error) {
	return s.read(ctx, storageKey)
}

func (s *Storage) PutVariant(ctx context.Context, storageKey string, width int, data []byte) error {
	key := variantKey(storageKey, width)
	_, err := s.cl.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{})
	if err != nil {
		s.logger.Printf("PUT %q failed: %v", key, err)
		return err
	}
	s.logger.Printf("PUT %q ok (%d bytes)", key, len(data))
	return nil
}

func (s *Storage) GetVariant(ctx context.Context, storageKey string, width int) ([]byte, error) {
	return s.read(ctx, variantKey(storageKey, width))
}

func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func (s *Storage) read(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.cl.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
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
