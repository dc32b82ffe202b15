package local

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/file-vault/internal/domain"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(t.TempDir(), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return s
}

func TestPutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStorage(t)

	key, err := s.Put(ctx, []byte("Hello Webstack!"))
	require.NoError(t, err)
	require.NotEmpty(t, key)

	b, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Hello Webstack!", string(b))

	// разные загрузки — разные ключи
	key2, err := s.Put(ctx, []byte("Hello Webstack!"))
	require.NoError(t, err)
	assert.NotEqual(t, key, key2)
}

func TestGet_Missing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStorage(t)

	_, err := s.Get(ctx, s.root+"/nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVariants(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStorage(t)

	key, err := s.Put(ctx, []byte("original"))
	require.NoError(t, err)

	require.NoError(t, s.PutVariant(ctx, key, 100, []byte("thumb-100")))

	b, err := s.GetVariant(ctx, key, 100)
	require.NoError(t, err)
	assert.Equal(t, "thumb-100", string(b))

	_, err = s.GetVariant(ctx, key, 250)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
