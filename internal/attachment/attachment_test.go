package attachment

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/returns"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type memStorage struct {
	puts map[string][]byte
	err  error
}

func (m *memStorage) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.puts == nil {
		m.puts = map[string][]byte{}
	}
	m.puts[key] = data
	return "https://cdn.example.com/" + key, nil
}

func newUploader(s Storage) *Uploader {
	v := returns.NewValidator(nil, nil, returns.DefaultOptions(), zap.NewNop())
	return NewUploader(s, v, zap.NewNop())
}

func TestUploader_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores png", func(t *testing.T) {
		s := &memStorage{}
		img, err := newUploader(s).Upload(ctx, pngHeader)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.True(t, strings.HasSuffix(img.Key, ".png"))
		assert.Equal(t, "https://cdn.example.com/"+img.Key, img.URL)
		assert.Len(t, s.puts, 1)
	})

	t.Run("Rejects text", func(t *testing.T) {
		s := &memStorage{}
		_, err := newUploader(s).Upload(ctx, []byte("plain text, not an image"))
		require.Error(t, err)
		assert.Equal(t, returns.KindValidationFailed, returns.KindOf(err))
		assert.Empty(t, s.puts)
	})

	t.Run("Storage failure", func(t *testing.T) {
		s := &memStorage{err: errors.New("bucket gone")}
		_, err := newUploader(s).Upload(ctx, pngHeader)
		require.Error(t, err)
		assert.Equal(t, returns.KindCollaboratorFailure, returns.KindOf(err))
	})
}

func TestLocal_Put(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	l, err := NewLocal(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := l.Put(ctx, "photo.png", "image/png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photo.png", url)

	got, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, got)

	_, err = l.Put(ctx, "../escape.png", "image/png", pngHeader)
	assert.Error(t, err)
}
