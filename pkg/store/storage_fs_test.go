package store

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_WriteRead(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Write(ctx, "test-key", []byte("test-data"))
	require.NoError(t, err)

	data, err := storage.Read(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, []byte("test-data"), data)
}

func TestFilesystemStorage_Write_Overwrite(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Write(ctx, "test-key", []byte("original"))
	require.NoError(t, err)

	err = storage.Write(ctx, "test-key", []byte("updated"))
	require.NoError(t, err)

	data, err := storage.Read(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), data)
}

func TestFilesystemStorage_Read_NotFound(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read(ctx, "nonexistent-key")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystemStorage_NestedKeys(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Write(ctx, "my-site/index.html", []byte("<html>"))
	require.NoError(t, err)
	err = storage.Write(ctx, "my-site/styles.css", []byte("body{}"))
	require.NoError(t, err)
	err = storage.Write(ctx, "other-site/index.html", []byte("<html>"))
	require.NoError(t, err)

	keys, err := storage.List(ctx, "my-site/")
	require.NoError(t, err)
	assert.Equal(t, []string{"my-site/styles.css", "my-site/index.html"}, keys)
}

func TestFilesystemStorage_Delete(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Write(ctx, "test-key", []byte("test-data"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "test-key"))
	_, err = storage.Read(ctx, "test-key")
	assert.True(t, os.IsNotExist(err))

	// deleting again is idempotent
	require.NoError(t, storage.Delete(ctx, "test-key"))
}

func TestFilesystemStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, storage.Write(ctx, "shared-key", []byte("data")))
			_, _ = storage.Read(ctx, "shared-key")
		}()
	}
	wg.Wait()
}
