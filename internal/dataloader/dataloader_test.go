package dataloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/UkralStul/blog-posts-service/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDirectory считает обращения к справочнику.
type countingDirectory struct {
	mu    sync.Mutex
	calls int
	names map[string]string
}

func (d *countingDirectory) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	result := make(map[string]string)
	for _, id := range ids {
		if n, ok := d.names[id]; ok {
			result[id] = n
		}
	}
	return result, nil
}

func newTestDirectory() *countingDirectory {
	return &countingDirectory{names: map[string]string{"u1": "Alice", "u2": "Bob"}}
}

func TestNameResolver_WithoutLoader(t *testing.T) {
	dir := newTestDirectory()
	r := NameResolver{Directory: dir}

	name, err := r.ResolveDisplayName(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = r.ResolveDisplayName(context.Background(), "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNameResolver_BatchesWithinRequest(t *testing.T) {
	dir := newTestDirectory()
	r := NameResolver{Directory: dir}

	var got sync.Map
	handler := Middleware(dir)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.NotNil(t, For(req.Context()))

		var wg sync.WaitGroup
		for _, id := range []string{"u1", "u2", "u1"} {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				name, err := r.ResolveDisplayName(req.Context(), id)
				if err == nil {
					got.Store(id, name)
				}
			}(id)
		}
		wg.Wait()

		_, err := r.ResolveDisplayName(req.Context(), "ghost")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	alice, _ := got.Load("u1")
	bob, _ := got.Load("u2")
	assert.Equal(t, "Alice", alice)
	assert.Equal(t, "Bob", bob)

	dir.mu.Lock()
	defer dir.mu.Unlock()
	assert.LessOrEqual(t, dir.calls, 3)
}

func TestFor_NoLoaders(t *testing.T) {
	assert.Nil(t, For(context.Background()))
}
