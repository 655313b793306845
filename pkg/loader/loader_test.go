package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/loader"
)

func TestFSLoader(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en-US/_.json": {Data: []byte(`{"hello":"Hello"}`)},
	}
	l := loader.NewFS(fsys)

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()
		data, err := l.Fetch(context.Background(), "en-US/_.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hello":"Hello"}`, string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := l.Fetch(context.Background(), "pt-BR/_.json")
		assert.ErrorIs(t, err, loader.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := l.Fetch(ctx, "en-US/_.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPLoader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lang/en-US/_.json":
			_, _ = w.Write([]byte(`{"hello":"Hello"}`))
		case "/lang/boom/_.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	l := loader.NewHTTP(srv.URL + "/lang")

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		data, err := l.Fetch(context.Background(), "en-US/_.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hello":"Hello"}`, string(data))
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		t.Parallel()
		_, err := l.Fetch(context.Background(), "fr-FR/_.json")
		assert.ErrorIs(t, err, loader.ErrNotFound)
	})

	t.Run("5xx maps to fetch failure", func(t *testing.T) {
		t.Parallel()
		_, err := l.Fetch(context.Background(), "boom/_.json")
		assert.ErrorIs(t, err, loader.ErrFetchFailed)
	})
}

func TestCachedLoader(t *testing.T) {
	t.Parallel()

	t.Run("fetches once per path", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		inner := loader.Func(func(_ context.Context, path string) ([]byte, error) {
			calls.Add(1)
			return []byte(path), nil
		})
		l := loader.Cached(inner)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				data, err := l.Fetch(context.Background(), "en/_.json")
				assert.NoError(t, err)
				assert.Equal(t, "en/_.json", string(data))
			}()
		}
		wg.Wait()

		data, err := l.Fetch(context.Background(), "en/_.json")
		require.NoError(t, err)
		assert.Equal(t, "en/_.json", string(data))
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		inner := loader.Func(func(_ context.Context, _ string) ([]byte, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("transient")
			}
			return []byte("ok"), nil
		})
		l := loader.Cached(inner)

		_, err := l.Fetch(context.Background(), "x")
		require.Error(t, err)

		data, err := l.Fetch(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, "ok", string(data))
	})

	t.Run("invalidate forces refetch", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		inner := loader.Func(func(_ context.Context, _ string) ([]byte, error) {
			calls.Add(1)
			return []byte("v"), nil
		})
		l := loader.Cached(inner)

		_, err := l.Fetch(context.Background(), "a")
		require.NoError(t, err)
		l.Invalidate("a")
		_, err = l.Fetch(context.Background(), "a")
		require.NoError(t, err)
		assert.EqualValues(t, 2, calls.Load())
	})
}
