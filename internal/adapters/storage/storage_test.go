package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/mocks"
)

var (
	wilde  = domain.Quote{Text: "Be yourself.", Author: "Oscar Wilde"}
	twain  = domain.Quote{Text: "Get busy.", Author: "Mark Twain"}
	seneca = domain.Quote{Text: "Luck is preparation.", Author: "Seneca"}
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("zero value", func(t *testing.T) {
		var s MemoryStore

		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, s.Set(ctx, "k", "v"))

		v, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("seed is copied", func(t *testing.T) {
		seed := map[string]string{"k": "v"}
		s := NewMemoryStore(seed)
		seed["k"] = "changed"

		v, _, _ := s.Get(ctx, "k")
		assert.Equal(t, "v", v)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		s := NewMemoryStore(nil)
		assert.ErrorIs(t, s.Set(cctx, "k", "v"), context.Canceled)
		_, _, err := s.Get(cctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFavoritesStore_Load(t *testing.T) {
	tests := []struct {
		name  string
		seed  map[string]string
		want  []domain.Quote
		debug string
	}{
		{
			name: "absent key",
			want: []domain.Quote{},
		},
		{
			name: "valid list keeps order",
			seed: map[string]string{FavoritesKey: `[{"text":"Be yourself.","author":"Oscar Wilde"},{"text":"Get busy.","author":"Mark Twain"}]`},
			want: []domain.Quote{wilde, twain},
		},
		{
			name: "empty array",
			seed: map[string]string{FavoritesKey: `[]`},
			want: []domain.Quote{},
		},
		{
			name:  "invalid json",
			seed:  map[string]string{FavoritesKey: `{not json`},
			want:  []domain.Quote{},
			debug: "favorites corrupt",
		},
		{
			name:  "wrong shape",
			seed:  map[string]string{FavoritesKey: `{"text":"x"}`},
			want:  []domain.Quote{},
			debug: "favorites corrupt",
		},
		{
			name: "stored duplicates are kept",
			seed: map[string]string{FavoritesKey: `[{"text":"Be yourself.","author":"Oscar Wilde"},{"text":"Be yourself.","author":"Oscar Wilde"}]`},
			want: []domain.Quote{wilde, wilde},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			favs := NewFavoritesStore(NewMemoryStore(tt.seed), logger).Load(context.Background())

			assert.Equal(t, tt.want, favs.Items())
			if tt.debug != "" {
				assert.Contains(t, buf.String(), "level=DEBUG")
				assert.Contains(t, buf.String(), tt.debug)
			}
		})
	}
}

func TestFavoritesStore_LoadReadError(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, FavoritesKey).Return("", false, errors.New("SecurityError"))

	favs := NewFavoritesStore(kv, nil).Load(context.Background())

	assert.Zero(t, favs.Len())
}

func TestFavoritesStore_SaveOverwritesFullList(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore(map[string]string{FavoritesKey: `[{"text":"stale","author":"x"}]`})
	store := NewFavoritesStore(kv, nil)

	require.NoError(t, store.Save(ctx, domain.NewFavorites([]domain.Quote{wilde, twain})))

	raw, ok, err := kv.Get(ctx, FavoritesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"text":"Be yourself.","author":"Oscar Wilde"},{"text":"Get busy.","author":"Mark Twain"}]`, raw)
}

func TestFavoritesStore_SaveEmptyWritesArray(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore(nil)

	require.NoError(t, NewFavoritesStore(kv, nil).Save(ctx, domain.NewFavorites(nil)))

	raw, _, _ := kv.Get(ctx, FavoritesKey)
	assert.Equal(t, "[]", raw)
}

func TestFavoritesStore_SaveError(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().Set(mock.Anything, FavoritesKey, mock.Anything).Return(errors.New("QuotaExceededError"))

	err := NewFavoritesStore(kv, nil).Save(context.Background(), domain.NewFavorites([]domain.Quote{wilde}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), FavoritesKey)
}

func TestFavoritesStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore(nil)
	store := NewFavoritesStore(kv, nil)

	favs := store.Load(ctx)
	require.NoError(t, favs.Add(wilde))
	require.NoError(t, favs.Add(twain))
	require.NoError(t, favs.Add(seneca))
	require.NoError(t, store.Save(ctx, favs))

	_, err := favs.RemoveAt(1)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, favs))

	reloaded := NewFavoritesStore(kv, nil).Load(ctx)
	assert.Equal(t, []domain.Quote{wilde, seneca}, reloaded.Items())
}

func TestNewFavoritesStore_NilStorePanics(t *testing.T) {
	assert.Panics(t, func() { NewFavoritesStore(nil, nil) })
}
