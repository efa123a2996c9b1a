package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/ports"
)

// FavoritesKey is the store key holding the serialized favorites list.
const FavoritesKey = "quoteFavorites"

// FavoritesStore loads and saves the whole favorites list under FavoritesKey.
type FavoritesStore struct {
	kv     ports.KeyValueStore
	logger *slog.Logger
}

// NewFavoritesStore creates a store over kv. Panics if kv is nil; a nil
// logger defaults to slog.Default().
func NewFavoritesStore(kv ports.KeyValueStore, logger *slog.Logger) *FavoritesStore {
	if kv == nil {
		panic("FavoritesStore: KeyValueStore is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FavoritesStore{
		kv:     kv,
		logger: logger.With(slog.String("component", "storage.FavoritesStore")),
	}
}

// Load returns the persisted list. A missing key, a read error or a value
// that is not a JSON array of quotes all yield an empty list; the cause is
// logged at debug and never surfaced. Duplicates already in the stored
// value are kept.
func (s *FavoritesStore) Load(ctx context.Context) domain.Favorites {
	raw, ok, err := s.kv.Get(ctx, FavoritesKey)
	if err != nil {
		s.logger.DebugContext(ctx, "favorites unreadable, starting empty", slog.Any("error", err))
		return domain.NewFavorites(nil)
	}
	if !ok {
		return domain.NewFavorites(nil)
	}

	var items []domain.Quote
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.DebugContext(ctx, "favorites corrupt, starting empty",
			slog.Any("error", err),
			slog.Int("bytes", len(raw)),
		)
		return domain.NewFavorites(nil)
	}

	return domain.NewFavorites(items)
}

// Save overwrites the stored value with the full list.
func (s *FavoritesStore) Save(ctx context.Context, favs domain.Favorites) error {
	items := favs.Items()

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	if err := s.kv.Set(ctx, FavoritesKey, string(raw)); err != nil {
		return fmt.Errorf("writing %s: %w", FavoritesKey, err)
	}

	s.logger.DebugContext(ctx, "favorites saved", slog.Int("count", len(items)))
	return nil
}
