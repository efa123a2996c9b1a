package ui

import (
	"context"

	"github.com/jsamuelsen/quotebox/internal/domain"
)

// View draws what the controller renders. Implementations must not call
// back into the Controller synchronously.
type View interface {
	ShowQuote(box QuoteBox)
	ApplyTheme(theme Theme)
	ShowFavorites(panel FavoritesPanel)
	SetPanelVisibility(v PanelVisibility)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(msg string)
}

// WindowOpener opens url in a new browsing context.
type WindowOpener interface {
	Open(url, target, features string)
}

// FavoritesStore loads and persists the whole favorites list.
// storage.FavoritesStore implements it.
type FavoritesStore interface {
	Load(ctx context.Context) domain.Favorites
	Save(ctx context.Context, favs domain.Favorites) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

type nopOpener struct{}

func (nopOpener) Open(string, string, string) {}
