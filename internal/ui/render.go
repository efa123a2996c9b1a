package ui

import (
	"github.com/jsamuelsen/quotebox/internal/domain"
)

// User-facing strings.
const (
	MessageLoadError    = "Error loading quote."
	MessageDuplicate    = "This quote is already in your favorites!"
	MessageSaved        = "Quote saved to favorites!"
	MessageNoFavorites  = "No favorites yet."
	LabelRemoveFavorite = "Remove favorite quote"
)

// BoxClass is the animation class on the quote box element.
type BoxClass string

const (
	ClassNone    BoxClass = ""
	ClassFadeOut BoxClass = "fade-out"
	ClassFadeIn  BoxClass = "fade-in"
)

// QuoteBox is what the quote element shows.
type QuoteBox struct {
	Text   string
	Author string
	Class  BoxClass
}

// RenderQuoteBox formats text and author for display. The author line is
// "— author", or empty when there is no author.
func RenderQuoteBox(text, author string, class BoxClass) QuoteBox {
	return QuoteBox{
		Text:   text,
		Author: domain.Quote{Author: author}.AuthorLine(),
		Class:  class,
	}
}

// ThemeStyle is a theme resolved for a page with a given number of shapes.
type ThemeStyle struct {
	Background  string
	ShapeColors []string
}

// RenderTheme resolves t for shapes decorative elements.
func RenderTheme(t Theme, shapes int) ThemeStyle {
	colors := make([]string, max(shapes, 0))
	for i := range colors {
		colors[i] = t.ShapeColor(i)
	}
	return ThemeStyle{Background: t.Background(), ShapeColors: colors}
}

// FavoriteItem is one row in the favorites list. Index is what
// RemoveFavorite expects back.
type FavoriteItem struct {
	Index       int
	Label       string
	RemoveLabel string
}

// FavoritesPanel is the favorites list contents. An empty list renders as a
// single placeholder with no remove control.
type FavoritesPanel struct {
	Items       []FavoriteItem
	Placeholder string
}

// RenderFavorites lists favs in display order.
func RenderFavorites(favs domain.Favorites) FavoritesPanel {
	if favs.Len() == 0 {
		return FavoritesPanel{Placeholder: MessageNoFavorites}
	}

	items := make([]FavoriteItem, 0, favs.Len())
	for i, q := range favs.Items() {
		items = append(items, FavoriteItem{
			Index:       i,
			Label:       q.String(),
			RemoveLabel: LabelRemoveFavorite,
		})
	}
	return FavoritesPanel{Items: items}
}

// PanelVisibility says which of the favorites panel and its "show" trigger
// is hidden. Exactly one of them is.
type PanelVisibility struct {
	PanelHidden   bool
	TriggerHidden bool
}

// RenderPanel returns the visibility for an open or closed panel.
func RenderPanel(open bool) PanelVisibility {
	return PanelVisibility{PanelHidden: !open, TriggerHidden: open}
}
