//go:build js && wasm

package web

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"syscall/js"

	"github.com/jsamuelsen/quotebox/internal/ui"
)

// Element IDs in index.html.
const (
	idQuoteBox         = "quoteBox"
	idQuoteText        = "quoteText"
	idQuoteAuthor      = "quoteAuthor"
	idRefresh          = "refreshBtn"
	idSaveFavorite     = "saveFavBtn"
	idFavoritesSection = "favoritesSection"
	idFavoritesList    = "favoritesList"
	idCloseFavorites   = "closeFavBtn"
	idShowFavorites    = "showFavBtn"
	idShareTwitter     = "shareTwitter"
	idShareFacebook    = "shareFacebook"

	shapeSelector = ".background-shapes .shape"
)

// ErrMissingElement is returned by NewDOM when the page lacks a required element.
var ErrMissingElement = errors.New("missing page element")

// DOM implements ui.View, ui.Notifier and ui.WindowOpener over the page.
type DOM struct {
	window js.Value
	doc    js.Value
	el     map[string]js.Value
	logger *slog.Logger

	mu       sync.Mutex
	onRemove func(int)
	rowFuncs []js.Func
}

// NewDOM looks up every element the client draws into.
func NewDOM(logger *slog.Logger) (*DOM, error) {
	if logger == nil {
		logger = slog.Default()
	}

	window := js.Global()
	doc := window.Get("document")

	d := &DOM{window: window, doc: doc, el: make(map[string]js.Value), logger: logger}
	for _, id := range []string{
		idQuoteBox, idQuoteText, idQuoteAuthor, idRefresh, idSaveFavorite,
		idFavoritesSection, idFavoritesList, idCloseFavorites, idShowFavorites,
		idShareTwitter, idShareFacebook,
	} {
		v := doc.Call("getElementById", id)
		if v.IsNull() {
			return nil, errors.Join(ErrMissingElement, errors.New(id))
		}
		d.el[id] = v
	}

	return d, nil
}

// PageURL is the current document location, shared with Facebook links.
func (d *DOM) PageURL() string {
	return d.doc.Get("location").Get("href").String()
}

// Origin is the page origin, used as the proxy base URL.
func (d *DOM) Origin() string {
	return d.window.Get("location").Get("origin").String()
}

// ShowQuote implements ui.View.
func (d *DOM) ShowQuote(box ui.QuoteBox) {
	d.el[idQuoteText].Set("textContent", box.Text)
	d.el[idQuoteAuthor].Set("textContent", box.Author)

	classes := d.el[idQuoteBox].Get("classList")
	classes.Call("remove", string(ui.ClassFadeOut), string(ui.ClassFadeIn))
	if box.Class != ui.ClassNone {
		classes.Call("add", string(box.Class))
	}
}

// ApplyTheme implements ui.View.
func (d *DOM) ApplyTheme(theme ui.Theme) {
	shapes := d.doc.Call("querySelectorAll", shapeSelector)
	style := ui.RenderTheme(theme, shapes.Length())

	d.doc.Get("body").Get("style").Set("background", style.Background)
	for i, color := range style.ShapeColors {
		shapes.Index(i).Get("style").Set("backgroundColor", color)
	}
}

// ShowFavorites implements ui.View. Labels are set as text, never as markup.
func (d *DOM) ShowFavorites(panel ui.FavoritesPanel) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, fn := range d.rowFuncs {
		fn.Release()
	}
	d.rowFuncs = d.rowFuncs[:0]

	list := d.el[idFavoritesList]
	list.Set("innerHTML", "")

	if len(panel.Items) == 0 {
		li := d.doc.Call("createElement", "li")
		li.Set("textContent", panel.Placeholder)
		list.Call("appendChild", li)
		return
	}

	for _, item := range panel.Items {
		li := d.doc.Call("createElement", "li")
		li.Set("tabIndex", 0)

		label := d.doc.Call("createElement", "span")
		label.Set("textContent", item.Label)

		btn := d.doc.Call("createElement", "button")
		btn.Set("className", "remove-fav-btn")
		btn.Set("textContent", "✕")
		btn.Call("setAttribute", "aria-label", item.RemoveLabel)
		btn.Get("dataset").Set("index", strconv.Itoa(item.Index))

		index := item.Index
		fn := js.FuncOf(func(js.Value, []js.Value) any {
			d.mu.Lock()
			onRemove := d.onRemove
			d.mu.Unlock()
			if onRemove != nil {
				onRemove(index)
			}
			return nil
		})
		d.rowFuncs = append(d.rowFuncs, fn)
		btn.Call("addEventListener", "click", fn)

		li.Call("appendChild", label)
		li.Call("appendChild", btn)
		list.Call("appendChild", li)
	}
}

// SetPanelVisibility implements ui.View.
func (d *DOM) SetPanelVisibility(v ui.PanelVisibility) {
	d.el[idFavoritesSection].Set("hidden", v.PanelHidden)
	d.el[idShowFavorites].Set("hidden", v.TriggerHidden)
}

// Notify implements ui.Notifier with a blocking alert.
func (d *DOM) Notify(msg string) {
	d.window.Call("alert", msg)
}

// Open implements ui.WindowOpener.
func (d *DOM) Open(url, target, features string) {
	d.window.Call("open", url, target, features)
}

// Bind attaches the page controls to ctrl. Handlers run controller calls on
// their own goroutines because a js.Func callback must not block on network
// I/O. The returned function detaches them.
func (d *DOM) Bind(ctx context.Context, ctrl *ui.Controller) (release func()) {
	var funcs []js.Func

	on := func(id string, action func()) {
		fn := js.FuncOf(func(js.Value, []js.Value) any {
			go action()
			return nil
		})
		funcs = append(funcs, fn)
		d.el[id].Call("addEventListener", "click", fn)
	}

	logErr := func(op string, err error) {
		if err != nil {
			d.logger.WarnContext(ctx, op+" failed", slog.Any("error", err))
		}
	}

	on(idRefresh, func() {
		err := ctrl.LoadQuote(ctx)
		if errors.Is(err, ui.ErrLoadInProgress) {
			return
		}
		logErr("load quote", err)
	})
	on(idSaveFavorite, func() { logErr("save favorite", ctrl.SaveFavorite(ctx)) })
	on(idShowFavorites, ctrl.ShowFavorites)
	on(idCloseFavorites, ctrl.HideFavorites)
	on(idShareTwitter, func() { logErr("share", ctrl.Share(ui.ProviderTwitter)) })
	on(idShareFacebook, func() { logErr("share", ctrl.Share(ui.ProviderFacebook)) })

	d.mu.Lock()
	d.onRemove = func(i int) {
		go func() { logErr("remove favorite", ctrl.RemoveFavorite(ctx, i)) }()
	}
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		d.onRemove = nil
		for _, fn := range d.rowFuncs {
			fn.Release()
		}
		d.rowFuncs = nil
		d.mu.Unlock()

		for _, fn := range funcs {
			fn.Release()
		}
	}
}
