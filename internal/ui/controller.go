package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/quotebox/internal/domain"
	"github.com/jsamuelsen/quotebox/internal/ports"
)

var (
	// ErrLoadInProgress is returned by LoadQuote while a fetch is in flight
	// or the previous quote is still animating in. The call is dropped.
	ErrLoadInProgress = errors.New("quote load already in progress")

	// ErrUnknownProvider is returned by Share for a provider with no URL scheme.
	ErrUnknownProvider = errors.New("unknown share provider")
)

// Config wires a Controller. Source, Favorites and View are required.
type Config struct {
	Source    ports.QuoteSource
	Favorites FavoritesStore
	View      View

	Notifier  Notifier
	Opener    WindowOpener
	Scheduler Scheduler
	Palette   *Palette

	// PageURL returns the address shared alongside a quote on Facebook.
	PageURL func() string

	// FadeOut and FadeIn default to DefaultFadeOut and DefaultFadeIn.
	FadeOut time.Duration
	FadeIn  time.Duration

	Logger *slog.Logger
}

// State is a snapshot of the controller's state.
type State struct {
	Current          *domain.Quote
	Favorites        []domain.Quote
	FavoritesVisible bool
	Displayed        QuoteBox
	Phase            Phase
	Theme            Theme
	Loading          bool
}

// Controller owns the quote client state and applies user actions to it.
// Methods are safe for concurrent use; the browser shell calls them from
// event callbacks and scheduled timers fire on their own goroutines.
type Controller struct {
	source    ports.QuoteSource
	store     FavoritesStore
	view      View
	notifier  Notifier
	opener    WindowOpener
	scheduler Scheduler
	palette   *Palette
	pageURL   func() string
	fadeOut   time.Duration
	fadeIn    time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	current *domain.Quote
	favs    domain.Favorites
	visible bool
	loading bool
	theme   Theme
	anim    transition
}

// NewController creates a controller. Panics if a required dependency is nil.
func NewController(cfg Config) *Controller {
	switch {
	case cfg.Source == nil:
		panic("Controller: Source is required")
	case cfg.Favorites == nil:
		panic("Controller: Favorites is required")
	case cfg.View == nil:
		panic("Controller: View is required")
	}

	c := &Controller{
		source:    cfg.Source,
		store:     cfg.Favorites,
		view:      cfg.View,
		notifier:  cfg.Notifier,
		opener:    cfg.Opener,
		scheduler: cfg.Scheduler,
		palette:   cfg.Palette,
		pageURL:   cfg.PageURL,
		fadeOut:   cfg.FadeOut,
		fadeIn:    cfg.FadeIn,
		logger:    cfg.Logger,
		favs:      domain.NewFavorites(nil),
	}

	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.opener == nil {
		c.opener = nopOpener{}
	}
	if c.scheduler == nil {
		c.scheduler = ClockScheduler{}
	}
	if c.palette == nil {
		c.palette = NewPalette(nil)
	}
	if c.pageURL == nil {
		c.pageURL = func() string { return "" }
	}
	if c.fadeOut <= 0 {
		c.fadeOut = DefaultFadeOut
	}
	if c.fadeIn <= 0 {
		c.fadeIn = DefaultFadeIn
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With(slog.String("component", "ui.Controller"))

	return c
}

// Start loads the persisted favorites, then the first quote. A failed
// first load is shown like any other.
func (c *Controller) Start(ctx context.Context) {
	c.LoadFavorites(ctx)

	if err := c.LoadQuote(ctx); err != nil {
		c.logger.DebugContext(ctx, "initial quote load failed", slog.Any("error", err))
	}
}

// LoadFavorites replaces the in-memory list with the persisted one and
// redraws the panel in its current state, closed unless it was already
// opened. Shells call it before binding controls so no edit can race it.
func (c *Controller) LoadFavorites(ctx context.Context) {
	favs := c.store.Load(ctx)

	c.mu.Lock()
	c.favs = favs
	c.view.SetPanelVisibility(RenderPanel(c.visible))
	if c.visible {
		c.view.ShowFavorites(RenderFavorites(c.favs))
	}
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "favorites loaded", slog.Int("count", favs.Len()))
}

// LoadQuote fetches a quote and animates it in. On failure the error
// message is animated in instead and the current quote is kept; the fetch
// error is returned for logging only.
func (c *Controller) LoadQuote(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || c.anim.phase != PhaseIdle {
		c.mu.Unlock()
		return ErrLoadInProgress
	}
	c.loading = true
	c.mu.Unlock()

	q, err := c.source.FetchQuote(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false

	if err != nil {
		c.logger.WarnContext(ctx, "quote fetch failed", slog.Any("error", err))
		c.beginTransitionLocked(MessageLoadError, "")
		return fmt.Errorf("loading quote: %w", err)
	}

	cp := *q
	c.current = &cp
	c.beginTransitionLocked(cp.Text, cp.Author)

	return nil
}

// beginTransitionLocked applies a fresh theme and starts fading the old
// text out. The theme does not wait for the animation.
func (c *Controller) beginTransitionLocked(text, author string) {
	c.theme = c.palette.Pick()
	c.view.ApplyTheme(c.theme)

	c.anim.phase = PhaseFadingOut
	c.anim.nextText, c.anim.nextAuthor = text, author
	c.view.ShowQuote(c.anim.shown())

	c.anim.timer = c.scheduler.AfterFunc(c.fadeOut, c.swap)
}

func (c *Controller) swap() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.anim.phase != PhaseFadingOut {
		return
	}

	c.anim.phase = PhaseSwapping
	c.anim.swapIn()

	c.anim.phase = PhaseFadingIn
	c.view.ShowQuote(c.anim.shown())

	c.anim.timer = c.scheduler.AfterFunc(c.fadeIn, c.settle)
}

func (c *Controller) settle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.anim.phase != PhaseFadingIn {
		return
	}

	c.anim.phase = PhaseIdle
	c.anim.timer = nil
	c.view.ShowQuote(c.anim.shown())
}

// SaveFavorite appends the current quote to the favorites and persists the
// list. Without a current quote it does nothing. A duplicate is reported
// to the user and leaves the list unchanged. If persisting fails the list
// is rolled back and the error returned.
func (c *Controller) SaveFavorite(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}

	prev := c.favs.Items()

	if err := c.favs.Add(*c.current); err != nil {
		if domain.IsConflict(err) {
			c.notifier.Notify(MessageDuplicate)
			return nil
		}
		return err
	}

	if err := c.store.Save(ctx, c.favs); err != nil {
		c.favs = domain.NewFavorites(prev)
		c.logger.ErrorContext(ctx, "saving favorites failed", slog.Any("error", err))
		return fmt.Errorf("saving favorite: %w", err)
	}

	c.notifier.Notify(MessageSaved)
	c.view.ShowFavorites(RenderFavorites(c.favs))

	return nil
}

// RemoveFavorite deletes the favorite at index i and persists the list.
// An out-of-range index returns a domain.NotFoundError and changes nothing.
func (c *Controller) RemoveFavorite(ctx context.Context, i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.favs.Items()

	if _, err := c.favs.RemoveAt(i); err != nil {
		return err
	}

	if err := c.store.Save(ctx, c.favs); err != nil {
		c.favs = domain.NewFavorites(prev)
		c.logger.ErrorContext(ctx, "saving favorites failed", slog.Any("error", err))
		return fmt.Errorf("removing favorite: %w", err)
	}

	c.view.ShowFavorites(RenderFavorites(c.favs))

	return nil
}

// ShowFavorites opens the panel, hides its trigger and redraws the list.
func (c *Controller) ShowFavorites() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible = true
	c.view.SetPanelVisibility(RenderPanel(true))
	c.view.ShowFavorites(RenderFavorites(c.favs))
}

// HideFavorites closes the panel and shows its trigger again.
func (c *Controller) HideFavorites() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visible = false
	c.view.SetPanelVisibility(RenderPanel(false))
}

// Share opens the provider's share page for the current quote. Without a
// current quote it does nothing.
func (c *Controller) Share(p Provider) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}

	url, ok := ShareURL(p, *c.current, c.pageURL())
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}

	c.opener.Open(url, ShareTarget, ShareFeatures)

	return nil
}

// Stop cancels a pending animation step and settles the box on whatever
// text it was heading to.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.anim.timer != nil {
		c.anim.timer.Stop()
		c.anim.timer = nil
	}
	if c.anim.phase == PhaseIdle {
		return
	}

	c.anim.swapIn()
	c.anim.phase = PhaseIdle
	c.view.ShowQuote(c.anim.shown())
}

// State returns a snapshot of the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Favorites:        c.favs.Items(),
		FavoritesVisible: c.visible,
		Displayed:        c.anim.shown(),
		Phase:            c.anim.phase,
		Theme:            c.theme,
		Loading:          c.loading,
	}
	if c.current != nil {
		cp := *c.current
		s.Current = &cp
	}
	return s
}
