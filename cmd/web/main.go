//go:build js && wasm

// Package main is the browser entry point, compiled to main.wasm and loaded
// by web/static/index.html.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotebox/internal/adapters/storage"
	"github.com/jsamuelsen/quotebox/internal/adapters/web"
	"github.com/jsamuelsen/quotebox/internal/platform/config"
	"github.com/jsamuelsen/quotebox/internal/platform/logging"
	"github.com/jsamuelsen/quotebox/internal/ports"
	"github.com/jsamuelsen/quotebox/internal/ui"
)

// Version is injected via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Keep the runtime alive for event callbacks.
	select {}
}

func run() error {
	ctx := context.Background()

	// Stdout is the browser console.
	logger := logging.New(&logging.Config{
		Level:   "info",
		Format:  "text",
		Service: "quotebox-web",
		Version: Version,
	})
	slog.SetDefault(logger)

	dom, err := web.NewDOM(logger)
	if err != nil {
		return fmt.Errorf("binding page: %w", err)
	}

	// Same origin as the page; one attempt and no timeout, like the proxy.
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     dom.Origin(),
		ServiceName: "quote-proxy",
		Retry:       config.RetryConfig{MaxAttempts: 1},
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating proxy client: %w", err)
	}

	var kv ports.KeyValueStore
	if ls, err := storage.NewLocalStorage(); err == nil {
		kv = ls
	} else {
		logger.Warn("favorites will not persist", slog.Any("error", err))
		kv = storage.NewMemoryStore(nil)
	}

	ctrl := ui.NewController(ui.Config{
		Source:    acl.NewProxyQuoteClient(httpClient, logger),
		Favorites: storage.NewFavoritesStore(kv, logger),
		View:      dom,
		Notifier:  dom,
		Opener:    dom,
		PageURL:   dom.PageURL,
		Logger:    logger,
	})

	// Favorites come from localStorage synchronously, so they are in place
	// before any control can edit them.
	ctrl.LoadFavorites(ctx)
	dom.Bind(ctx, ctrl)

	go func() {
		if err := ctrl.LoadQuote(ctx); err != nil {
			logger.Debug("initial quote load failed", slog.Any("error", err))
		}
	}()

	return nil
}
