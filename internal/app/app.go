package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/musaed/internal/admission"
	"github.com/five82/musaed/internal/config"
	"github.com/five82/musaed/internal/favorites"
	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/prefs"
	"github.com/five82/musaed/internal/session"
	"github.com/five82/musaed/internal/state"
	"github.com/five82/musaed/internal/ui"
)

// Options configure the musaed application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/musaed/prefs.toml
	APIBase     string // overrides the configured backend address
	HealthEvery int    // seconds; zero uses the configured interval
}

// Run boots the musaed TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if base := strings.TrimSpace(opts.APIBase); base != "" {
		cfg.APIBase = base
	}
	if opts.HealthEvery > 0 {
		cfg.HealthInterval = time.Duration(opts.HealthEvery) * time.Second
	}

	logFile, err := openLog(cfg.LogPath())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := gie.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}
	log.Printf("musaed starting; backend %s, request timeout %s", client.BaseURL(), cfg.RequestTimeout)

	catalog := cfg.Favorites
	if len(catalog) == 0 {
		catalog = favorites.Default()
	}

	store := &state.Store{}
	sess := session.New(admission.New(cfg.Admission), client, store)

	StartHealthMonitor(ctx, store, client, cfg.HealthInterval)

	uiOpts := ui.Options{
		Context:    ctx,
		Dispatcher: session.NewDispatcher(sess),
		Store:      store,
		Catalog:    catalog,
		APIBase:    client.BaseURL(),
		LogPath:    cfg.LogPath(),
		Tick:       cfg.HealthInterval,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// openLog routes the standard logger to path so the TUI keeps the terminal.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return tea.LogToFile(path, "")
}
