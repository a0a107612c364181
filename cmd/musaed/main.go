package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/five82/musaed/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/musaed/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	apiBase := flag.String("api", "", "backend base URL (optional, overrides config)")
	healthSeconds := flag.Int("health", 0, "health probe interval in seconds (optional, defaults to 3s)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "musaed: load .env: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		APIBase:    *apiBase,
	}
	if health := *healthSeconds; health > 0 {
		opts.HealthEvery = health
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "musaed: %v\n", err)
		return 1
	}
	return 0
}
