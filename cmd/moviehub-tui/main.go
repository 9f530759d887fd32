package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amaumene/moviehub/internal/config"
	"github.com/amaumene/moviehub/internal/services"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/amaumene/moviehub/internal/tui"
	"github.com/amaumene/moviehub/pkg/httputil"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/amaumene/moviehub/pkg/ratelimiter"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The renderer owns stdout, so logs go to a file.
	logPath := filepath.Join(os.TempDir(), "moviehub-tui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logger.NewWithWriter(logger.ParseLevel(cfg.LogLevel), logFile)

	omdb := services.NewOMDb(cfg.OMDbAPIKey, cfg.OMDbBaseURL, httputil.NewHTTPClient(time.Duration(cfg.RequestTimeout)), log)
	if cfg.OMDbRateLimit > 0 {
		omdb.SetRateLimiter(ratelimiter.NewTokenBucket(cfg.OMDbRateBurst, cfg.OMDbRateLimit))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One visitor, one session for the life of the program.
	store := session.NewStore(omdb, 1, time.Duration(cfg.SessionTTL), log)

	p := tea.NewProgram(tui.NewModel(ctx, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorf("[TUI] %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
