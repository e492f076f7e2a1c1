package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/api"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/cloudsync"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/db"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/web"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// envOr reads an environment variable with a fallback, so flag defaults can
// come from a .env file.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Optional .env file; flags still win over environment values.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("officelens", flag.ContinueOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", envOr("OFFICELENS_DB", "officelens.sqlite3"), "")
	fs.StringVar(&dbPath, "d", envOr("OFFICELENS_DB", "officelens.sqlite3"), "")

	var addr string
	fs.StringVar(&addr, "addr", envOr("OFFICELENS_ADDR", ":8080"), "")
	fs.StringVar(&addr, "a", envOr("OFFICELENS_ADDR", ":8080"), "")

	var logPath string
	fs.StringVar(&logPath, "log", envOr("OFFICELENS_LOG", ""), "")
	fs.StringVar(&logPath, "l", envOr("OFFICELENS_LOG", ""), "")

	var syncSchedule string
	fs.StringVar(&syncSchedule, "sync", envOr("OFFICELENS_SYNC_SCHEDULE", "@every 15m"), "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: officelens [flags]

Flags:
  -d, -db <path>          SQLite database path (default: officelens.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -sync <schedule>        simulated sync schedule, cron syntax (default: @every 15m)
  -h, -help               show this help and exit

Defaults can also come from the environment or a .env file:
OFFICELENS_DB, OFFICELENS_ADDR, OFFICELENS_LOG, OFFICELENS_SYNC_SCHEDULE.
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	// Open database and ensure the schema (idempotent; first run creates it).
	database, err := db.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		slog.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	slog.Info("database ready", "path", dbPath)

	// Load the full dataset into memory. First run seeds the master user.
	st, err := store.Open(context.Background(), database)
	if err != nil {
		slog.Error("failed to load store", "error", err)
		os.Exit(1)
	}

	// Cloud sync stub: runs on a schedule and on demand, never blocks writes.
	syncSvc := cloudsync.New(st)
	st.SetNotifier(syncSvc)

	scheduler := cron.New()
	if syncSchedule != "" {
		if _, err := scheduler.AddFunc(syncSchedule, func() {
			syncSvc.Sync(context.Background())
		}); err != nil {
			slog.Error("invalid sync schedule", "schedule", syncSchedule, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Set up routers.
	apiRouter := api.NewRouter(st, syncSvc)
	webRouter, err := web.NewRouter(st)
	if err != nil {
		slog.Error("failed to set up web router", "error", err)
		os.Exit(1)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(mux)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing database")
}
