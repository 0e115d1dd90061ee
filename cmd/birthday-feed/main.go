package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tartampluch/birthday-feed/internal/config"
	"github.com/tartampluch/birthday-feed/internal/engine"
	"github.com/tartampluch/birthday-feed/internal/server"
	"github.com/tartampluch/birthday-feed/internal/worker"
)

// main delegates to runMain so deferred calls run before the process
// terminates; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(*debugMode)

	// Root context cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the components and blocks until shutdown.
func run(ctx context.Context) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	slog.Info(config.MsgConfigLoaded,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyPort, settings.Port,
		config.LogKeyInterval, settings.RefreshInterval.String(),
		config.LogKeyTimezone, settings.Location.String(),
	)

	srv := server.NewFeedServer(settings.Port)
	refresher := &worker.Refresher{
		Generator: &engine.Generator{
			Clock:    engine.RealClock{},
			Fetcher:  engine.NewHTTPFetcher(),
			Location: settings.Location,
		},
		Server:   srv,
		Settings: settings,
	}

	// The server and the scheduler both block until the context ends.
	// The first hard failure cancels the other.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- srv.Start(runCtx) }()
	go func() { errCh <- refresher.Run(runCtx) }()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	return firstErr
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger on stdout.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}
