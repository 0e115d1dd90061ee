// Package worker schedules and runs the periodic feed refresh.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/tartampluch/birthday-feed/internal/config"
	"github.com/tartampluch/birthday-feed/internal/engine"
	"github.com/tartampluch/birthday-feed/internal/server"
)

// Refresher owns the refresh pipeline and the feed cache. It triggers one
// refresh at startup and then one per configured interval. Overlapping
// triggers are skipped so at most one refresh is ever in flight.
type Refresher struct {
	Generator *engine.Generator
	Server    *server.FeedServer
	Settings  config.Settings
}

// Run blocks until the context is cancelled, waiting for in-flight work to
// finish before returning.
func (r *Refresher) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	r.refreshOnce(ctx)

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger{log: log}),
	))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", r.Settings.RefreshInterval), func() {
		r.refreshOnce(ctx)
	}); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSchedule, err)
	}

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, r.Settings.RefreshInterval.String())
	c.Start()

	<-ctx.Done()
	log.Info(config.MsgWorkerStop)
	<-c.Stop().Done()
	return nil
}

// refreshOnce runs one fetch -> extract -> synthesize cycle. On failure the
// previously published feed is left untouched and the feed degrades to
// stale rather than absent.
func (r *Refresher) refreshOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	feed, _, err := r.Generator.Refresh(ctx,
		r.Settings.DirectoryURL, r.Settings.Username, r.Settings.Password)
	if err != nil {
		slog.Error(config.MsgSyncFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err,
		)
		return
	}

	r.Server.Update(feed)
}

// cronLogger adapts slog to the cron.Logger interface. Its Info output only
// appears when a scheduled run is skipped or delayed.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(config.MsgWorkerSkipped, append([]any{config.LogKeyValue, msg}, keysAndValues...)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]any{config.LogKeyError, err}, keysAndValues...)...)
}
