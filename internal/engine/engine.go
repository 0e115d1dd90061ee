package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/birthday-feed/internal/config"
)

// Generator runs the fetch -> extract -> synthesize pipeline. All date
// computation is driven by the injected Clock so it can be pinned in tests.
type Generator struct {
	Clock   Clock        // reference time source
	Fetcher VCardFetcher // directory service transport

	// Location is the fixed zone for reminder times. Defaults to the
	// clock's local zone when nil.
	Location *time.Location
}

// Refresh fetches the directory, extracts contact occurrences, and renders
// the calendar feed. It returns the serialized feed and the occurrence list.
//
// Individual bad records are skipped; only transport or encoding failures
// surface as errors, in which case the caller keeps its previous feed.
func (g *Generator) Refresh(ctx context.Context, url, user, pass string) ([]byte, []ContactOccurrence, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	log.InfoContext(ctx, config.MsgSyncStarted)

	if g.Fetcher == nil {
		return nil, nil, errors.New(config.ErrFetcherMissing)
	}

	reader, err := g.Fetcher.Fetch(ctx, url, user, pass)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, fmt.Errorf("%s: %w", config.ErrFetchFailed, err)
	}
	// Best effort close. The body has been fully consumed by then.
	defer func() { _ = reader.Close() }()

	// Birthdays are a local-calendar concept: if it is June 15th in the
	// configured zone, it is the birthday, even if UTC still says June 14th.
	loc := g.Location
	if loc == nil {
		loc = time.Local
	}
	today := g.Clock.Now().In(loc)

	occs, err := g.extractAll(ctx, reader, today)
	if err != nil {
		return nil, nil, err
	}

	feed, err := Synthesize(occs, loc)
	if err != nil {
		return nil, nil, err
	}

	log.Debug("Refresh finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	return feed, occs, nil
}

// extractAll streams the vCard decoder and collects the occurrences of every
// record carrying a usable birthday. Malformed cards and malformed birthdays
// are logged and skipped so one bad record cannot poison the whole feed.
//
// A decode error is only skippable while the decoder still makes progress
// through the stream. When it fails twice without consuming a single byte
// the underlying transport is broken (connection reset, truncated transfer)
// and the cycle aborts, keeping the previously published feed intact.
func (g *Generator) extractAll(ctx context.Context, r io.Reader, today time.Time) ([]ContactOccurrence, error) {
	counter := &countingReader{r: r}
	decoder := vcard.NewDecoder(counter)
	stats := struct{ processed, withBday int }{}
	var occs []ContactOccurrence

	lastFailure := int64(-1)
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if counter.read == lastFailure {
				return nil, fmt.Errorf("%s: %w", config.ErrVCardStream, err)
			}
			lastFailure = counter.read
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		occ, outcome := ExtractContact(card, today)
		if outcome != Extracted {
			continue
		}
		stats.withBday++
		occs = append(occs, occ)
	}

	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
	)
	return occs, nil
}

// countingReader tracks how many bytes the decoder has pulled from the
// stream, which is how extractAll tells a bad record apart from a dead
// transport.
type countingReader struct {
	r    io.Reader
	read int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += int64(n)
	return n, err
}
