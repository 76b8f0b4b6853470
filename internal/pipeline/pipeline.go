// Package pipeline wires fetcher, extractors and merge rules into the
// single sequential pass a run consists of.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/fetch"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("internal/pipeline")

type ExtractFunc func(ctx context.Context, body []byte, retrievedAt time.Time) ([]leaderboard.Entry, error)

// one configured source: where to fetch and how to parse the body
type Registration struct {
	Source  fetch.Source
	Extract ExtractFunc
}

// fetches and extracts every registered source in sequence. a source
// failing at either stage contributes zero entries and a failure
// record, never an error for the run itself.
func Run(ctx context.Context, client *fetch.Client, sources []Registration, now time.Time) leaderboard.Snapshot {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(attribute.Int("source_count", len(sources)))

	var entries []leaderboard.Entry
	var failures []leaderboard.Failure

	for _, reg := range sources {
		raw, err := client.Fetch(ctx, reg.Source)
		if err != nil {
			slog.ErrorContext(ctx, "fetch failed", "source", reg.Source.Name, "err", err)
			failures = append(failures, leaderboard.Failure{
				Source: reg.Source.Name,
				Stage:  leaderboard.StageFetch,
				Reason: err.Error(),
			})
			continue
		}

		sourceEntries, err := reg.Extract(ctx, raw.Body, now)
		if err != nil {
			slog.ErrorContext(ctx, "extract failed", "source", reg.Source.Name, "err", err)
			failures = append(failures, leaderboard.Failure{
				Source: reg.Source.Name,
				Stage:  leaderboard.StageExtract,
				Reason: err.Error(),
			})
			continue
		}

		slog.InfoContext(ctx, "scraped source",
			"source", reg.Source.Name, "entries", len(sourceEntries))
		entries = append(entries, sourceEntries...)
	}

	entries = leaderboard.Validate(entries)
	leaderboard.Sort(entries)

	return leaderboard.Snapshot{
		GeneratedAt: now,
		Entries:     entries,
		Failures:    failures,
	}
}
