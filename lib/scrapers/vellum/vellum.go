// Package vellum extracts rankings from the JSON document backing the
// Vellum LLM leaderboard. Array order is the ranking.
package vellum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/textutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/vellum")

const Name = "vellum"
const DefaultUrl = "https://www.vellum.ai/llm-leaderboard/data.json"

type document struct {
	Models []struct {
		Name  string `json:"name"`
		Score string `json:"score"`
	} `json:"models"`
}

func Extract(ctx context.Context, body []byte, retrievedAt time.Time) ([]leaderboard.Entry, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	var doc document
	err := json.Unmarshal(body, &doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to unmarshal json")
		return nil, err
	}
	if len(doc.Models) == 0 {
		err := fmt.Errorf("no models in document")
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected document structure")
		return nil, err
	}

	var entries []leaderboard.Entry
	for i, m := range doc.Models {
		name := strings.Trim(m.Name, " \n\t")
		if name == "" {
			continue
		}
		scoreText := textutil.CleanScoreText(m.Score)
		entries = append(entries, leaderboard.Entry{
			Source:      Name,
			ModelName:   name,
			Rank:        i + 1,
			Score:       textutil.ParseScore(scoreText),
			ScoreText:   scoreText,
			RetrievedAt: retrievedAt,
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no usable models in document")
	}
	return entries, nil
}
