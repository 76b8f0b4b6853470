// Package artificialanalysis extracts rankings from the Artificial
// Analysis models endpoint. Entries carry an explicit rank and a
// numeric quality index.
package artificialanalysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/artificialanalysis")

const Name = "artificialanalysis"
const DefaultUrl = "https://artificialanalysis.ai/api/leaderboards/models"

type document struct {
	Data []struct {
		Name         string   `json:"name"`
		Rank         int      `json:"rank"`
		QualityIndex *float64 `json:"quality_index"`
	} `json:"data"`
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
	if len(doc.Data) == 0 {
		err := fmt.Errorf("no data in document")
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected document structure")
		return nil, err
	}

	var entries []leaderboard.Entry
	for i, m := range doc.Data {
		name := strings.Trim(m.Name, " \n\t")
		if name == "" {
			continue
		}
		rank := m.Rank
		if rank == 0 {
			rank = i + 1
		}
		var scoreText string
		if m.QualityIndex != nil {
			scoreText = fmt.Sprintf("%g", *m.QualityIndex)
		}
		entries = append(entries, leaderboard.Entry{
			Source:      Name,
			ModelName:   name,
			Rank:        rank,
			Score:       m.QualityIndex,
			ScoreText:   scoreText,
			RetrievedAt: retrievedAt,
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no usable models in document")
	}
	return entries, nil
}
