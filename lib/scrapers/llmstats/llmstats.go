// Package llmstats extracts rankings from the LLM-Stats comparison
// page. Rows advertise their rank through a data-rank attribute.
package llmstats

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/htmlutil"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/llmstats")

const Name = "llmstats"
const DefaultUrl = "https://llm-stats.com/"

func Extract(ctx context.Context, body []byte, retrievedAt time.Time) ([]leaderboard.Entry, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	var entries []leaderboard.Entry
	doc.Find("tr[data-rank]").Each(func(_ int, row *goquery.Selection) {
		rankAttr := row.AttrOr("data-rank", "")
		rank, err := strconv.Atoi(rankAttr)
		if err != nil {
			return
		}

		model := htmlutil.CellText(row.Find("td.model-name"))
		if model == "" {
			model = htmlutil.CellText(row.Find("td").Eq(0))
		}
		model = textutil.StripRankPrefix(model)
		if model == "" {
			return
		}

		scoreText := textutil.CleanScoreText(htmlutil.CellText(row.Find("td.model-score")))

		entries = append(entries, leaderboard.Entry{
			Source:      Name,
			ModelName:   model,
			Rank:        rank,
			Score:       textutil.ParseScore(scoreText),
			ScoreText:   scoreText,
			RetrievedAt: retrievedAt,
		})
	})

	if len(entries) == 0 {
		err := fmt.Errorf("no ranked rows found")
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected page structure")
		return nil, err
	}
	return entries, nil
}
