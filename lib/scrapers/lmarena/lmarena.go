// Package lmarena extracts the ranked model table from the LMArena
// text leaderboard.
package lmarena

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/htmlutil"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/lmarena")

const Name = "lmarena"
const DefaultUrl = "https://lmarena.ai/leaderboard/text"

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
	doc.Find("table tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		rank := textutil.ParseRank(htmlutil.CellText(cells.Eq(0)))
		if rank == 0 {
			rank = i + 1
		}

		// the model cell sometimes repeats the rank as a "#3" prefix
		model := textutil.StripRankPrefix(htmlutil.CellText(cells.Eq(1)))
		if model == "" {
			return
		}

		var scoreText string
		if cells.Length() >= 3 {
			scoreText = textutil.CleanScoreText(htmlutil.CellText(cells.Eq(2)))
		}

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
		err := fmt.Errorf("no leaderboard rows found")
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected page structure")
		return nil, err
	}
	return entries, nil
}
