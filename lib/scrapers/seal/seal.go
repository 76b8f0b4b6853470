// Package seal extracts the ranked model table from the Scale AI SEAL
// leaderboard. SEAL rows carry no rank column, position is the rank.
package seal

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

var tracer = otel.Tracer("scrapers/seal")

const Name = "seal"
const DefaultUrl = "https://scale.com/leaderboard"

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
		if cells.Length() < 1 {
			return
		}

		model := textutil.StripRankPrefix(htmlutil.CellText(cells.Eq(0)))
		if model == "" {
			return
		}

		var scoreText string
		if cells.Length() >= 2 {
			scoreText = textutil.CleanScoreText(htmlutil.CellText(cells.Eq(1)))
		}

		entries = append(entries, leaderboard.Entry{
			Source:      Name,
			ModelName:   model,
			Rank:        i + 1,
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
