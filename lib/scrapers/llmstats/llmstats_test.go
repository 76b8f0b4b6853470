package llmstats

import (
	"context"
	"testing"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/lib/telemetry"

	"github.com/stretchr/testify/require"
)

var retrieved = time.Date(2025, 6, 1, 5, 30, 0, 0, time.UTC)

const fixture = `<html><body>
<table><tbody>
<tr data-rank="1"><td class="model-name">Gemini 3 Pro</td><td class="model-score">1480</td></tr>
<tr data-rank="2"><td class="model-name">Claude Sonnet 4.5</td><td class="model-score"></td></tr>
<tr data-rank="x"><td class="model-name">broken row</td></tr>
</tbody></table>
</body></html>`

func TestExtract(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "scrapers/llmstats")
	defer cleanup()

	entries, err := Extract(context.Background(), []byte(fixture), retrieved)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "Gemini 3 Pro", entries[0].ModelName)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, 1480.0, *entries[0].Score)

	require.Equal(t, "Claude Sonnet 4.5", entries[1].ModelName)
	require.Equal(t, 2, entries[1].Rank)
	require.Nil(t, entries[1].Score)
}

func TestExtractMalformedPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "scrapers/llmstats")
	defer cleanup()

	_, err := Extract(context.Background(), []byte("<table><tr><td>no ranks</td></tr></table>"), retrieved)
	require.Error(t, err)
}
