package seal

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
<tr><td>Gemini 3 Pro</td><td>HLE: 41%</td></tr>
<tr><td>Claude Opus 4.1</td><td>SWE-Bench Pro: 22.7%</td></tr>
</tbody></table>
</body></html>`

func TestExtract(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "scrapers/seal")
	defer cleanup()

	entries, err := Extract(context.Background(), []byte(fixture), retrieved)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "Gemini 3 Pro", entries[0].ModelName)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, "HLE: 41%", entries[0].ScoreText)
	require.Equal(t, 41.0, *entries[0].Score)

	require.Equal(t, "Claude Opus 4.1", entries[1].ModelName)
	require.Equal(t, 2, entries[1].Rank)
}

func TestExtractMalformedPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "scrapers/seal")
	defer cleanup()

	_, err := Extract(context.Background(), []byte("<div>nothing here</div>"), retrieved)
	require.Error(t, err)
}
