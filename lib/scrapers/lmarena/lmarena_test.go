package lmarena

import (
	"context"
	"testing"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/lib/telemetry"

	"github.com/stretchr/testify/require"
)

var retrieved = time.Date(2025, 6, 1, 5, 30, 0, 0, time.UTC)

const fixture = `<html><body>
<table>
<thead><tr><th>Rank</th><th>Model</th><th>Score</th></tr></thead>
<tbody>
<tr><td>#1</td><td>#1 Gemini 3 Pro</td><td>1501 ▲ Elo</td></tr>
<tr><td>#2</td><td>Claude Sonnet 4.5</td><td>1489 Elo</td></tr>
<tr><td>#3</td><td>GPT-5.1</td><td></td></tr>
</tbody>
</table>
</body></html>`

func TestExtract(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "scrapers/lmarena")
	defer cleanup()

	entries, err := Extract(context.Background(), []byte(fixture), retrieved)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, "Gemini 3 Pro", entries[0].ModelName)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, "1501 Elo", entries[0].ScoreText)
	require.NotNil(t, entries[0].Score)
	require.Equal(t, 1501.0, *entries[0].Score)

	require.Equal(t, "Claude Sonnet 4.5", entries[1].ModelName)
	require.Equal(t, 2, entries[1].Rank)

	// a missing score keeps the entry, score just stays absent
	require.Equal(t, "GPT-5.1", entries[2].ModelName)
	require.Nil(t, entries[2].Score)
	require.Equal(t, "", entries[2].ScoreText)

	for _, e := range entries {
		require.Equal(t, Name, e.Source)
		require.Equal(t, retrieved, e.RetrievedAt)
	}
}

func TestExtractMalformedPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "scrapers/lmarena")
	defer cleanup()

	_, err := Extract(context.Background(), []byte("<html><body><p>maintenance</p></body></html>"), retrieved)
	require.Error(t, err)
}
