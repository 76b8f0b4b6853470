package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var generated = time.Date(2025, 6, 1, 5, 30, 0, 0, time.UTC)

func score(v float64) *float64 {
	return &v
}

func testSnapshot() leaderboard.Snapshot {
	return leaderboard.Snapshot{
		GeneratedAt: generated,
		Entries: []leaderboard.Entry{
			{
				Source:      "lmarena",
				ModelName:   "Gemini 3 Pro",
				Rank:        1,
				Score:       score(1501),
				ScoreText:   "1501 Elo",
				RetrievedAt: generated,
			},
			{
				Source:      "lmarena",
				ModelName:   "Claude Sonnet 4.5",
				Rank:        2,
				RetrievedAt: generated,
			},
		},
		Failures: []leaderboard.Failure{
			{Source: "seal", Stage: leaderboard.StageFetch, Reason: "timeout"},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latest_data.json")
	snap := testSnapshot()

	err := WriteSnapshot(snap, path)
	require.NoError(t, err)

	got, err := ReadSnapshot(path)
	require.NoError(t, err)

	diff := cmp.Diff(snap, got, cmp.Comparer(func(a, b time.Time) bool {
		return a.Equal(b)
	}))
	require.Empty(t, diff)
}

func TestWriteSnapshotIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	snap := testSnapshot()

	require.NoError(t, WriteSnapshot(snap, first))
	require.NoError(t, WriteSnapshot(snap, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestWriteSnapshotCreatesParentAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	path := filepath.Join(dir, "latest_data.json")

	require.NoError(t, WriteSnapshot(testSnapshot(), path))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "latest_data.json", files[0].Name())
}

func TestWritePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	require.NoError(t, WritePage(testSnapshot(), path))

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(html)

	require.Contains(t, page, "LMArena")
	require.Contains(t, page, "Gemini 3 Pro")
	require.Contains(t, page, "1501 Elo")
	require.Contains(t, page, "2025-06-01 05:30 UTC")
	require.Contains(t, page, "seal (fetch): timeout")
	require.NotContains(t, page, "No data")
}

func TestWritePageEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	err := WritePage(leaderboard.Snapshot{GeneratedAt: generated}, path)
	require.NoError(t, err)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(html), "No data")
}

func TestWritePageEscapesModelNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	snap := leaderboard.Snapshot{
		GeneratedAt: generated,
		Entries: []leaderboard.Entry{
			{
				Source:      "lmarena",
				ModelName:   "<script>alert(1)</script>",
				Rank:        1,
				RetrievedAt: generated,
			},
		},
	}

	require.NoError(t, WritePage(snap, path))

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(html), "&lt;script&gt;") ||
		!strings.Contains(string(html), "<script>alert(1)</script>"))
}
