package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "gemini3pro", NormalizeName("  Gemini 3 Pro\n"))
	require.Equal(t, "claudesonnet4.5", NormalizeName("Claude  Sonnet 4.5"))
}

func TestStripRankPrefix(t *testing.T) {
	require.Equal(t, "Gemini 3 Pro", StripRankPrefix("#1 Gemini 3 Pro"))
	require.Equal(t, "Claude 3.7 Sonnet", StripRankPrefix("2. Claude 3.7 Sonnet"))
	require.Equal(t, "GPT-5.1", StripRankPrefix("GPT-5.1"))
	require.Equal(t, "Veo 3.1", StripRankPrefix("3 Veo 3.1\nGoogle"))
}

func TestCleanScoreText(t *testing.T) {
	require.Equal(t, "1501 Elo", CleanScoreText("1501 ▲ Elo"))
	require.Equal(t, "1356.70", CleanScoreText("  1356.70 ◄►  "))
}

func TestParseScore(t *testing.T) {
	score := ParseScore("1501 Elo")
	require.NotNil(t, score)
	require.Equal(t, 1501.0, *score)

	score = ParseScore("SWE-Bench: 82%")
	require.NotNil(t, score)
	require.Equal(t, 82.0, *score)

	require.Nil(t, ParseScore(""))
	require.Nil(t, ParseScore("n/a"))
}

func TestParseRank(t *testing.T) {
	require.Equal(t, 3, ParseRank("#3"))
	require.Equal(t, 12, ParseRank("12."))
	require.Equal(t, 0, ParseRank("—"))
}
