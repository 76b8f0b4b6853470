package notify

import (
	"testing"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"

	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	subject, body := Message([]leaderboard.Failure{
		{Source: "lmarena", Stage: leaderboard.StageFetch, Reason: "timeout"},
		{Source: "seal", Stage: leaderboard.StageExtract, Reason: "no leaderboard rows found"},
	})

	require.Contains(t, subject, "every source failed")
	require.Contains(t, body, "- lmarena (fetch): timeout")
	require.Contains(t, body, "- seal (extract): no leaderboard rows found")
}

func TestEnabled(t *testing.T) {
	require.False(t, SmtpConfig{}.Enabled())
	require.False(t, SmtpConfig{Server: "smtp.example.com"}.Enabled())
	require.True(t, SmtpConfig{
		Server: "smtp.example.com",
		To:     []string{"ops@example.com"},
	}.Enabled())
}
