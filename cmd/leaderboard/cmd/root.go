package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Kusta1889/ai-leaderboard-auto/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "leaderboard scrapes public AI-model ranking sites into a JSON snapshot and a static HTML comparison page.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
