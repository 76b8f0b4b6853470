package cmd

import (
	"fmt"
	"os"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"
	"github.com/Kusta1889/ai-leaderboard-auto/internal/render"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the latest snapshot as a console table.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()

		snap, err := render.ReadSnapshot(config.Output.Json)
		if err != nil {
			serviceutil.Fatal("failed to read snapshot, has a run completed yet?", err)
		}

		fmt.Printf("generated at: %s\n", snap.GeneratedAt.Format("2006-01-02 15:04 UTC"))
		if len(snap.Entries) == 0 {
			fmt.Println("no data")
		}

		for _, source := range leaderboard.Sources(snap.Entries) {
			fmt.Println(render.SourceTitle(source))

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Rank", "Model", "Score"})
			for _, e := range leaderboard.BySource(snap.Entries, source) {
				score := e.ScoreText
				if score == "" {
					score = "—"
				}
				t.AppendRow(table.Row{e.Rank, e.ModelName, score})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
		}

		for _, f := range snap.Failures {
			fmt.Printf("failed: %s (%s): %s\n", f.Source, f.Stage, f.Reason)
		}
	},
}
