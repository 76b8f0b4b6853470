package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/notify"
	"github.com/Kusta1889/ai-leaderboard-auto/internal/pipeline"
	"github.com/Kusta1889/ai-leaderboard-auto/internal/render"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/configutil"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/fetch"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/serviceutil"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/telemetry"

	"github.com/spf13/cobra"
)

var manual bool

func init() {
	runCmd.Flags().BoolVar(&manual, "manual", false, "mark this as a manually triggered run (no behavioral difference)")
	rootCmd.AddCommand(runCmd)
}

func readConfig() pipeline.Config {
	config, err := configutil.ReadConfig[pipeline.Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	config.ApplyDefaults()
	return config
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrapes every configured source and regenerates the snapshot and HTML page.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := readConfig()

		tel, err := telemetry.SetupFromEnv(ctx, "leaderboard")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)

		if manual {
			slog.Info("manually triggered run")
		}

		// previous output is the fallback that makes a total scrape
		// failure tolerable, note its existence before overwriting
		_, statErr := os.Stat(config.Output.Json)
		hadPrevious := statErr == nil

		client := fetch.NewClient(fetch.Options{
			Timeout:   config.Timeout(),
			UserAgent: config.UserAgent,
		})
		sources := pipeline.Registry(config)
		snap := pipeline.Run(ctx, client, sources, time.Now().UTC())

		allFailed := len(sources) > 0 && len(snap.Entries) == 0 && len(snap.Failures) == len(sources)
		if allFailed && config.Smtp.Enabled() {
			err := notify.SendTotalFailure(ctx, config.Smtp, snap.Failures)
			if err != nil {
				slog.ErrorContext(ctx, "failed to send total-failure alert", "err", err)
			}
		}

		err = render.WriteSnapshot(snap, config.Output.Json)
		if err != nil {
			serviceutil.Fatal("failed to write snapshot", err)
		}
		err = render.WritePage(snap, config.Output.Html)
		if err != nil {
			serviceutil.Fatal("failed to write html page", err)
		}

		slog.InfoContext(ctx, "run complete",
			"entries", len(snap.Entries),
			"failures", len(snap.Failures),
			"json", config.Output.Json,
			"html", config.Output.Html,
		)

		if allFailed && !hadPrevious {
			slog.ErrorContext(ctx, "every source failed and no previous output exists to fall back on")
			os.Exit(1)
		}
	},
}
