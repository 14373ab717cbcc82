package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/tokenwatch"
	"github.com/raykavin/tokenwatch/pkg/config"
	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tokenwatch",
		Short:   "Watches token prices and sends Telegram alerts on large moves",
		Version: "1.0.0",
	}

	// Add commands
	rootCmd.AddCommand(buildRunCmd(), buildReportCmd(), buildTokensCmd())

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the Telegram bot and the periodic price watcher",
		RunE:  runWatcher,
	}
}

func runWatcher(cmd *cobra.Command, _ []string) error {
	app, err := tokenwatch.NewAppFromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokenwatch.DefaultLog.Info("starting bot...")

	return app.Run(ctx)
}

func buildReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a one-shot price report and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			// No bot needed for a local report
			settings.Telegram.Enabled = false

			app, err := tokenwatch.NewApp(settings)
			if err != nil {
				return err
			}

			fmt.Print(app.Reporter().Report(cmd.Context()))
			return nil
		},
	}
}

func buildTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List the tracked token configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Feed", "Address", "Buy Price", "Alert Threshold"})
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_RIGHT,
				tablewriter.ALIGN_RIGHT,
			})
			table.AppendBulk(lo.Map(settings.Tokens, func(t core.TokenSettings, _ int) []string {
				return []string{
					t.Name,
					t.Feed,
					t.Address,
					strconv.FormatFloat(t.BuyPrice, 'f', -1, 64),
					strconv.FormatFloat(t.AlertThreshold, 'f', -1, 64) + "%",
				}
			}))
			table.Render()

			return nil
		},
	}
}
