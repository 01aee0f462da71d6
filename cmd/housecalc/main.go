// Command housecalc computes astrological house cusps from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talgya/skyhouses/internal/config"
)

func main() {
	// ── Configuration ─────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "housecalc:", err)
		os.Exit(2)
	}

	// ── Logging ───────────────────────────────────────────────────────
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	// ── Run ───────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(cfg, os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Debug("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Output goes to out; flag defaults
// come from cfg.
func newRootCmd(cfg config.Config, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "housecalc",
		Short: "Compute astrological house cusps",
		Long: `housecalc divides the ecliptic into twelve houses for a moment and
place on Earth, using one of nine house systems.

Examples:
  housecalc cusps --system placidus --lst 120 --lat 40
  housecalc cusps --system koch --time 2024-06-21T12:00:00Z --lon -0.1 --lat 51.5
  housecalc locate --system equal --lst 75 --lat 35 --body Sun=12.3 --body Moon=200
  housecalc sweep --sites sites.yaml --start 2024-01-01T00:00:00Z --end 2024-01-02T00:00:00Z
  housecalc systems`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringP("format", "f", cfg.Format, "output format: table or json")

	root.AddCommand(
		newCuspsCmd(cfg),
		newLocateCmd(cfg),
		newSweepCmd(cfg),
		newSystemsCmd(),
	)
	return root
}

// outputFormat reads and checks the persistent --format flag.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	switch format {
	case formatTable, formatJSON:
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q: want %s or %s", format, formatTable, formatJSON)
}
