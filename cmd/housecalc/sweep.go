package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/talgya/skyhouses/internal/config"
	"github.com/talgya/skyhouses/internal/houses"
	"github.com/talgya/skyhouses/internal/sweep"
)

func newSweepCmd(cfg config.Config) *cobra.Command {
	var (
		sitesPath  string
		system     string
		fallback   string
		start, end string
		step       time.Duration
		obliquity  float64
		workers    int
		metricsOut string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute cusps for every site over a time range",
		Long: `Compute cusps for every site in a YAML site list at regular steps between
--start and --end (inclusive). Sites look like:

  sites:
    - name: greenwich
      latitude: 51.4769
      longitude: 0
      altitude: 46`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			sites, err := config.LoadSites(sitesPath)
			if err != nil {
				return err
			}
			plan := sweep.Plan{Sites: sites, Step: step, Obliquity: obliquity}
			if plan.System, err = houses.ParseSystem(system); err != nil {
				return err
			}
			if fallback != "" {
				if plan.Fallback, err = houses.ParseSystem(fallback); err != nil {
					return fmt.Errorf("--fallback: %w", err)
				}
			}
			if plan.Start, err = time.Parse(time.RFC3339, start); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if plan.End, err = time.Parse(time.RFC3339, end); err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			reg := prometheus.NewRegistry()
			runner := sweep.NewRunner(workers, sweep.NewMetrics(reg))
			began := time.Now()
			res, err := runner.Run(cmd.Context(), plan)
			if err != nil {
				return withHint(err)
			}
			if metricsOut != "" {
				if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return renderSweep(cmd.OutOrStdout(), res, len(sites), time.Since(began))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&sitesPath, "sites", "", "YAML site list")
	fs.StringVarP(&system, "system", "s", cfg.System, "house system tag")
	fs.StringVar(&fallback, "fallback", "", "system for sites beyond the chosen system's latitude limit")
	fs.StringVar(&start, "start", "", "first instant (RFC 3339)")
	fs.StringVar(&end, "end", "", "last instant (RFC 3339)")
	fs.DurationVar(&step, "step", time.Hour, "interval between instants")
	fs.Float64Var(&obliquity, "obliquity", cfg.Obliquity, "fixed obliquity in degrees (default: mean of each date)")
	fs.IntVarP(&workers, "workers", "w", cfg.Workers, "parallel workers")
	fs.StringVar(&metricsOut, "metrics-out", "", "write Prometheus text metrics to this file")
	_ = cmd.MarkFlagRequired("sites")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newSystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "List supported house systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			infos := make([]systemInfo, 0, len(houses.Systems))
			for _, s := range houses.Systems {
				info := systemInfo{Tag: s.String(), Name: s.DisplayName(), Quadrant: s.Quadrant()}
				if limit, ok := s.LatitudeLimit(); ok {
					info.LatitudeLimit = &limit
				}
				infos = append(infos, info)
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), infos)
			}
			return renderSystems(cmd.OutOrStdout(), infos)
		},
	}
}
