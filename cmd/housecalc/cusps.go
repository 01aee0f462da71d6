package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/skyhouses/internal/config"
	"github.com/talgya/skyhouses/internal/houses"
	"github.com/talgya/skyhouses/internal/sky"
)

// chartFlags are the inputs shared by cusps and locate.
type chartFlags struct {
	cfg config.Config

	system    string
	lst       float64
	at        string
	lon       float64
	lat       float64
	obliquity float64
	altitude  float64
	fallback  string
}

func (f *chartFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.system, "system", "s", f.cfg.System, "house system tag (see 'housecalc systems')")
	fs.Float64Var(&f.lst, "lst", 0, "local sidereal time in degrees")
	fs.StringVar(&f.at, "time", "", "UTC instant (RFC 3339); derives the sidereal time from --lon")
	fs.Float64Var(&f.lon, "lon", 0, "east longitude in degrees, used with --time")
	fs.Float64Var(&f.lat, "lat", 0, "geographic latitude in degrees, north positive")
	fs.Float64Var(&f.obliquity, "obliquity", f.cfg.Obliquity, "obliquity of the ecliptic in degrees (default: mean of date, or J2000)")
	fs.Float64Var(&f.altitude, "altitude", f.cfg.Altitude, "observer altitude in metres (topocentric only)")
	fs.StringVar(&f.fallback, "fallback", "", "system to use when the chosen one exceeds its latitude limit")

	_ = cmd.MarkFlagRequired("lat")
	cmd.MarkFlagsOneRequired("lst", "time")
	cmd.MarkFlagsMutuallyExclusive("lst", "time")
}

// chartRequest is a fully resolved calculation.
type chartRequest struct {
	System   houses.System
	Fallback houses.System
	Params   houses.Params
	Time     *time.Time
}

func (f *chartFlags) resolve(cmd *cobra.Command) (chartRequest, error) {
	var req chartRequest

	sys, err := houses.ParseSystem(f.system)
	if err != nil {
		return req, err
	}
	req.System = sys
	if f.fallback != "" {
		fb, err := houses.ParseSystem(f.fallback)
		if err != nil {
			return req, fmt.Errorf("--fallback: %w", err)
		}
		if _, limited := fb.LatitudeLimit(); limited {
			return req, fmt.Errorf("--fallback %s has its own latitude limit", fb)
		}
		req.Fallback = fb
	}

	req.Params = houses.Params{
		LocalSiderealTime: f.lst,
		Latitude:          f.lat,
		Obliquity:         f.obliquity,
		Altitude:          f.altitude,
	}
	if f.at != "" {
		t, err := time.Parse(time.RFC3339, f.at)
		if err != nil {
			return req, fmt.Errorf("--time: %w", err)
		}
		t = t.UTC()
		req.Time = &t
		req.Params.LocalSiderealTime = sky.LocalSiderealTime(t, f.lon)
	}

	// An explicit --obliquity is used as given, zero included.
	if !cmd.Flags().Changed("obliquity") && req.Params.Obliquity == 0 {
		req.Params.Obliquity = houses.DefaultObliquity
		if req.Time != nil {
			req.Params.Obliquity = sky.MeanObliquity(*req.Time)
		}
	}
	return req, nil
}

// calculate runs the request, switching to the fallback system on a
// latitude-limit failure when one is configured.
func calculate(req chartRequest) (*houses.Chart, error) {
	chart, err := houses.CalculateSystem(req.System, req.Params)
	if err == nil || req.Fallback == 0 || !errors.Is(err, houses.ErrLatitudeLimitExceeded) {
		return chart, err
	}
	slog.Warn("latitude limit exceeded, using fallback",
		"system", req.System.String(),
		"fallback", req.Fallback.String(),
		"latitude", req.Params.Latitude,
	)
	return houses.CalculateSystem(req.Fallback, req.Params)
}

func newCuspsCmd(cfg config.Config) *cobra.Command {
	f := &chartFlags{cfg: cfg}
	cmd := &cobra.Command{
		Use:   "cusps",
		Short: "Print the twelve house cusps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			req, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			chart, err := calculate(req)
			if err != nil {
				return withHint(err)
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), chartOutput{
					Chart: chart,
					Input: newInputEcho(req),
				})
			}
			return renderChart(cmd.OutOrStdout(), chart, req)
		},
	}
	f.bind(cmd)
	return cmd
}

func newLocateCmd(cfg config.Config) *cobra.Command {
	f := &chartFlags{cfg: cfg}
	var rawBodies []string
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Place bodies into houses and count occupancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			bodies, err := parseBodies(rawBodies)
			if err != nil {
				return err
			}
			req, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			chart, err := calculate(req)
			if err != nil {
				return withHint(err)
			}

			cusps := chart.Cusps()
			positions := make(map[string]float64, len(bodies))
			for _, b := range bodies {
				positions[b.Name] = b.Longitude
			}
			res := locateOutput{
				Chart:      chart,
				Input:      newInputEcho(req),
				Placements: houses.LocateAll(bodies, cusps),
				Tally:      houses.Tally(positions, cusps),
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return renderPlacements(cmd.OutOrStdout(), res, houses.Occupants(positions, cusps))
		},
	}
	f.bind(cmd)
	cmd.Flags().StringArrayVarP(&rawBodies, "body", "b", nil, "body as Name=longitude; repeatable")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

// parseBodies reads Name=longitude pairs. Names must be unique.
func parseBodies(raw []string) ([]houses.Body, error) {
	out := make([]houses.Body, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("--body %q: want Name=longitude", r)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("--body %q: %w", r, err)
		}
		if seen[name] {
			return nil, fmt.Errorf("--body %q: duplicate name", name)
		}
		seen[name] = true
		out = append(out, houses.Body{Name: name, Longitude: lon})
	}
	return out, nil
}

// withHint appends the suggested systems to a latitude-limit failure.
func withHint(err error) error {
	var herr *houses.Error
	if !errors.As(err, &herr) || len(herr.Suggested) == 0 {
		return err
	}
	tags := make([]string, len(herr.Suggested))
	for i, s := range herr.Suggested {
		tags[i] = s.String()
	}
	return fmt.Errorf("%w (try --fallback %s)", err, strings.Join(tags, " or --fallback "))
}
