// Package sweep computes house cusps for many (time, site) pairs in
// parallel.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/talgya/skyhouses/internal/config"
	"github.com/talgya/skyhouses/internal/houses"
	"github.com/talgya/skyhouses/internal/sky"
)

// MaxFrames caps the size of a single plan.
const MaxFrames = 1_000_000

// ErrInvalidPlan is returned for plans that cannot be run.
var ErrInvalidPlan = errors.New("invalid sweep plan")

// Plan describes a sweep: every site at every step from Start to End
// inclusive.
type Plan struct {
	System houses.System
	// Fallback, when set, replaces System for frames that exceed its
	// latitude limit.
	Fallback houses.System
	Sites    []config.Site
	Start    time.Time
	End      time.Time
	Step     time.Duration
	// Obliquity overrides the mean obliquity of each frame's date.
	Obliquity float64
}

// Steps returns the number of instants the plan covers. Counts above
// MaxFrames are reported as MaxFrames+1.
func (p Plan) Steps() int {
	if p.Step <= 0 || p.End.Before(p.Start) {
		return 0
	}
	if n := p.End.Sub(p.Start) / p.Step; n < MaxFrames {
		return int(n) + 1
	}
	return MaxFrames + 1
}

func (p Plan) validate() error {
	switch {
	case len(p.Sites) == 0:
		return fmt.Errorf("%w: no sites", ErrInvalidPlan)
	case p.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %s", ErrInvalidPlan, p.Step)
	case p.End.Before(p.Start):
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidPlan,
			p.End.Format(time.RFC3339), p.Start.Format(time.RFC3339))
	}
	// Sub saturates, so a maximal span means the real one does not fit.
	span := p.End.Sub(p.Start)
	if span == math.MaxInt64 {
		return fmt.Errorf("%w: span from %s to %s is too long", ErrInvalidPlan,
			p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
	}
	// k steps per site fit when k <= MaxFrames/sites, i.e. span/step < that.
	if perSite := MaxFrames / len(p.Sites); int64(span/p.Step) >= int64(perSite) {
		return fmt.Errorf("%w: %d sites every %s from %s to %s exceeds limit of %d frames",
			ErrInvalidPlan, len(p.Sites), p.Step,
			p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339), MaxFrames)
	}
	if p.Fallback != 0 {
		if _, limited := p.Fallback.LatitudeLimit(); limited {
			return fmt.Errorf("%w: fallback %s has its own latitude limit", ErrInvalidPlan, p.Fallback)
		}
	}
	return nil
}

// Frame is one computed chart.
type Frame struct {
	Site      string         `json:"site"`
	Time      time.Time      `json:"time"`
	LST       float64        `json:"lst"`
	Obliquity float64        `json:"obliquity"`
	System    houses.System  `json:"system"`
	Cusps     houses.CuspSet `json:"cusps"`
}

// Result holds the frames of a run, ordered by site (plan order) then time.
type Result struct {
	ID     uuid.UUID `json:"id"`
	Frames []Frame   `json:"frames"`
}

// Runner executes plans with bounded parallelism.
type Runner struct {
	Workers int
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewRunner returns a Runner using the default logger.
func NewRunner(workers int, metrics *Metrics) *Runner {
	return &Runner{Workers: workers, Metrics: metrics, Logger: slog.Default()}
}

// Run computes every frame of plan. On error or cancellation no frames are
// returned.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Result, error) {
	if err := plan.validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	id := uuid.New()
	steps := plan.Steps()
	frames := make([]Frame, len(plan.Sites)*steps)
	start := time.Now()
	logger.Info("sweep started",
		"run_id", id,
		"system", plan.System.String(),
		"sites", len(plan.Sites),
		"steps", steps,
		"workers", workers,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range frames {
		if gctx.Err() != nil {
			break
		}
		site := plan.Sites[i/steps]
		at := plan.Start.Add(time.Duration(i%steps) * plan.Step)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := r.compute(plan, site, at)
			if err != nil {
				return fmt.Errorf("site %s at %s: %w", site.Name, at.Format(time.RFC3339), err)
			}
			frames[i] = f
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		status := "error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = "canceled"
		}
		r.Metrics.recordRun(status)
		logger.Warn("sweep failed", "run_id", id, "error", err)
		return nil, err
	}

	r.Metrics.recordRun("success")
	logger.Info("sweep finished",
		"run_id", id,
		"frames", len(frames),
		"elapsed", time.Since(start),
	)
	return &Result{ID: id, Frames: frames}, nil
}

func (r *Runner) compute(plan Plan, site config.Site, at time.Time) (Frame, error) {
	began := time.Now()
	obl := plan.Obliquity
	if obl == 0 {
		obl = sky.MeanObliquity(at)
	}
	p := houses.Params{
		LocalSiderealTime: sky.LocalSiderealTime(at, site.Longitude),
		Latitude:          site.Latitude,
		Obliquity:         obl,
		Altitude:          site.Altitude,
	}

	sys, outcome := plan.System, OutcomeOK
	cusps, err := houses.CalculateCusps(sys, p)
	if errors.Is(err, houses.ErrLatitudeLimitExceeded) && plan.Fallback != 0 {
		sys, outcome = plan.Fallback, OutcomeFallback
		cusps, err = houses.CalculateCusps(sys, p)
	}
	if err != nil {
		r.Metrics.recordChart(plan.System, OutcomeError, time.Since(began))
		return Frame{}, err
	}
	r.Metrics.recordChart(plan.System, outcome, time.Since(began))

	return Frame{
		Site:      site.Name,
		Time:      at,
		LST:       p.LocalSiderealTime,
		Obliquity: obl,
		System:    sys,
		Cusps:     cusps,
	}, nil
}
