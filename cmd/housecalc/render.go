package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/talgya/skyhouses/internal/houses"
	"github.com/talgya/skyhouses/internal/sweep"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	borderStyle = lipgloss.NewStyle().Foreground(colorBorder)
	plainStyle  = lipgloss.NewStyle()
)

// ── JSON shapes ───────────────────────────────────────────────────────

// inputEcho reports the resolved inputs alongside a result.
type inputEcho struct {
	System    houses.System `json:"system"`
	Fallback  houses.System `json:"fallback,omitempty"`
	Time      *time.Time    `json:"time,omitempty"`
	LST       float64       `json:"lst"`
	Latitude  float64       `json:"latitude"`
	Obliquity float64       `json:"obliquity"`
	Altitude  float64       `json:"altitude,omitempty"`
}

func newInputEcho(req chartRequest) inputEcho {
	return inputEcho{
		System:    req.System,
		Fallback:  req.Fallback,
		Time:      req.Time,
		LST:       req.Params.LocalSiderealTime,
		Latitude:  req.Params.Latitude,
		Obliquity: req.Params.Obliquity,
		Altitude:  req.Params.Altitude,
	}
}

type chartOutput struct {
	Chart *houses.Chart `json:"chart"`
	Input inputEcho     `json:"input"`
}

type locateOutput struct {
	Chart      *houses.Chart          `json:"chart"`
	Input      inputEcho              `json:"input"`
	Placements []houses.Placement     `json:"placements"`
	Tally      [houses.HouseCount]int `json:"tally"`
}

type systemInfo struct {
	Tag           string   `json:"tag"`
	Name          string   `json:"name"`
	Quadrant      bool     `json:"quadrant"`
	LatitudeLimit *float64 `json:"latitude_limit,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ── Tables ────────────────────────────────────────────────────────────

// styled reports whether w is a terminal worth colouring.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newTable(w io.Writer, headers ...string) *table.Table {
	color := styled(w)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow && color {
				return headerStyle
			}
			return cellStyle
		})
	if color {
		t = t.BorderStyle(borderStyle)
	}
	return t
}

func style(w io.Writer, s lipgloss.Style) lipgloss.Style {
	if styled(w) {
		return s
	}
	return plainStyle
}

// lastSignSecond is 29°59′59″ in arc-seconds.
const lastSignSecond = 30*3600 - 1

// formatDMS renders a degree within a sign as 23°54′18″. Values that round
// up to the next sign stay at 29°59′59″.
func formatDMS(deg float64) string {
	total := min(int(math.Round(deg*3600)), lastSignSecond)
	return fmt.Sprintf("%2d°%02d′%02d″", total/3600, total%3600/60, total%60)
}

func angleLabel(c *houses.Chart, n int) string {
	switch n {
	case c.Angles.Ascendant:
		return "ASC"
	case c.Angles.Midheaven:
		return "MC"
	case c.Angles.Descendant:
		return "DSC"
	case c.Angles.Nadir:
		return "IC"
	}
	return ""
}

func renderChart(w io.Writer, chart *houses.Chart, req chartRequest) error {
	title := chart.System.DisplayName() + " houses"
	if chart.System != req.System {
		title += fmt.Sprintf(" (fallback from %s)", req.System.DisplayName())
	}
	fmt.Fprintln(w, style(w, titleStyle).Render(title))
	fmt.Fprintln(w, style(w, mutedStyle).Render(describeInput(req)))

	t := newTable(w, "House", "Cusp", "Sign", "Position", "Angle")
	for _, h := range chart.Houses {
		t.Row(
			humanize.Ordinal(h.Number),
			fmt.Sprintf("%.4f°", h.Cusp),
			h.SignName(),
			formatDMS(h.Degree),
			angleLabel(chart, h.Number),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func describeInput(req chartRequest) string {
	var b strings.Builder
	if req.Time != nil {
		fmt.Fprintf(&b, "%s  ", req.Time.Format(time.RFC3339))
	}
	p := req.Params
	fmt.Fprintf(&b, "LST %.4f°  latitude %.4f°  obliquity %.4f°", p.LocalSiderealTime, p.Latitude, p.Obliquity)
	if req.System == houses.SystemTopocentric && p.Altitude != 0 {
		fmt.Fprintf(&b, "  altitude %sm", humanize.Commaf(p.Altitude))
	}
	return b.String()
}

func renderPlacements(w io.Writer, res locateOutput, occupants [houses.HouseCount][]string) error {
	if err := renderChart(w, res.Chart, chartRequestFromEcho(res.Input)); err != nil {
		return err
	}

	t := newTable(w, "Body", "Longitude", "Sign", "House")
	for _, p := range res.Placements {
		lon := p.Body.Longitude
		t.Row(
			p.Body.Name,
			fmt.Sprintf("%.4f°", lon),
			houses.SignName(houses.SignOf(lon)),
			humanize.Ordinal(p.House),
		)
	}
	fmt.Fprintln(w, t.Render())

	occupied := 0
	for i, n := range res.Tally {
		if n == 0 {
			continue
		}
		occupied++
		fmt.Fprintf(w, "%s house: %d (%s)\n", humanize.Ordinal(i+1), n, strings.Join(occupants[i], ", "))
	}
	_, err := fmt.Fprintf(w, "%d bodies in %d of %d houses\n", len(res.Placements), occupied, houses.HouseCount)
	return err
}

func chartRequestFromEcho(in inputEcho) chartRequest {
	return chartRequest{
		System:   in.System,
		Fallback: in.Fallback,
		Time:     in.Time,
		Params: houses.Params{
			LocalSiderealTime: in.LST,
			Latitude:          in.Latitude,
			Obliquity:         in.Obliquity,
			Altitude:          in.Altitude,
		},
	}
}

func renderSweep(w io.Writer, res *sweep.Result, sites int, elapsed time.Duration) error {
	t := newTable(w, "Site", "Time", "LST", "System", "ASC", "MC")
	for _, f := range res.Frames {
		t.Row(
			f.Site,
			f.Time.UTC().Format(time.RFC3339),
			fmt.Sprintf("%.4f°", f.LST),
			f.System.String(),
			fmt.Sprintf("%.4f°", f.Cusps.Ascendant()),
			fmt.Sprintf("%.4f°", f.Cusps.Midheaven()),
		)
	}
	fmt.Fprintln(w, t.Render())
	_, err := fmt.Fprintln(w, style(w, mutedStyle).Render(fmt.Sprintf("%s charts for %s sites in %s (run %s)",
		humanize.Comma(int64(len(res.Frames))),
		humanize.Comma(int64(sites)),
		elapsed.Round(time.Microsecond),
		res.ID,
	)))
	return err
}

func renderSystems(w io.Writer, infos []systemInfo) error {
	t := newTable(w, "Tag", "Name", "Division", "Latitude limit")
	for _, info := range infos {
		division := "ascendant"
		if info.Quadrant {
			division = "quadrant"
		}
		limit := "none"
		if info.LatitudeLimit != nil {
			limit = fmt.Sprintf("±%g°", *info.LatitudeLimit)
		}
		t.Row(info.Tag, info.Name, division, limit)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
