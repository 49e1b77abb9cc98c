package chart

import (
	"errors"
	"io"
	"math"

	"social-analytics-dashboard/internal/analytics/core/domain"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrUnknownChart = errors.New("unknown chart")
	ErrNoData       = errors.New("no data to chart")
)

// Chart names served by the dashboard.
const (
	FollowerGrowth = "followers"
	Engagement     = "engagement"
	Reach          = "reach"
	Posts          = "posts"
)

var Names = []string{FollowerGrowth, Engagement, Reach, Posts}

// Palette assigned to platforms in order of first appearance.
var Palette = []drawing.Color{
	drawing.ColorFromHex("0078d4"),
	drawing.ColorFromHex("00b294"),
	drawing.ColorFromHex("f3a536"),
	drawing.ColorFromHex("d83b01"),
}

var (
	primary = Palette[0]
	teal    = Palette[1]
)

type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 640, Height: 320}
}

// Render writes the named chart of d as PNG.
func (r *Renderer) Render(w io.Writer, name string, d *domain.Dashboard) error {
	switch name {
	case FollowerGrowth:
		return r.followerGrowth(w, d.Growth)
	case Engagement:
		return r.engagement(w, d.Platforms)
	case Reach:
		return r.reach(w, d.Platforms)
	case Posts:
		return r.posts(w, d.Platforms)
	default:
		return ErrUnknownChart
	}
}

func (r *Renderer) followerGrowth(w io.Writer, points []domain.GrowthPoint) error {
	if len(points) == 0 {
		return ErrNoData
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	ticks := make([]gochart.Tick, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = float64(p.Followers)
		ticks[i] = gochart.Tick{Value: float64(i), Label: p.Date}
	}
	// the x range comes from the ticks and must not be empty
	if len(points) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
		ticks = append(ticks, gochart.Tick{Value: 1})
	}

	style := gochart.Style{
		StrokeColor: primary,
		StrokeWidth: 2,
		DotColor:    primary,
		DotWidth:    4,
	}

	ch := gochart.Chart{
		Title:  "Follower Growth Over Time",
		Width:  r.Width,
		Height: r.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{Ticks: ticks},
		YAxis: gochart.YAxis{Range: valueRange(ys)},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: "followers", XValues: xs, YValues: ys, Style: style},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return ch.Render(gochart.PNG, w)
}

func (r *Renderer) engagement(w io.Writer, stats []domain.PlatformStat) error {
	bars := make([]gochart.Value, 0, len(stats))
	for _, s := range stats {
		bars = append(bars, gochart.Value{
			Label: s.Platform,
			Value: s.Engagement,
			Style: gochart.Style{FillColor: primary, StrokeColor: primary},
		})
	}
	return r.bar(w, "Engagement Rate by Platform", bars)
}

func (r *Renderer) posts(w io.Writer, stats []domain.PlatformStat) error {
	bars := make([]gochart.Value, 0, len(stats))
	for _, s := range stats {
		bars = append(bars, gochart.Value{
			Label: s.Platform,
			Value: float64(s.Posts),
			Style: gochart.Style{FillColor: teal, StrokeColor: teal},
		})
	}
	return r.bar(w, "Posts Count per Platform", bars)
}

func (r *Renderer) bar(w io.Writer, title string, bars []gochart.Value) error {
	if len(bars) == 0 {
		return ErrNoData
	}
	// nothing to draw when every value is zero
	if allZero(bars) {
		return ErrNoData
	}

	ys := make([]float64, len(bars))
	for i, b := range bars {
		ys[i] = b.Value
	}

	ch := gochart.BarChart{
		Title:    title,
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: 48,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		YAxis: gochart.YAxis{Range: valueRange(ys)},
		Bars:  bars,
	}
	return ch.Render(gochart.PNG, w)
}

func (r *Renderer) reach(w io.Writer, stats []domain.PlatformStat) error {
	values := make([]gochart.Value, 0, len(stats))
	for i, s := range stats {
		c := Palette[i%len(Palette)]
		values = append(values, gochart.Value{
			Label: s.Platform,
			Value: float64(s.Reach),
			Style: gochart.Style{FillColor: c, StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 || allZero(values) {
		return ErrNoData
	}

	ch := gochart.PieChart{
		Title:  "Reach Distribution by Platform",
		Width:  r.Height,
		Height: r.Height,
		Values: values,
	}
	return ch.Render(gochart.PNG, w)
}

// valueRange starts the axis at zero and leaves headroom above the largest
// value. go-chart refuses a range whose delta is zero.
func valueRange(ys []float64) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	hi *= 1.1
	if hi <= lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}

func allZero(values []gochart.Value) bool {
	for _, v := range values {
		if v.Value != 0 {
			return false
		}
	}
	return true
}
