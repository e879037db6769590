package charts

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/motion.report/internal/frames"
	"github.com/banshee-data/motion.report/internal/metrics"
)

const (
	plotWidth  = 14 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// series is one named line of a time-series plot.
type series struct {
	name string
	ys   []float64
}

// pressureSeries returns the six per-frame zone averages, left foot first.
func pressureSeries(seq []frames.BalanceMatFrame) []series {
	var out []series
	for _, side := range []frames.Side{frames.Left, frames.Right} {
		for _, z := range metrics.Zones {
			out = append(out, series{
				name: fmt.Sprintf("%s %s", side, z),
				ys:   metrics.ZoneSeries(seq, side, z),
			})
		}
	}
	return out
}

// gaitChannels are the body-angle channels drawn on the gait plot.
var gaitChannels = []string{
	"leftHipFlexion",
	"rightHipFlexion",
	"leftKneeFlexion_Extension",
	"rightKneeFlexion_Extension",
	"leftAnkleDorsiflexion",
	"rightAnkleDorsiflexion",
}

func gaitSeries(seq []frames.BodyAngleFrame) []series {
	out := make([]series, 0, len(gaitChannels))
	for _, name := range gaitChannels {
		ch, ok := frames.BodyAngleChannelByName(name)
		if !ok {
			continue
		}
		out = append(out, series{name: name, ys: ch.Values(seq)})
	}
	return out
}

// renderLinePlot draws every series against frame index and encodes the plot
// as PNG.
func renderLinePlot(title, yLabel string, ss []series) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = yLabel

	colors := generateColors(len(ss))
	for i, s := range ss {
		if len(s.ys) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.ys))
		for j, y := range s.ys {
			pts[j] = plotter.XY{X: float64(j), Y: y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", s.name, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	w, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("create png writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf.Bytes(), nil
}

// generateColors creates a palette of n evenly spaced hues.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		r, g, b := hslToRGB(float64(i)/float64(n), 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hexColor formats c as #rrggbb for the HTML charts.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64
	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
