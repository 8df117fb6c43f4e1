package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/theirongolddev/cbakit/internal/projection"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

var (
	colorLine    = drawing.ColorFromHex("4385BE")
	colorCost    = drawing.ColorFromHex("D14D41")
	colorRevenue = drawing.ColorFromHex("879A39")
	colorAxis    = drawing.ColorFromHex("6F6E69")
)

// RenderPaybackChart plots cumulative cash flow by year, starting from the
// initial outlay at year 0.
func RenderPaybackChart(res projection.PaybackResult, width, height int) ([]byte, error) {
	xs := []float64{0}
	ys := []float64{-res.Input.InitialInvestment}
	for _, r := range res.Rows {
		xs = append(xs, float64(r.Year))
		ys = append(ys, r.Cumulative)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Cumulative Cash Flow",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: colorLine, StrokeWidth: 3, DotColor: colorLine, DotWidth: 4},
		},
		zeroLine(0, xs[len(xs)-1]),
	}
	if res.Recovered {
		series = append(series, chart.AnnotationSeries{Annotations: []chart.Value2{{
			XValue: res.FractionalYears,
			YValue: 0,
			Label:  fmt.Sprintf("Payback %.2f yrs", res.FractionalYears),
		}}})
	}

	return render(chart.Chart{
		Title:  "Payback Period",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Year", Range: span(xs), ValueFormatter: yearFormatter},
		YAxis:  chart.YAxis{Name: "Cumulative Cash Flow", Range: span(ys, 0)},
		Series: series,
	})
}

// RenderNPVChart plots discounted present value per year alongside the
// running net position, which starts at minus the initial investment.
func RenderNPVChart(res projection.NPVResult, width, height int) ([]byte, error) {
	xs := []float64{0}
	net := []float64{-res.InitialInvestment}
	pvx := make([]float64, 0, len(res.Rows))
	pvy := make([]float64, 0, len(res.Rows))
	running := -res.InitialInvestment
	for _, r := range res.Rows {
		running += r.PresentValue
		xs = append(xs, float64(r.Year))
		net = append(net, running)
		pvx = append(pvx, float64(r.Year))
		pvy = append(pvy, r.PresentValue)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Net Position",
			XValues: xs,
			YValues: net,
			Style:   chart.Style{StrokeColor: colorLine, StrokeWidth: 3, DotColor: colorLine, DotWidth: 4},
		},
		chart.ContinuousSeries{
			Name:    "Present Value",
			XValues: pvx,
			YValues: pvy,
			Style:   chart.Style{StrokeColor: colorRevenue, StrokeWidth: 2, DotColor: colorRevenue, DotWidth: 4},
		},
		zeroLine(0, xs[len(xs)-1]),
		chart.AnnotationSeries{Annotations: []chart.Value2{{
			XValue: xs[len(xs)-1],
			YValue: running,
			Label:  fmt.Sprintf("NPV %.2f", res.NetPresentValue),
		}}},
	}

	g := chart.Chart{
		Title:  "Net Present Value",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Year", Range: span(xs), ValueFormatter: yearFormatter},
		YAxis:  chart.YAxis{Name: "Value", Range: span(append(net, pvy...), 0)},
		Series: series,
	}
	g.Elements = []chart.Renderable{chart.Legend(&g)}
	return render(g)
}

// RenderBreakEvenChart plots total cost and total revenue against units
// with the break-even point marked.
func RenderBreakEvenChart(res projection.BreakEvenResult, width, height int) ([]byte, error) {
	curve := res.Curve(breakEvenCurvePoints)
	if len(curve) < 2 {
		// Zero fixed costs: sample a small range so both lines are visible.
		curve = projection.BreakEvenResult{Input: res.Input, Units: 1}.Curve(breakEvenCurvePoints)
	}
	units := make([]float64, len(curve))
	cost := make([]float64, len(curve))
	revenue := make([]float64, len(curve))
	for i, p := range curve {
		units[i] = p.Units
		cost[i] = p.TotalCost
		revenue[i] = p.TotalRevenue
	}

	g := chart.Chart{
		Title:  "Break-Even Analysis",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Units", Range: span(units)},
		YAxis:  chart.YAxis{Name: "Amount", Range: span(append(cost, revenue...), 0)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Total Cost",
				XValues: units,
				YValues: cost,
				Style:   chart.Style{StrokeColor: colorCost, StrokeWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Total Revenue",
				XValues: units,
				YValues: revenue,
				Style:   chart.Style{StrokeColor: colorRevenue, StrokeWidth: 3},
			},
			chart.AnnotationSeries{Annotations: []chart.Value2{{
				XValue: res.Units,
				YValue: res.Revenue,
				Label:  fmt.Sprintf("Break-even %.2f units", res.Units),
			}}},
		},
	}
	g.Elements = []chart.Renderable{chart.Legend(&g)}
	return render(g)
}

func render(g chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zeroLine(from, to float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    "Break-even",
		XValues: []float64{from, to},
		YValues: []float64{0, 0},
		Style:   chart.Style{StrokeColor: colorAxis, StrokeWidth: 1, StrokeDashArray: []float64{5, 5}},
	}
}

// span returns an axis range covering values and extra, padded by 5% and
// never zero width.
func span(values []float64, extra ...float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range append(append([]float64(nil), values...), extra...) {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.05, 1)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func yearFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

// Default chart image names, used when no path is given.
const (
	PaybackChartFile   = "payback_chart.png"
	NPVChartFile       = "npv_chart.png"
	BreakEvenChartFile = "break_even_chart.png"
)

// SavePaybackChart renders the payback chart to path, or to
// PaybackChartFile in Dir when path is empty. It returns the written path.
func (e *Exporter) SavePaybackChart(res projection.PaybackResult, path string) (string, error) {
	w, h := e.size()
	png, err := RenderPaybackChart(res, w, h)
	if err != nil {
		return "", fmt.Errorf("rendering payback chart: %w", err)
	}
	return e.saveImage(png, path, PaybackChartFile)
}

// SaveNPVChart renders the NPV chart to path (default NPVChartFile in Dir).
func (e *Exporter) SaveNPVChart(res projection.NPVResult, path string) (string, error) {
	w, h := e.size()
	png, err := RenderNPVChart(res, w, h)
	if err != nil {
		return "", fmt.Errorf("rendering npv chart: %w", err)
	}
	return e.saveImage(png, path, NPVChartFile)
}

// SaveBreakEvenChart renders the break-even chart to path (default
// BreakEvenChartFile in Dir).
func (e *Exporter) SaveBreakEvenChart(res projection.BreakEvenResult, path string) (string, error) {
	w, h := e.size()
	png, err := RenderBreakEvenChart(res, w, h)
	if err != nil {
		return "", fmt.Errorf("rendering break-even chart: %w", err)
	}
	return e.saveImage(png, path, BreakEvenChartFile)
}

func (e *Exporter) saveImage(png []byte, path, name string) (string, error) {
	if path == "" {
		var err error
		if path, err = e.path(name); err != nil {
			return "", err
		}
	}
	if err := SaveChart(path, png); err != nil {
		return "", err
	}
	e.logger().Info("saved chart", zap.String("path", path))
	return path, nil
}
