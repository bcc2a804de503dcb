// Package report assembles the diagnostic charts into a single HTML page
// with interactive scatter plots.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/askarov/stdmap/internal/analysis"
	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/eval"
	"github.com/askarov/stdmap/internal/sim"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func scatterData(xs, ys []float64) []opts.ScatterData {
	data := make([]opts.ScatterData, len(xs))
	for n := range xs {
		data[n] = opts.ScatterData{Value: []interface{}{xs[n], ys[n]}}
	}
	return data
}

func phaseChart(b *sim.Batch, tail int) (*charts.Scatter, error) {
	ev := eval.New(historyOf(b))
	iVals, thetaVals, err := ev.PhaseSpaceData(0, tail)
	if err != nil {
		return nil, err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Phase space",
			Subtitle: fmt.Sprintf("K=%g sims=%d steps=%d tail=%d", b.K, b.Sims(), b.Steps, tail),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: chirikov.TwoPi, Name: "theta"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: chirikov.TwoPi, Name: "I"}),
	)
	scatter.AddSeries("tail", scatterData(thetaVals, iVals),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	return scatter, nil
}

func bifurcationChart(d *analysis.BifurcationData) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Bifurcation diagram",
			Subtitle: fmt.Sprintf("%d samples", len(d.K)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "K"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: chirikov.TwoPi, Name: "I_n (late-time)"}),
	)
	scatter.AddSeries("sweep", scatterData(d.K, d.I),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	return scatter
}

func sweepChart(kVals, vals []float64, name string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s vs K", name)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "K"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: chirikov.TwoPi, Name: name}),
	)
	scatter.AddSeries(name, scatterData(kVals, vals),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	return scatter
}

// historyOf wraps a single batch so the evaluator can slice it.
func historyOf(b *sim.Batch) *sim.History {
	h := sim.NewHistory()
	h.Append(b)
	return h
}

// Write renders phase, sweep and bifurcation charts for the history into a
// single HTML page. Batches unable to supply the requested tail are an
// error, matching the evaluator's validation.
func Write(w io.Writer, h *sim.History, bif *analysis.BifurcationData, tail int) error {
	page := components.NewPage()
	page.PageTitle = "standard map report"

	if h != nil && h.Len() > 0 {
		last, err := h.Last()
		if err != nil {
			return err
		}
		phase, err := phaseChart(last, tail)
		if err != nil {
			return err
		}
		page.AddCharts(phase)

		ev := eval.New(h)
		kVals, iVals, err := ev.IKDiagnosticData(tail)
		if err != nil {
			return err
		}
		page.AddCharts(sweepChart(kVals, iVals, "I_n"))

		kVals, thetaVals, err := ev.ThetaKDiagnosticData(tail)
		if err != nil {
			return err
		}
		page.AddCharts(sweepChart(kVals, thetaVals, "theta_n"))
	}

	if bif != nil {
		page.AddCharts(bifurcationChart(bif))
	}

	return page.Render(w)
}

// WriteFile is Write targeting a file path.
func WriteFile(path string, h *sim.History, bif *analysis.BifurcationData, tail int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	return Write(f, h, bif, tail)
}
