package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/askarov/stdmap/internal/analysis"
	"github.com/askarov/stdmap/internal/config"
	"github.com/askarov/stdmap/internal/eval"
	"github.com/askarov/stdmap/internal/export"
	"github.com/askarov/stdmap/internal/plot"
	"github.com/askarov/stdmap/internal/report"
	"github.com/askarov/stdmap/internal/sim"
	"github.com/askarov/stdmap/internal/store"
	"github.com/askarov/stdmap/internal/tui"
	"github.com/askarov/stdmap/internal/viz"
)

var (
	dataDir string
	kick    float64
	steps   int
	sims    int
	seed    int64
	tail    int
	i0      float64
	theta0  float64
	// sweep / bifurcation parameters
	kMin   float64
	kMax   float64
	kSteps int
	iters  int
	burnIn int
	// output
	outFile   string
	svgFile   string
	trajIndex int
	csvName   string
	csvDir    string
	plotDir   string
	// config file and preset
	configFile string
	preset     string
	// live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stdmap",
		Short: "chirikov standard map experiment lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stdmap", "data directory")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "iterate a batch of orbits at fixed K",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().Float64Var(&kick, "k", config.DefaultK, "kick strength")
	simulateCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iterations per orbit")
	simulateCmd.Flags().IntVar(&sims, "sims", config.DefaultSims, "number of initial conditions")
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	simulateCmd.Flags().IntVar(&tail, "tail", config.DefaultTail, "tail length for the portrait")
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run batches across a K range and plot the diagnostics",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&kMin, "kmin", 0.0, "sweep lower bound")
	sweepCmd.Flags().Float64Var(&kMax, "kmax", 4.0, "sweep upper bound")
	sweepCmd.Flags().IntVar(&kSteps, "runs", 20, "number of K values")
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iterations per orbit")
	sweepCmd.Flags().IntVar(&sims, "sims", config.DefaultSims, "initial conditions per K")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	sweepCmd.Flags().IntVar(&tail, "tail", config.DefaultTail, "tail length for the diagnostics")
	sweepCmd.Flags().StringVar(&plotDir, "plots", "results/plots", "plot output directory")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "sweep K from one initial condition and plot late-time I",
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&kMin, "kmin", 0.0, "sweep lower bound")
	bifurcationCmd.Flags().Float64Var(&kMax, "kmax", 4.0, "sweep upper bound")
	bifurcationCmd.Flags().IntVar(&kSteps, "ksteps", 400, "number of K values")
	bifurcationCmd.Flags().IntVar(&iters, "iters", config.DefaultIters, "iterations per K")
	bifurcationCmd.Flags().IntVar(&burnIn, "burnin", config.DefaultBurnIn, "transient steps to discard")
	bifurcationCmd.Flags().Float64Var(&i0, "i0", 1.0, "initial momentum")
	bifurcationCmd.Flags().Float64Var(&theta0, "theta0", 2.0, "initial angle")
	bifurcationCmd.Flags().StringVar(&outFile, "out", "", "PNG output path (empty = terminal render)")
	bifurcationCmd.Flags().StringVar(&svgFile, "svg", "", "also save the terminal render as SVG")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase-space portrait of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPhase,
	}
	phaseCmd.Flags().IntVar(&tail, "tail", config.DefaultTail, "tail length")
	phaseCmd.Flags().IntVar(&trajIndex, "traj", -1, "single trajectory index (Poincaré section)")
	phaseCmd.Flags().StringVar(&outFile, "out", "", "PNG output path (empty = terminal render)")
	phaseCmd.Flags().StringVar(&svgFile, "svg", "", "also save the terminal render as SVG")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "largest Lyapunov exponent across a K range",
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&kMin, "kmin", 0.0, "sweep lower bound")
	lyapunovCmd.Flags().Float64Var(&kMax, "kmax", 8.0, "sweep upper bound")
	lyapunovCmd.Flags().IntVar(&kSteps, "ksteps", 80, "number of K values")
	lyapunovCmd.Flags().IntVar(&steps, "steps", 5000, "iterations per estimate")
	lyapunovCmd.Flags().Float64Var(&i0, "i0", 1.0, "initial momentum")
	lyapunovCmd.Flags().Float64Var(&theta0, "theta0", 2.0, "initial angle")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run to a flat CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&csvDir, "dir", "results/csvs", "output directory")
	exportCmd.Flags().StringVar(&csvName, "name", "", "file name (default K-<val>-len-<steps>.csv)")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "sweep K and write an HTML report with interactive charts",
		RunE:  runReport,
	}
	reportCmd.Flags().Float64Var(&kMin, "kmin", 0.0, "sweep lower bound")
	reportCmd.Flags().Float64Var(&kMax, "kmax", 4.0, "sweep upper bound")
	reportCmd.Flags().IntVar(&kSteps, "runs", 10, "number of K values")
	reportCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iterations per orbit")
	reportCmd.Flags().IntVar(&sims, "sims", config.DefaultSims, "initial conditions per K")
	reportCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	reportCmd.Flags().IntVar(&tail, "tail", config.DefaultTail, "tail length")
	reportCmd.Flags().StringVar(&outFile, "out", "report.html", "HTML output path")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a single orbit in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&kick, "k", config.DefaultK, "kick strength")
	liveCmd.Flags().Float64Var(&i0, "i0", 1.0, "initial momentum")
	liveCmd.Flags().Float64Var(&theta0, "theta0", 2.0, "initial angle")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-10s K=%-9g steps=%-6d sims=%d\n", name, cfg.K, cfg.Steps, cfg.Sims)
			}
			return nil
		},
	}

	rootCmd.AddCommand(simulateCmd, sweepCmd, bifurcationCmd, phaseCmd, lyapunovCmd,
		listCmd, exportCmd, reportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		if !cmd.Flags().Changed("k") {
			kick = cfg.K
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("sims") {
			sims = cfg.Sims
		}
		if !cmd.Flags().Changed("tail") {
			tail = cfg.Tail
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("k") {
			kick = cfg.K
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("sims") {
			sims = cfg.Sims
		}
		if !cmd.Flags().Changed("tail") {
			tail = cfg.Tail
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator, err := sim.New(sim.Options{K: kick, Steps: steps, Sims: sims, Seed: seed})
	if err != nil {
		return err
	}

	fmt.Printf("simulating %d orbits at K=%g for %d steps...\n", sims, kick, steps)
	start := time.Now()

	batch, err := simulator.Simulate(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(batch)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("seed: %d\n\n", batch.Seed)

	fmt.Println(viz.PhasePortrait(batch, tail, 80, 24))

	series := batch.Trajectories[0].ITail(min(tail, batch.Trajectories[0].Len()))
	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("I (trajectory 0, late-time)"),
	)
	fmt.Println(graph)

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator, err := sim.New(sim.Options{K: kMin, Steps: steps, Sims: sims, Seed: seed})
	if err != nil {
		return err
	}

	history := sim.NewHistory()
	ks := floats.Span(make([]float64, kSteps), kMin, kMax)
	for _, k := range ks {
		if err := simulator.SetK(k); err != nil {
			return err
		}
		batch, err := simulator.Simulate(context.Background())
		if err != nil {
			return err
		}
		history.Append(batch)
		if _, err := st.Save(batch); err != nil {
			return err
		}
	}
	fmt.Println(history)

	ev := eval.New(history)
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		return err
	}

	kVals, iVals, err := ev.IKDiagnosticData(tail)
	if err != nil {
		return err
	}
	iFile := filepath.Join(plotDir, "ik-sweep.png")
	if err := plot.Sweep(kVals, iVals, "I_n", iFile); err != nil {
		return err
	}

	kVals, thetaVals, err := ev.ThetaKDiagnosticData(tail)
	if err != nil {
		return err
	}
	thetaFile := filepath.Join(plotDir, "thetak-sweep.png")
	if err := plot.Sweep(kVals, thetaVals, "theta_n", thetaFile); err != nil {
		return err
	}

	fmt.Printf("wrote %s and %s\n", iFile, thetaFile)
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	cfg := analysis.BifurcationConfig{
		KMin: kMin, KMax: kMax, KSteps: kSteps,
		I0: i0, Theta0: theta0,
		Iters: iters, BurnIn: burnIn,
	}

	fmt.Printf("sweeping K in [%g, %g] over %d values...\n", kMin, kMax, kSteps)
	data, err := analysis.Bifurcation(cfg)
	if err != nil {
		return err
	}

	if svgFile != "" {
		if err := export.WriteSVG(svgFile, viz.BifurcationCanvas(data, 80, 24), 4); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}

	if outFile == "" {
		fmt.Println(viz.BifurcationASCII(data, 80, 24))
		return nil
	}
	if err := plot.Bifurcation(data, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runPhase(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	batch, err := st.LoadBatch(args[0])
	if err != nil {
		return err
	}

	if trajIndex >= 0 {
		if outFile == "" {
			out, err := viz.PoincareSection(batch, trajIndex, 80, 24)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}
		if err := plot.PoincareSection(batch, trajIndex, outFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	if svgFile != "" {
		if err := export.WriteSVG(svgFile, viz.PhaseCanvas(batch, tail, 80, 24), 4); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}

	if outFile == "" {
		fmt.Println(viz.PhasePortrait(batch, tail, 80, 24))
		return nil
	}
	if err := plot.PhaseScatter(batch, tail, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	ks := floats.Span(make([]float64, kSteps), kMin, kMax)
	exponents := analysis.LyapunovSweep(ks, i0, theta0, steps)

	graph := asciigraph.Plot(exponents,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("largest Lyapunov exponent, K in [%g, %g]", kMin, kMax)),
	)
	fmt.Println(graph)

	// spot values at the ends and middle
	for _, n := range []int{0, len(ks) / 2, len(ks) - 1} {
		fmt.Printf("  K=%-8.4f λ=%.4f\n", ks[n], exponents[n])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tK\tSTEPS\tSIMS\tSEED\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%g\t%d\t%d\t%d\t%s\n",
			run.ID, run.K, run.Steps, run.Sims, run.Seed,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	batch, err := st.LoadBatch(args[0])
	if err != nil {
		return err
	}

	path, err := store.ExportCSV(batch, csvDir, csvName)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	simulator, err := sim.New(sim.Options{K: kMin, Steps: steps, Sims: sims, Seed: seed})
	if err != nil {
		return err
	}

	history := sim.NewHistory()
	ks := floats.Span(make([]float64, kSteps), kMin, kMax)
	for _, k := range ks {
		if err := simulator.SetK(k); err != nil {
			return err
		}
		batch, err := simulator.Simulate(context.Background())
		if err != nil {
			return err
		}
		history.Append(batch)
	}

	bif, err := analysis.Bifurcation(analysis.BifurcationConfig{
		KMin: kMin, KMax: kMax, KSteps: 400,
		I0: 1.0, Theta0: 2.0,
		Iters: config.DefaultIters, BurnIn: config.DefaultBurnIn,
	})
	if err != nil {
		return err
	}

	if err := report.WriteFile(outFile, history, bif, tail); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	model, err := tui.NewModel(kick, i0, theta0, frameRate)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
