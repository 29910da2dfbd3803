package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/metrics"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/physics"
	"github.com/san-kum/odelab/internal/shoot"
	"github.com/san-kum/odelab/internal/store"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	t0         float64
	pos        float64
	vel        float64
	configFile string
	asJSON     bool
	noSave     bool
	// shooting flags
	ivpDt   float64
	t1      float64
	target  float64
	low     float64
	high    float64
	tol     float64
	maxIter int
	verbose bool
	// live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE integration and shooting-method BVP lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	integrateCmd := &cobra.Command{
		Use:   "integrate [model]",
		Short: "integrate a model with forward Euler",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegrate,
	}
	integrateCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	integrateCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	integrateCmd.Flags().Float64Var(&t0, "t0", 0, "start time")
	integrateCmd.Flags().Float64Var(&pos, "pos", config.DefaultPos, "initial position")
	integrateCmd.Flags().Float64Var(&vel, "vel", 0, "initial velocity")
	integrateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	integrateCmd.Flags().BoolVar(&asJSON, "json", false, "print the trajectory as JSON")
	integrateCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")

	shootCmd := &cobra.Command{
		Use:   "shoot",
		Short: "solve the ball-drop boundary value problem by bisection",
		RunE:  runShoot,
	}
	shootCmd.Flags().Float64Var(&ivpDt, "dt", 1e-3, "IVP step size")
	shootCmd.Flags().Float64Var(&t0, "t0", 0, "start time")
	shootCmd.Flags().Float64Var(&t1, "t1", config.DefaultSpan, "boundary time")
	shootCmd.Flags().Float64Var(&target, "target", 0, "target height at t1")
	shootCmd.Flags().Float64Var(&low, "low", 0, "bracket low")
	shootCmd.Flags().Float64Var(&high, "high", config.DefaultHigh, "bracket high")
	shootCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "residual tolerance")
	shootCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration budget")
	shootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every iteration")
	shootCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	liveCmd.Flags().Float64Var(&pos, "pos", config.DefaultPos, "initial position")
	liveCmd.Flags().Float64Var(&vel, "vel", 0, "initial velocity")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(integrateCmd, shootCmd, listCmd, plotCmd, exportCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildModel(name string) (ode.System, ode.Hamiltonian, error) {
	switch name {
	case "oscillator":
		m := physics.NewOscillator()
		return m, m, nil
	case "balldrop":
		m := physics.NewBallDrop()
		return m, m, nil
	default:
		return nil, nil, fmt.Errorf("unknown model %q (oscillator, balldrop)", name)
	}
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	model := args[0]

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		model = cfg.Model
		dt = cfg.Dt
		steps = cfg.Steps
		t0 = cfg.T0
		init := cfg.GetInitState()
		pos, vel = init[0], init[1]
	}

	sys, ham, err := buildModel(model)
	if err != nil {
		return err
	}

	integ := ode.NewFixedStep(dt)
	tr, err := integ.Integrate(sys.Derive, ode.Vector(pos, vel), t0, steps)
	if err != nil {
		return err
	}

	drift := metrics.NewEnergyDrift(ham)
	tr.Each(drift.Observe)
	slope := analysis.DriftSlope(tr.Times, drift.Series())
	runMetrics := map[string]float64{
		drift.Name():  drift.Value(),
		"drift_slope": slope,
	}

	if asJSON {
		return store.ExportJSON(model, dt, tr, runMetrics)
	}

	fmt.Print(viz.Plot(model, tr.Component(0), 12))
	fmt.Print(viz.Caption("steps=%d dt=%g final=%.4f energy drift=%.3g (slope %.3g/s)",
		steps, dt, tr.Final().Data[0], drift.Value(), slope))

	if noSave {
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(model, dt, t0, tr, runMetrics)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", runID)
	return nil
}

func runShoot(cmd *cobra.Command, args []string) error {
	ball := physics.NewBallDrop()

	prob := shoot.Problem{
		Deriv: ball.Derive,
		InitState: func(v0 float64) ode.State {
			return ode.Vector(0, v0)
		},
		Solver: ode.NewFixedStep(ivpDt),
		T0:     t0,
		T1:     t1,
		Target: target,
	}

	bisector := shoot.NewBisector(tol, maxIter)
	if verbose {
		logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
		bisector.Logger = kitlog.With(logger, "cmd", "shoot")
	}

	res, err := bisector.Solve(prob.Residual(), low, high)
	if err != nil {
		return err
	}

	if asJSON {
		return store.ExportShootJSON(res)
	}

	outcome := "converged"
	if !res.Converged {
		outcome = "exhausted iteration budget"
	}
	fmt.Printf("v0 = %.6f (%s after %d iterations, %d residual evaluations)\n",
		res.Root, outcome, res.Iterations, res.Evaluations)
	fmt.Printf("residual %.3g, bracket [%.6f, %.6f]\n",
		res.Residual, res.Bracket.X1, res.Bracket.X2)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tDT\tSTEPS\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%s\n",
			r.ID, r.Model, r.Dt, r.Steps, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	titles := make([]string, len(series))
	for i := range titles {
		titles[i] = fmt.Sprintf("%s y%d", meta.Model, i)
	}
	fmt.Print(viz.PlotComponents(titles, series, 10))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runLive(cmd *cobra.Command, args []string) error {
	sys, ham, err := buildModel(args[0])
	if err != nil {
		return err
	}
	m := viz.NewModel(sys.Derive, ham, dt, ode.Vector(pos, vel), args[0], frameRate)
	return viz.Run(m)
}
