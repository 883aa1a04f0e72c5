package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qgpscan/internal/config"
	"github.com/san-kum/qgpscan/internal/explore"
	"github.com/san-kum/qgpscan/internal/export"
	"github.com/san-kum/qgpscan/internal/hadron"
	"github.com/san-kum/qgpscan/internal/logging"
	"github.com/san-kum/qgpscan/internal/report"
	"github.com/san-kum/qgpscan/internal/storage"
	"github.com/san-kum/qgpscan/internal/threshold"
)

var (
	configFile string
	preset     string
	dataDir    string
	outDir     string
	logLevel   string
	energies   []float64
	kInel      float64
	// transition bracket
	low  float64
	high float64
	// sweeps
	energy  float64
	ks      []float64
	nparts  []float64
	verbose bool
	save    bool
	// plot grid
	plotMin    float64
	plotMax    float64
	plotPoints int
	svgPath    string
)

// cfg is resolved once per invocation in PersistentPreRunE.
var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "qgpscan",
		Short:             "QGP entropy threshold calculator",
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		RunE:              runThreshold,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "collision system preset")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "run store directory")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", ".", "directory for csv artifacts")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	rootCmd.PersistentFlags().Float64Var(&kInel, "k", 0, "inelasticity override")
	rootCmd.Flags().BoolVar(&save, "save", false, "save run to the store")

	thresholdCmd := &cobra.Command{
		Use:   "threshold",
		Short: "tabulate T and S/N over collision energies",
		RunE:  runThreshold,
	}
	thresholdCmd.Flags().Float64SliceVar(&energies, "energies", nil, "collision energies in GeV")
	thresholdCmd.Flags().BoolVar(&save, "save", false, "save run to the store")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "compare against the reference table and write csv",
		RunE:  runValidate,
	}
	validateCmd.Flags().Float64SliceVar(&energies, "energies", nil, "collision energies in GeV")
	validateCmd.Flags().BoolVar(&save, "save", false, "save run to the store")

	transitionCmd := &cobra.Command{
		Use:   "transition",
		Short: "find sqrt_s where S/N = 1",
		RunE:  runTransition,
	}
	transitionCmd.Flags().Float64Var(&low, "low", 0, "bracket low edge (GeV)")
	transitionCmd.Flags().Float64Var(&high, "high", 0, "bracket high edge (GeV)")

	sensitivityCmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "vary K_inel at one energy",
		RunE:  runSensitivity,
	}
	sensitivityCmd.Flags().Float64Var(&energy, "energy", 0, "collision energy (GeV)")
	sensitivityCmd.Flags().Float64SliceVar(&ks, "values", nil, "inelasticities")

	systemSizeCmd := &cobra.Command{
		Use:   "system-size",
		Short: "vary N_part at one energy",
		RunE:  runSystemSize,
	}
	systemSizeCmd.Flags().Float64Var(&energy, "energy", 0, "collision energy (GeV)")
	systemSizeCmd.Flags().Float64SliceVar(&nparts, "npart", nil, "participant counts")

	meltingCmd := &cobra.Command{
		Use:   "melting",
		Short: "exotic hadron melting temperatures",
		RunE:  runMelting,
	}
	meltingCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every hadron")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot T and S/N over an energy grid",
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&plotMin, "min", 5.0, "lowest energy (GeV)")
	plotCmd.Flags().Float64Var(&plotMax, "max", 200.0, "highest energy (GeV)")
	plotCmd.Flags().IntVar(&plotPoints, "points", 80, "grid points")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the S/N curve as svg")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive threshold explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := energy
			if e == 0 {
				e = cfg.Sensitivity.Energy
			}
			m := explore.New(cfg.Constants, solverOptions(), e, plotMax)
			if err := m.Err(); err != nil {
				return err
			}
			return explore.Run(m)
		},
	}
	exploreCmd.Flags().Float64Var(&energy, "energy", 0, "starting energy (GeV)")
	exploreCmd.Flags().Float64Var(&plotMax, "max", 200.0, "highest energy (GeV)")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list collision system presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.DescribePreset(name))
			}
			return w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			slog.Info("wrote config", "path", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(thresholdCmd, validateCmd, transitionCmd, sensitivityCmd, systemSizeCmd,
		meltingCmd, plotCmd, exploreCmd, runsCmd, showCmd, presetsCmd, initConfigCmd)

	return rootCmd
}

// setup resolves the configuration and installs logging. A config file
// replaces the defaults, a preset then replaces its constants, and changed
// flags win over both.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			loaded.Constants = cfg.Constants
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("k") {
		cfg.Constants.Inelasticity = kInel
	}
	if cmd.Flags().Changed("energies") {
		cfg.Energies = energies
	}
	if cmd.Flags().Changed("data") || cfg.Output.DataDir == "" {
		cfg.Output.DataDir = dataDir
	}
	if cmd.Flags().Changed("out") || cfg.Output.Dir == "" {
		cfg.Output.Dir = outDir
	}

	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if _, err := logging.Setup(cfg.LogLevel); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Debug("configuration resolved", "constants", cfg.Constants.String(), "energies", cfg.Energies)
	return nil
}

func solverOptions() threshold.Options {
	opts := cfg.SolverOptions()
	opts.Logger = slog.Default()
	return opts
}

func newSolver() (*threshold.Solver, error) {
	return threshold.New(cfg.Constants, solverOptions())
}

func runThreshold(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	report.Banner(os.Stdout, "QGP THRESHOLD", fmt.Sprintf("Using N_part = %g", cfg.Constants.Participants))

	results, err := s.Scan(cmd.Context(), cfg.Energies)
	if err != nil {
		return err
	}
	report.ThresholdTable(os.Stdout, results)

	tr, err := s.FindTransition(cfg.Transition.Low, cfg.Transition.High)
	if err != nil {
		return err
	}
	report.Transition(os.Stdout, tr)

	if save {
		return saveRun("threshold", results, storage.Summarize(tr))
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	report.Banner(os.Stdout, "VALIDATION: QGP formation from the Stefan-Boltzmann model")
	report.Constants(os.Stdout, cfg.Constants)

	results, err := s.Scan(cmd.Context(), cfg.Energies)
	if err != nil {
		return err
	}

	cs := s.CompareReference(results, cfg.Reference)
	report.ValidationTable(os.Stdout, cs)
	report.Crossings(os.Stdout, threshold.Crossings(results))
	report.Summary(os.Stdout, cs)

	path := filepath.Join(cfg.Output.Dir, cfg.Output.ResultsCSV)
	if err := storage.WriteFile(path, func(w io.Writer) error {
		return storage.WriteResults(w, results)
	}); err != nil {
		return err
	}
	report.Saved(os.Stdout, "Results saved to", path)

	sens, err := s.Sensitivity(cmd.Context(), cfg.Sensitivity.Energy, cfg.Sensitivity.Inelasticities)
	if err != nil {
		return err
	}
	report.Sensitivity(os.Stdout, sens)

	if !save {
		return nil
	}
	tr, err := s.FindTransition(cfg.Transition.Low, cfg.Transition.High)
	if err != nil {
		return err
	}
	return saveRun("validate", results, storage.Summarize(tr))
}

func runTransition(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	lo, hi := cfg.Transition.Low, cfg.Transition.High
	if cmd.Flags().Changed("low") {
		lo = low
	}
	if cmd.Flags().Changed("high") {
		hi = high
	}

	tr, err := s.FindTransition(lo, hi)
	if err != nil {
		return err
	}
	report.Transition(os.Stdout, tr)
	if tr.Found() {
		slog.Debug("transition located", "energy", tr.Energy, "iterations", tr.Iterations)
	}
	return nil
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	e := cfg.Sensitivity.Energy
	if cmd.Flags().Changed("energy") {
		e = energy
	}
	values := cfg.Sensitivity.Inelasticities
	if cmd.Flags().Changed("values") {
		values = ks
	}

	results, err := s.Sensitivity(cmd.Context(), e, values)
	if err != nil {
		return err
	}
	report.Sensitivity(os.Stdout, results)
	return nil
}

func runSystemSize(cmd *cobra.Command, args []string) error {
	s, err := newSolver()
	if err != nil {
		return err
	}

	e := cfg.SystemSize.Energy
	if cmd.Flags().Changed("energy") {
		e = energy
	}
	values := cfg.SystemSize.Participants
	if cmd.Flags().Changed("npart") {
		values = nparts
	}

	report.Banner(os.Stdout, "SYSTEM SIZE ANALYSIS",
		fmt.Sprintf("Reference N_part = %g for A = %g", cfg.Constants.Participants, cfg.Constants.MassNumber))

	results, err := s.ParticipantScan(cmd.Context(), e, values)
	if err != nil {
		return err
	}
	report.SystemSize(os.Stdout, e, results)
	return nil
}

func runMelting(cmd *cobra.Command, args []string) error {
	report.Banner(os.Stdout, "EXOTIC HADRON MELTING", fmt.Sprintf("Using N_part = %g", cfg.Constants.Participants))

	hs := hadron.SortedByMelt()
	report.Melting(os.Stdout, hs, verbose)

	path := filepath.Join(cfg.Output.Dir, cfg.Output.MeltingCSV)
	if err := storage.WriteFile(path, func(w io.Writer) error {
		return storage.WriteMelting(w, hs)
	}); err != nil {
		return err
	}
	report.Saved(os.Stdout, "Saved melting data to", path)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	if plotPoints < 2 {
		return fmt.Errorf("points must be at least 2, got %d", plotPoints)
	}
	if !(plotMin < plotMax) {
		return fmt.Errorf("invalid range [%g, %g]", plotMin, plotMax)
	}

	s, err := newSolver()
	if err != nil {
		return err
	}

	grid := make([]float64, plotPoints)
	floats.Span(grid, plotMin, plotMax)

	results, err := s.EnergyGrid(cmd.Context(), grid)
	if err != nil {
		return err
	}

	for _, p := range report.Plots(results, 80, 12) {
		fmt.Println(p)
		fmt.Println()
	}

	if svgPath != "" {
		if err := storage.WriteFile(svgPath, export.RatioChart(results, 800, 400).WriteSVG); err != nil {
			return err
		}
		slog.Info("wrote svg", "path", svgPath)
	}
	return nil
}

func saveRun(command string, results []threshold.Result, tr *storage.TransitionSummary) error {
	st := storage.New(cfg.Output.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(command, cfg.Constants, results, tr)
	if err != nil {
		return err
	}
	slog.Info("run saved", "id", runID, "dir", st.BaseDir())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.Output.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMMAND\tTIME\tPOINTS\tN_PART\tK_INEL\tTRANSITION")

	for _, run := range runs {
		tr := "-"
		if run.Transition != nil {
			if run.Transition.Found {
				tr = fmt.Sprintf("%.2f GeV", run.Transition.Energy)
			} else {
				tr = "none in bracket"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%g\t%s\n",
			run.ID,
			run.Command,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.Constants.Participants,
			run.Constants.Inelasticity,
			tr,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.Output.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	report.ThresholdTable(os.Stdout, results)
	return nil
}
