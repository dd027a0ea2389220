package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/config"
	"github.com/san-kum/gridpad/internal/engine"
	"github.com/san-kum/gridpad/internal/export"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/metrics"
	"github.com/san-kum/gridpad/internal/optim"
	"github.com/san-kum/gridpad/internal/pad"
	"github.com/san-kum/gridpad/internal/readout"
	"github.com/san-kum/gridpad/internal/script"
	"github.com/san-kum/gridpad/internal/tui"
	"github.com/san-kum/gridpad/internal/viz"
)

var (
	configFile string
	preset     string
	logFile    string
	theme      string
	size       int

	outPath string
	format  string
	col     int
	row     int
	scale   float64

	from    string
	to      string
	frames  int
	method  string
	trajOut string

	dampings  []float64
	stiffness []float64
	topTrials int

	logOut *os.File
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "gridpad",
		Short:             "two-dimensional grid selector",
		PersistentPreRunE: setupLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logOut != nil {
				logOut.Close()
			}
		},
		RunE:          runPad,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().IntVar(&size, "size", config.DefaultSize, "grid size (coerced to odd, at least 3)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the interactive pad",
		RunE:  runPad,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the pad to an image",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVar(&outPath, "out", "gridpad.png", "output file")
	snapshotCmd.Flags().StringVar(&format, "format", "", "png or svg (default from extension)")
	snapshotCmd.Flags().IntVar(&col, "col", 0, "selected column (default: initial cell)")
	snapshotCmd.Flags().IntVar(&row, "row", 0, "selected row (default: initial cell)")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 4, "pixels per layout unit")

	replayCmd := &cobra.Command{
		Use:   "replay [script.yaml]",
		Short: "replay a gesture script headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  replay,
	}

	settleCmd := &cobra.Command{
		Use:   "settle",
		Short: "plot the settle trajectory between two cells",
		RunE:  settle,
	}
	settleCmd.Flags().StringVar(&from, "from", "1,1", "start cell as col,row")
	settleCmd.Flags().StringVar(&to, "to", "11,11", "target cell as col,row")
	settleCmd.Flags().IntVar(&frames, "frames", 60, "frames to simulate")
	settleCmd.Flags().StringVar(&method, "method", "", "settle method (analytic, rk4, verlet, euler)")
	settleCmd.Flags().StringVar(&trajOut, "out", "", "save the trajectory (.json or .csv)")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid-search spring constants for a fast settle",
		RunE:  tune,
	}
	tuneCmd.Flags().Float64SliceVar(&dampings, "damping", []float64{10, 15, 20, 25, 30}, "damping values to try")
	tuneCmd.Flags().Float64SliceVar(&stiffness, "stiffness", []float64{120, 180, 240, 320, 400}, "stiffness values to try")
	tuneCmd.Flags().StringVar(&method, "method", "", "settle method (analytic, rk4, verlet, euler)")
	tuneCmd.Flags().IntVar(&topTrials, "top", 10, "number of trials to print")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets, themes and settle methods",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, snapshotCmd, replayCmd, settleCmd, tuneCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logOut = f
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pad.SetLogger(logger)
	gg.SetLogger(logger)
	logger.Info("gridpad starting", slog.String("command", cmd.Name()))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("size") {
		cfg.Grid.Size = size
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRuntime(cmd *cobra.Command) (*config.Config, *engine.Runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		return nil, nil, err
	}
	rt, err := engine.New(ec)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rt, nil
}

func runPad(cmd *cobra.Command, args []string) error {
	cfg, rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	model := tui.New(rt, tui.Options{
		Readouts: cfg.Readouts,
		Theme:    viz.GetTheme(cfg.Theme),
		FPS:      cfg.Animator.FPS,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return rt.Run(groupCtx)
	})
	group.Go(func() error {
		defer cancel()
		p := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithReportFocus(),
			tea.WithContext(groupCtx),
		)
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && groupCtx.Err() != nil {
			return nil
		}
		return err
	})
	return group.Wait()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	spec := cfg.Spec()
	cell := spec.Flip(cfg.Initial())
	if cmd.Flags().Changed("col") {
		cell.Col = col
	}
	if cmd.Flags().Changed("row") {
		cell.Row = row
	}

	scene := export.NewScene(cfg.Density(), spec, cell, viz.GetTheme(cfg.Theme), scale)
	if err := export.Write(outPath, format, scene); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%.0fx%.0f)\n", outPath, scene.Size(), scene.Size())
	return nil
}

func replay(cmd *cobra.Command, args []string) error {
	sc, err := script.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	cfg, rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := []string{"STEP", "ACTION", "CELL", "X", "Y"}
	for _, r := range cfg.Readouts {
		header = append(header, r.Label())
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	_, runErr := script.Run(ctx, rt, sc, func(res script.Result) {
		fields := []string{
			strconv.Itoa(res.Index),
			res.Action,
			fmt.Sprintf("%d,%d", res.Cell.Col, res.Cell.Row),
			fmt.Sprintf("%.3f", res.Coordinate.X),
			fmt.Sprintf("%.3f", res.Coordinate.Y),
		}
		for _, r := range cfg.Readouts {
			fields = append(fields, r.Read(res.Coordinate))
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	})
	w.Flush()

	cancel()
	if err := <-done; err != nil {
		return err
	}
	return runErr
}

func parseCell(s string) (geom.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Cell{}, fmt.Errorf("cell %q: want col,row", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return geom.Cell{Col: c, Row: r}, nil
}

func settle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start, err := parseCell(from)
	if err != nil {
		return err
	}
	target, err := parseCell(to)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("method") {
		cfg.Animator.Method = method
	}
	if frames < 2 {
		return fmt.Errorf("need at least 2 frames, got %d", frames)
	}

	ctrl := pad.NewController(cfg.Spec(), start)
	ctrl.MoveTo(start.Col, start.Row, false)
	animator, err := anim.New(ctrl.Store(), cfg.AnimConfig())
	if err != nil {
		return err
	}
	origin, _ := animator.Advance()
	ctrl.MoveTo(target.Col, target.Row, false)

	goal := ctrl.Snapshot().Position
	ms := metrics.Defaults(cfg.Spring)
	metrics.BeginAll(ms, origin.Position)
	traj := &export.Trajectory{
		Method:  cfg.Animator.Method,
		FPS:     cfg.Animator.FPS,
		From:    start,
		To:      target,
		Metrics: make(map[string]float64, len(ms)),
	}
	for i := 0; i < frames; i++ {
		f, _ := animator.Advance()
		traj.Append(f)
		metrics.ObserveAll(ms, f, goal)
	}
	for _, m := range ms {
		traj.Metrics[m.Name()] = m.Value()
	}

	spring := cfg.Spring
	fmt.Printf("method: %s  fps: %d\n", cfg.Animator.Method, cfg.Animator.FPS)
	fmt.Printf("spring: damping %.1f  stiffness %.1f  mass %.2f  (omega %.2f, zeta %.3f)\n",
		spring.Damping, spring.Stiffness, spring.Mass, spring.AngularFrequency(), spring.DampingRatio())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	w.Flush()
	if st, ok := ms[0].(*metrics.SettleTime); ok && !st.Settled() {
		fmt.Printf("not settled within %d frames\n", frames)
	}
	fmt.Println()

	graph := asciigraph.PlotMany([][]float64{traj.X, traj.Y},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption(fmt.Sprintf("marker x (cyan), y (magenta): %d,%d -> %d,%d", start.Col, start.Row, target.Col, target.Row)),
	)
	fmt.Println(graph)

	if trajOut != "" {
		if err := traj.Save(trajOut); err != nil {
			return fmt.Errorf("save trajectory: %w", err)
		}
		fmt.Printf("trajectory saved to %s\n", trajOut)
	}
	return nil
}

func tune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g := optim.NewGridSearch(dampings, stiffness)
	g.Mass = cfg.Spring.Mass
	g.Method = cfg.Animator.Method
	g.FPS = cfg.Animator.FPS
	g.Jump = cfg.Spec().Range()
	if cmd.Flags().Changed("method") {
		g.Method = method
	}

	best, trials, err := g.Search(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("method: %s  jump: %.1fpx  trials: %d\n\n", g.Method, g.Jump, len(trials))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAMPING\tSTIFFNESS\tZETA\tFRAMES\tOVERSHOOT\tSCORE")
	for i, t := range trials {
		if i >= topTrials {
			break
		}
		frames := strconv.Itoa(t.Frames)
		if !t.Settled {
			frames = "-"
		}
		fmt.Fprintf(w, "%.1f\t%.1f\t%.3f\t%s\t%.3f\t%.2f\n",
			t.Params.Damping, t.Params.Stiffness, t.Params.DampingRatio(), frames, t.Overshoot, t.Score)
	}
	w.Flush()

	fmt.Printf("\nbest: damping %.1f  stiffness %.1f  mass %.2f\n",
		best.Params.Damping, best.Params.Stiffness, best.Params.Mass)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSIZE\tINITIAL\tINPUT\tMETHOD\tSPRING")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d,%d\t%s\t%s\t%.0f/%.0f/%.2f\n",
			name, cfg.Spec().Size, cfg.Grid.InitialCol, cfg.Grid.InitialRow,
			cfg.Input.Platform, cfg.Animator.Method,
			cfg.Spring.Damping, cfg.Spring.Stiffness, cfg.Spring.Mass)
	}
	w.Flush()

	fmt.Printf("\nthemes: %s\n", strings.Join(viz.ThemeNames(), ", "))
	fmt.Printf("methods: %s\n", strings.Join(anim.Methods(), ", "))
	ranges := make([]string, 0, 2)
	for _, r := range readout.Defaults() {
		ranges = append(ranges, fmt.Sprintf("%s [%g, %g]", r.Title, r.Min, r.Max))
	}
	fmt.Printf("readouts: %s\n", strings.Join(ranges, ", "))
	return nil
}
