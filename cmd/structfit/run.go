package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/structfit"
	"github.com/cwbudde/structfit/runner"
	"github.com/cwbudde/structfit/solver"
	"github.com/cwbudde/structfit/store"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a fit described by a YAML config",
	Long:  `Loads a problem config, optimizes the named paths and stores the run.`,
	RunE:  runFit,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Problem config path (required)")
	runCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(runCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	specArgs, err := cfg.Args()
	if err != nil {
		return err
	}

	seed := cfg.SeedModel()
	problem, err := structfit.NewProblem(mseObjective, seed, specArgs,
		structfit.WithParams(cfg.Dataset()),
	)
	if err != nil {
		return err
	}

	raw, err := structfit.BuildProblem(problem)
	if err != nil {
		return err
	}
	initialCost := raw.Objective(raw.Initial)

	slog.Info("Starting fit",
		"config", configPath,
		"components", cfg.Components,
		"vars", len(cfg.Vars),
		"dim", raw.Dim(),
		"starts", cfg.Optimizer.Starts,
		"initial_cost", initialCost)

	runStore, err := store.NewFSStore(cfg.Store)
	if err != nil {
		return err
	}
	runID := store.NewRunID()
	job := runner.NewJob(runID)

	multistart := runner.Multistart{
		Starts: cfg.Optimizer.Starts,
		Seed:   cfg.Optimizer.Seed,
		Job:    job,
		New: func(seed int64) solver.Optimizer {
			return solver.NewMayfly(cfg.Optimizer.Iters, cfg.Optimizer.PopSize, seed)
		},
	}

	start := time.Now()
	result, err := multistart.Run(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}
	elapsed := time.Since(start)

	sol, err := structfit.Solve(problem, fixedResult{result})
	if err != nil {
		return err
	}
	fitted, err := sol.Object()
	if err != nil {
		return err
	}

	exprs := make([]string, len(cfg.Vars))
	for i, v := range cfg.Vars {
		exprs[i] = v.Path
	}
	run := store.NewRun(runID, result.Position, result.Cost, initialCost, result.Iterations, store.RunConfig{
		Source:  configPath,
		Vars:    exprs,
		Iters:   cfg.Optimizer.Iters,
		PopSize: cfg.Optimizer.PopSize,
		Seed:    cfg.Optimizer.Seed,
		Starts:  cfg.Optimizer.Starts,
	})
	if err := runStore.SaveRun(run); err != nil {
		return err
	}

	trace, err := store.NewTraceWriter(cfg.Store, runID, false)
	if err != nil {
		return err
	}
	snap := job.Snapshot()
	if err := trace.Write(store.TraceEntry{
		Start:     snap.StartsDone,
		Cost:      result.Cost,
		Timestamp: time.Now(),
		Vector:    result.Position,
	}); err != nil {
		return err
	}
	if err := trace.Close(); err != nil {
		return err
	}

	slog.Info("Fit complete",
		"run_id", runID,
		"best_cost", result.Cost,
		"initial_cost", initialCost,
		"elapsed", elapsed.String())

	fmt.Printf("run %s: cost %.6g (from %.6g) in %s\n", runID, result.Cost, initialCost, elapsed.Round(time.Millisecond))
	for i, c := range fitted.(Model).Components {
		fmt.Printf("  component %d: scale=%.4f shift=%.4f\n", i, c.Scale, c.Shift)
	}
	return nil
}

// fixedResult adapts an already-computed result to the Optimizer interface
// so Solve can wrap it into a Solution.
type fixedResult struct {
	result solver.Result
}

func (f fixedResult) Run(solver.Problem) (solver.Result, error) {
	return f.result, nil
}
