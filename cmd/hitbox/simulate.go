package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/collide"
	"github.com/vovakirdan/hitbox/internal/config"
	"github.com/vovakirdan/hitbox/internal/storage"
	"github.com/vovakirdan/hitbox/internal/world"
)

var (
	flagConfig string
	flagPreset string
	flagNoSave bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Separate the bodies of a scenario",
	Long: `Loads a scenario and steps it until no dynamic body overlaps another,
or the step budget runs out. The run summary is stored in the history
database unless --no-save is given.

Config search order:
  --config path -> ~/.hitbox/configs/scenario.yaml -> ./configs/scenario.yaml -> built-in

Presets:
  instant - apply each resolution vector in full
  smooth  - apply half of each vector per step
  gentle  - apply a fifth of each vector per step

Examples:
  hitbox simulate
  hitbox simulate --preset smooth
  hitbox simulate --config ./pit.yaml --no-save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to scenario config YAML")
	simulateCmd.Flags().StringVar(&flagPreset, "preset", "", "Resolution preset: instant, smooth, gentle")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := config.LoadScenario(flagConfig, logger)
	if err != nil {
		fail("%v", err)
	}
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.ResolutionPreset(flagPreset)); err != nil {
			fail("%v", err)
		}
	}

	w, err := world.FromScenario(cfg, collide.Standard(), logger)
	if err != nil {
		fail("%v", err)
	}

	logger.Info("simulating", "scenario", cfg.Name, "bodies", len(cfg.Bodies), "correction", cfg.Correction, "steps", cfg.Steps)

	sum, err := w.Run(cfg.Steps)
	if err != nil {
		fail("%v", err)
	}

	rows := make([][]string, 0, len(cfg.Bodies))
	for _, b := range w.Bodies() {
		placed, _ := b.Placed()
		kind := "static"
		if b.Dynamic {
			kind = "dynamic"
		}
		rows = append(rows, []string{b.Name, kind, fmtVec(b.Pos.X, b.Pos.Y), config.FormatShape(placed)})
	}

	fmt.Printf("Scenario %s\n\n", cfg.Name)
	fmt.Println(renderTable([]string{"Body", "Kind", "Position", "Shape"}, rows))
	fmt.Println()

	status := "settled"
	if !sum.Settled {
		status = "not settled"
	}
	fmt.Printf("%s after %d steps, %d contacts, residual depth %.6g\n", status, sum.Steps, sum.Contacts, sum.Residual)

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return
	}
	defer store.Close()

	rec, err := store.SaveRun(storage.RunRecord{
		Scenario:   cfg.Name,
		Bodies:     len(cfg.Bodies),
		Steps:      sum.Steps,
		Contacts:   sum.Contacts,
		Settled:    sum.Settled,
		Residual:   sum.Residual,
		Correction: cfg.Correction,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	fmt.Printf("Recorded run %s\n", rec.RunID)
}
