package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded simulation runs",
	Long: `Display the most recent simulation runs, optionally for one scenario.

Examples:
  hitbox runs
  hitbox runs pit --limit 5
  hitbox runs pit --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the given scenario")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	var scenario string
	if len(args) == 1 {
		scenario = args[0]
	}

	if flagClear {
		if scenario == "" {
			fail("--clear needs a scenario name")
		}
		if err := store.ClearRuns(scenario); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs of %s.\n", scenario)
		return
	}

	var runs []storage.RunRecord
	if scenario != "" {
		runs, err = store.RunsForScenario(scenario, flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hitbox simulate' to record one.")
		return
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		settled := "no"
		if r.Settled {
			settled = "yes"
		}
		rows = append(rows, []string{
			r.RunID[:min(8, len(r.RunID))],
			r.Scenario,
			fmt.Sprint(r.Steps),
			fmt.Sprint(r.Contacts),
			settled,
			fmt.Sprintf("%.3g", r.Correction),
			fmt.Sprintf("%.3g", r.Residual),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	fmt.Println(renderTable(
		[]string{"Run", "Scenario", "Steps", "Contacts", "Settled", "Correction", "Residual", "Date"},
		rows,
	))
}
