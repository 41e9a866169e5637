// hitbox inspects and exercises the shape-pair collision resolver.
//
// Usage:
//
//	hitbox kinds                  - List registered shape kinds and handled pairs
//	hitbox resolve <a> <b>        - Resolve one shape against another
//	hitbox simulate               - Separate the bodies of a scenario
//	hitbox runs [scenario]        - Show recorded simulation runs
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.hitbox/runs.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hitbox",
	Short: "Hitbox - resolve overlapping 2D shapes",
	Long: `Hitbox computes minimum translation vectors between axis-aligned
rectangles and circles, and separates whole scenarios of bodies.

Shape literals:
  rect:left,bottom,width,height
  circle:cx,cy,radius

Examples:
  hitbox kinds
  hitbox resolve circle:0,0,1 rect:0.5,-2,3,4
  hitbox simulate --config ./pit.yaml --preset smooth
  hitbox runs pit`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hitbox/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hitbox",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fail prints an error and exits, matching the other commands' output.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
