package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/collide"
	"github.com/vovakirdan/hitbox/internal/config"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <shape-a> <shape-b>",
	Short: "Resolve one shape against another",
	Long: `Prints the vector by which shape A must move so it no longer overlaps
shape B, which is held fixed, together with the reverse resolution.

Examples:
  hitbox resolve rect:0,0,4,4 rect:3,1,4,3
  hitbox resolve circle:0,0,2 circle:3,0,2
  hitbox resolve circle:0,0,1 rect:0.5,-2,3,4`,
	Args: cobra.ExactArgs(2),
	Run:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) {
	logger := newLogger()

	a, err := config.ParseShape(args[0])
	if err != nil {
		fail("%v", err)
	}
	b, err := config.ParseShape(args[1])
	if err != nil {
		fail("%v", err)
	}

	ab, err := collide.Resolve(a, b)
	if err != nil {
		fail("%v", err)
	}
	ba, err := collide.Resolve(b, a)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("resolved", "a", config.FormatShape(a), "b", config.FormatShape(b), "dx", ab.X, "dy", ab.Y)

	rows := [][]string{
		{"A from B", config.FormatShape(a), fmtVec(ab.X, ab.Y), fmt.Sprintf("%.6g", ab.Len())},
		{"B from A", config.FormatShape(b), fmtVec(ba.X, ba.Y), fmt.Sprintf("%.6g", ba.Len())},
	}
	fmt.Println(renderTable([]string{"Move", "Shape", "Vector", "Depth"}, rows))

	if ab.IsZero() {
		fmt.Println()
		fmt.Println("Shapes do not overlap.")
	}
}

func fmtVec(x, y float64) string {
	return fmt.Sprintf("(%.6g, %.6g)", x, y)
}
