package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/collide"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List registered shape kinds",
	Long:  `Shows the shape kinds in the standard registry and which kind pairs have a collision handler.`,
	Run:   runKinds,
}

func runKinds(cmd *cobra.Command, args []string) {
	reg := collide.Standard()
	kinds := reg.Kinds()

	if len(kinds) == 0 {
		fmt.Println("No kinds registered.")
		return
	}

	headers := []string{"Index", "Name", "Type", "Handles"}
	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		var handled []string
		for _, other := range kinds {
			if reg.Handled(k.Index, other.Index) {
				handled = append(handled, other.Name)
			}
		}
		rows = append(rows, []string{
			fmt.Sprint(k.Index),
			k.Name,
			k.Type.String(),
			strings.Join(handled, ", "),
		})
	}

	fmt.Println(renderTable(headers, rows))
	fmt.Println()
	fmt.Println("Run 'hitbox resolve <a> <b>' to resolve two shapes.")
}
