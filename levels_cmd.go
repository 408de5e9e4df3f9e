package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long:  `Shows every level found on disk under levels/ or bundled with the game.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	names := levels.Names()
	if len(names) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Printf("  %-10s  %-8s  %s\n", "Name", "Size", "Entities")
	fmt.Printf("  %-10s  %-8s  %s\n", "----", "----", "--------")
	for _, name := range names {
		lvl, err := obj.LoadLevel(name)
		if err != nil {
			fmt.Printf("  %-10s  invalid: %v\n", name, err)
			continue
		}
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("  %-10s  %-8s  %d\n", name, size, lvl.Entities.Len())
	}
	return nil
}
