package root

import (
	"github.com/spf13/cobra"

	"github.com/AsmarHajizada/ai-projects/cmd/pitcher"

	"github.com/AsmarHajizada/ai-projects/cmd/queens"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ai-projects",
		Short: "Search and constraint-satisfaction puzzle solvers",
		Long: `Solvers for classic AI search problems: the N-Queens placement
puzzle as a constraint satisfaction problem, and the water-pitcher
puzzle as an A* search.`,
	}

	// add sub-commands
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(pitcher.NewPitcherCommand())

	return rootCmd
}
