package pitcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	internalpitcher "github.com/AsmarHajizada/ai-projects/internal/pitcher"
)

func NewPitcherCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pitcher <path>",
		Short: "Solves a water-pitcher puzzle given in an input file",
		Long: `Solves a water-pitcher puzzle given in an input file. The first line
holds the comma-separated pitcher capacities and the second line the
target amount to collect in the reservoir. For instance:

2,5,6,72
143
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0])
		},
	}
}

func solve(path string) error {
	inputFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening input file (%s): %w", path, err)
	}
	defer inputFile.Close()

	capacities, target, err := parseInput(inputFile)
	if err != nil {
		return fmt.Errorf("error parsing input file (%s): %w", path, err)
	}

	steps := internalpitcher.MinSteps(capacities, target)
	if steps == internalpitcher.NoSolution {
		fmt.Println("no solution")
	} else {
		fmt.Printf("minimum steps: %d\n", steps)
	}
	return nil
}

// parseInput reads the capacities line and the target line.
func parseInput(r io.Reader) ([]int, int, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, 0, fmt.Errorf("missing capacities line")
	}
	var capacities []int
	for _, field := range strings.Split(strings.TrimSpace(scanner.Text()), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		capacity, err := strconv.Atoi(field)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid capacity (%s): %w", field, err)
		}
		if capacity <= 0 {
			return nil, 0, fmt.Errorf("capacity must be positive, got %d", capacity)
		}
		capacities = append(capacities, capacity)
	}

	if !scanner.Scan() {
		return nil, 0, fmt.Errorf("missing target line")
	}
	target, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, 0, fmt.Errorf("invalid target (%s): %w", strings.TrimSpace(scanner.Text()), err)
	}
	if target < 0 {
		return nil, 0, fmt.Errorf("target must be non-negative, got %d", target)
	}

	return capacities, target, scanner.Err()
}
