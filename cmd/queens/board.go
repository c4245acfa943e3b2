package queens

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgqueens "github.com/AsmarHajizada/ai-projects/pkg/queens"
)

// renderLimit is the largest board printed as a grid; bigger boards
// only get the row -> column listing.
const renderLimit = 50

// Board holds a parsed puzzle input: the board size and the partial
// assignment read from the file.
type Board struct {
	size       int
	assignment pkgqueens.Assignment
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Assignment() pkgqueens.Assignment {
	return b.assignment.Clone()
}

// NewBoard parses a puzzle from boardReader. The input has one line
// per row holding the 0-based column of that row's queen; the board
// size is the number of non-blank lines. Lines that are not integers
// or name a column outside the board leave their row unassigned, the
// conventional marker being -1.
func NewBoard(boardReader io.Reader) (*Board, error) {
	var lines []string
	scanner := bufio.NewScanner(boardReader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading board data: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("invalid board: no rows found")
	}

	n := len(lines)
	assignment := pkgqueens.Assignment{}
	for row, line := range lines {
		col, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		if col >= 0 && col < n {
			assignment[row] = col
		}
	}
	return &Board{size: n, assignment: assignment}, nil
}

// Render returns the solution as a row listing, followed by a visual
// grid for boards small enough to read.
func Render(solution pkgqueens.Assignment, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Solution for %dx%d board:\n", n, n)
	for row := 0; row < n; row++ {
		fmt.Fprintf(&b, "Row %d -> Column %d\n", row, solution[row])
	}

	if n <= renderLimit {
		b.WriteString("\nVisual representation:\n")
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if solution[row] == col {
					b.WriteString("Q ")
				} else {
					b.WriteString(". ")
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
