// Command solve runs the human-style inference engine against a single
// 81-character puzzle string and prints a usage report, the final grid, and
// the fill count.
package main

import (
	"fmt"
	"os"

	"sudoku-engine/internal/sudoku/human"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: solve <81-char-puzzle>")
		os.Exit(1)
	}

	puzzle := os.Args[1]
	if len(puzzle) != 81 {
		fmt.Fprintf(os.Stderr, "puzzle string must be 81 characters, got %d\n", len(puzzle))
		os.Exit(1)
	}

	b, err := human.ParseBoard(puzzle)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	solver := human.NewSolver()
	solver.Solve(b)

	printUsageCounts(solver.Counts())
	fmt.Println()
	printGrid(b)
	fmt.Println()

	filled := 0
	for _, cell := range b.GetCells() {
		if cell != 0 {
			filled++
		}
	}
	fmt.Printf("Filled: %d/81\n", filled)
}

func printUsageCounts(counts map[human.Technique]int) {
	for _, tag := range human.AllTechniques {
		if n := counts[tag]; n > 0 {
			fmt.Printf("%-23s %d\n", human.TechniqueNames[tag], n)
		}
	}
}

func printGrid(b *human.Board) {
	cells := b.GetCells()
	sep := "+-------+-------+-------+"
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			fmt.Println(sep)
		}
		line := "|"
		for c := 0; c < 9; c++ {
			digit := cells[r*9+c]
			ch := "."
			if digit != 0 {
				ch = fmt.Sprintf("%d", digit)
			}
			line += " " + ch
			if c%3 == 2 {
				line += " |"
			}
		}
		fmt.Println(line)
	}
	fmt.Println(sep)
}
