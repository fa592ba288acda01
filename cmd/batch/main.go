// Command batch runs the inference engine over every 81-character line in a
// file, aggregates per-technique usage and error counts, and reports wall
// clock timing.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"sudoku-engine/internal/sudoku/human"
)

// puzzleResult is one line's outcome, tagged with a random run identifier.
// Results are kept in the same order as the retained puzzle lines; the run
// identifier itself records nothing about the source line.
type puzzleResult struct {
	runID          string
	emptyCandidate bool
	wrongSolution  bool
	solved         bool
	counts         map[human.Technique]int
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: batch <puzzle-file>")
		os.Exit(1)
	}

	lines, err := readPuzzleLines(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "no 81-character puzzle lines found")
		os.Exit(1)
	}

	start := time.Now()
	results := make([]puzzleResult, 0, len(lines))
	for _, line := range lines {
		results = append(results, solveOne(line))
	}
	elapsed := time.Since(start)

	printReport(results, elapsed)
}

func readPuzzleLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 81 {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func solveOne(puzzle string) puzzleResult {
	res := puzzleResult{runID: uuid.New().String()}

	b, err := human.ParseBoard(puzzle)
	if err != nil {
		res.emptyCandidate = true
		return res
	}

	solver := human.NewSolver()
	solver.Solve(b)
	res.counts = solver.Counts()

	if hasEmptyCandidate(b) {
		res.emptyCandidate = true
	}
	if b.IsFilled() && !b.IsValid() {
		res.wrongSolution = true
	}
	if b.IsFilled() && b.IsValid() {
		res.solved = true
	}
	return res
}

func hasEmptyCandidate(b *human.Board) bool {
	cells := b.GetCells()
	candidates := b.GetCandidates()
	for i, cell := range cells {
		if cell == 0 && len(candidates[i]) == 0 {
			return true
		}
	}
	return false
}

func printReport(results []puzzleResult, elapsed time.Duration) {
	var emptyCandidates, wrongSolutions, solved int
	totals := make(map[human.Technique]int)

	for _, r := range results {
		if r.emptyCandidate {
			emptyCandidates++
		}
		if r.wrongSolution {
			wrongSolutions++
		}
		if r.solved {
			solved++
		}
		for tag, n := range r.counts {
			totals[tag] += n
		}
	}

	fmt.Println("Errors:")
	fmt.Printf("%-23s %d\n", "Empty Candidates", emptyCandidates)
	fmt.Printf("%-23s %d\n", "Wrong Solution", wrongSolutions)

	fmt.Println("\nSolved:")
	fmt.Printf("%d/%d\n", solved, len(results))

	type techCount struct {
		name  string
		count int
	}
	var used []techCount
	for tag, n := range totals {
		if n > 0 {
			used = append(used, techCount{human.TechniqueNames[tag], n})
		}
	}
	sort.SliceStable(used, func(i, j int) bool { return used[i].count > used[j].count })

	fmt.Println("\nUsed:")
	for _, u := range used {
		fmt.Printf("%-23s %d\n", u.name, u.count)
	}

	fmt.Printf("\nFinished in %.2fs\n", elapsed.Seconds())
}
