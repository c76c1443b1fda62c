package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const patternRandom = "random"

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, nil, nil, err
	}

	if err = seedGrid(grid, config); err != nil {
		return nil, nil, nil, err
	}

	renderer := model.NewTerminalRenderer(out, config.RenderStyle)
	stats := utils.NewStats()

	return grid, renderer, stats, nil
}

// seedGrid fills the first generation, randomly unless a pattern is configured
func seedGrid(grid *model.Grid, config utils.Config) error {
	if config.Pattern == "" || config.Pattern == patternRandom {
		grid.Randomize(model.NewRandomSource(config.Seed))
		return nil
	}

	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return err
	}
	grid.StampCentered(pattern)
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	seeding := config.Pattern
	if seeding == "" {
		seeding = patternRandom
	}
	fmt.Fprintf(out, "Grid: %dx%d | Seed: %s | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), seeding, grid.CountLivingCells())
	fmt.Fprintf(out, "Running %d generations, one every %v\n", config.Iterations, config.FrameRate)
	fmt.Fprintln(out)
}

// updateGameState updates the stats and returns status information
func updateGameState(
	grid *model.Grid,
	frameDuration time.Duration,
	stats *utils.Stats,
) (int, string) {
	livingCells := grid.CountLivingCells()
	stats.Update(grid.Generation(), livingCells, frameDuration)

	// Compare against earlier generations before recording this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	grid *model.Grid,
	livingCells int,
	status string,
	stats *utils.Stats,
) {
	density := 0.0
	if cells := grid.Rows() * grid.Cols(); cells > 0 {
		density = float64(livingCells) / float64(cells) * 100
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		grid.Generation(), livingCells, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Fprintln(out)
}
