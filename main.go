package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = runWithShutdown(ctx, config, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// runWithShutdown runs the game alongside a watcher that reports on errOut
// when ctx is cancelled before the game finishes. Only the game goroutine
// touches the grid.
func runWithShutdown(ctx context.Context, config utils.Config, out, errOut io.Writer) error {
	var (
		eg, gameCtx = errgroup.WithContext(ctx)
		done        = make(chan struct{})
	)

	eg.Go(func() error {
		defer close(done)
		return runGame(gameCtx, config, out)
	})

	eg.Go(func() error {
		select {
		case <-ctx.Done():
		case <-done:
		}
		if ctx.Err() != nil {
			fmt.Fprintln(errOut, "Interrupted, shutting down gracefully...")
		}
		return nil
	})

	return eg.Wait()
}

// runGame steps and renders the grid config.Iterations times, pausing
// config.FrameRate between generations. Cancelling ctx stops the loop early
// without an error.
func runGame(ctx context.Context, config utils.Config, out io.Writer) error {
	if err := config.Validate(); err != nil {
		return err
	}

	grid, renderer, stats, err := initializeGame(config, out)
	if err != nil {
		return errors.Wrap(err, "[runGame] failed to initialize game")
	}
	if config.ShowStats {
		displayGameInfo(out, config, grid)
	}

	// Stopped until the first frame; Reset discards stale ticks as of Go 1.23
	frameTimer := time.NewTimer(config.FrameRate)
	frameTimer.Stop()
	defer frameTimer.Stop()

	for i := range config.Iterations {
		if ctx.Err() != nil {
			return shutdown(out, config, stats)
		}

		frameStart := time.Now()
		grid.Step()
		frameDuration := time.Since(frameStart)

		if config.ClearScreen {
			if err = renderer.Clear(); err != nil {
				return err
			}
		}
		if err = renderer.Display(grid); err != nil {
			return err
		}

		if config.ShowStats {
			livingCells, status := updateGameState(grid, frameDuration, stats)
			displayGameStatus(out, grid, livingCells, status, stats)
		}

		// Wait before next frame
		if i < config.Iterations-1 {
			frameTimer.Reset(config.FrameRate)
			select {
			case <-ctx.Done():
				return shutdown(out, config, stats)
			case <-frameTimer.C:
			}
		}
	}
	return nil
}

func shutdown(out io.Writer, config utils.Config, stats *utils.Stats) error {
	if config.ShowStats {
		fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
			stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	}
	return nil
}
