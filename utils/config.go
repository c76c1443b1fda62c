package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the driver
type Config struct {
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	Iterations  int           `json:"iterations"`
	FrameRate   time.Duration `json:"frame_rate"`
	Seed        uint64        `json:"seed"`
	Pattern     string        `json:"pattern"`
	RenderStyle string        `json:"render_style"`
	ClearScreen bool          `json:"clear_screen"`
	ShowStats   bool          `json:"show_stats"`
}

// DefaultConfig returns the reference driver settings: a randomly seeded
// 60x180 grid run for 100 generations, one per second
func DefaultConfig() Config {
	return Config{
		Rows:        60,
		Cols:        180,
		Iterations:  100,
		FrameRate:   1000 * time.Millisecond,
		Seed:        0, // time based
		Pattern:     "",
		RenderStyle: model.StyleDigits,
		ClearScreen: false,
		ShowStats:   false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative dimensions %dx%d", c.Rows, c.Cols)
	case c.Iterations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative iterations %d", c.Iterations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	case c.RenderStyle != "" && c.RenderStyle != model.StyleDigits && c.RenderStyle != model.StyleBlock:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown render style %q", c.RenderStyle)
	}
	return nil
}
