package game

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	NumMines int `yaml:"mines"`

	// Seed for mine placement; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Fixed mine placement. Overrides Width, Height and NumMines.
	Layout *Layout `yaml:"layout,omitempty"`

	Logger logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		NumMines: DefaultNumMines,
	}
}

// LoadConfig reads a YAML config file on top of the defaults
func LoadConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}

	return config, config.Validate()
}

func (config GameConfig) Validate() error {
	if config.Layout != nil {
		_, _, _, err := config.Layout.parse()
		return err
	}

	if config.Width <= 0 || config.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", config.Width, config.Height)
	}
	if numTiles := config.Width * config.Height; config.NumMines < 0 || config.NumMines > numTiles {
		return errors.Wrapf(ErrInvalidMineCount, "%d mines on %d tiles", config.NumMines, numTiles)
	}
	return nil
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}
