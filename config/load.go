package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable blocks that may be overridden from YAML.
// Fields missing from the file keep their current values.
type fileConfig struct {
	Window  Config        `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Patrol  PatrolConfig  `yaml:"patrol"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Pickup  PickupConfig  `yaml:"pickup"`
	Physics PhysicsConfig `yaml:"physics"`
	Level   LevelConfig   `yaml:"level"`
}

// Load applies overrides from the first config file found.
// Search order: customPath -> ~/.popeye/config.yaml -> ./configs/popeye.yaml.
// It returns the path that was applied, or "" when the built-in defaults are used.
// A customPath that cannot be read or parsed is an error; the other locations are optional.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "popeye.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Apply merges a YAML document into the global configuration.
func Apply(data []byte) error {
	f := fileConfig{
		Window:  *C,
		Player:  Player,
		Patrol:  Patrol,
		Enemy:   Enemy,
		Pickup:  Pickup,
		Physics: Physics,
		Level:   Level,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	}
	if f.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", f.Window.TPS)
	}
	if f.Pickup.HeartInterval <= 0 || f.Pickup.SpinachInterval <= 0 {
		return errors.New("spawn intervals must be positive")
	}
	if len(f.Level.SolidChar) != 1 || len(f.Level.EmptyChar) != 1 {
		return errors.New("level solidChar and emptyChar must be single characters")
	}

	*C = f.Window
	Player = f.Player
	Patrol = f.Patrol
	Enemy = f.Enemy
	Pickup = f.Pickup
	Physics = f.Physics
	Level = f.Level
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".popeye", filename)
}
