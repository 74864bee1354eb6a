package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is returned when settings cannot describe a playable road
var ErrInvalidConfiguration = errors.New("invalid configuration")

// iniSection is the INI section holding the game settings
const iniSection = "game"

// Settings holds every tunable parameter of the game
type Settings struct {
	// Screen
	ScreenWidth  int `yaml:"screenWidth" ini:"screen_width"`   // Logical screen width in pixels
	ScreenHeight int `yaml:"screenHeight" ini:"screen_height"` // Logical screen height in pixels
	TPS          int `yaml:"tps" ini:"tps"`                     // Ticks per second in the desktop shell

	// Cars
	CarWidth  int `yaml:"carWidth" ini:"car_width"`
	CarHeight int `yaml:"carHeight" ini:"car_height"`

	// Player
	MaxSpeed    int `yaml:"maxSpeed" ini:"max_speed"`       // Forward speed cap in pixels per tick
	MoveStep    int `yaml:"moveStep" ini:"move_step"`       // Horizontal pixels per move command
	SpawnOffset int `yaml:"spawnOffset" ini:"spawn_offset"` // Player center distance from the bottom edge

	// Traffic
	ObstacleCount int `yaml:"obstacleCount" ini:"obstacle_count"`
	SpawnMinY     int `yaml:"spawnMinY" ini:"spawn_min_y"`
	SpawnMaxY     int `yaml:"spawnMaxY" ini:"spawn_max_y"`
	MaxDrift      int `yaml:"maxDrift" ini:"max_drift"` // Obstacles drift down at 0..MaxDrift on top of player speed

	// Road
	RoadInset     int `yaml:"roadInset" ini:"road_inset"`           // Road band starts this far from each screen edge
	EdgeLineInset int `yaml:"edgeLineInset" ini:"edge_line_inset"` // White edge line starts this far from each screen edge
	EdgeLineWidth int `yaml:"edgeLineWidth" ini:"edge_line_width"`
	TilePeriod    int `yaml:"tilePeriod" ini:"tile_period"` // Distance between lane markers
	MarkerWidth   int `yaml:"markerWidth" ini:"marker_width"`
	MarkerLength  int `yaml:"markerLength" ini:"marker_length"`

	// Desktop shell
	ControlBarHeight int `yaml:"controlBarHeight" ini:"control_bar_height"`
}

// Default returns the settings of the classic game
func Default() Settings {
	return Settings{
		ScreenWidth:      800,
		ScreenHeight:     600,
		TPS:              60,
		CarWidth:         40,
		CarHeight:        60,
		MaxSpeed:         10,
		MoveStep:         5,
		SpawnOffset:      100,
		ObstacleCount:    5,
		SpawnMinY:        -200,
		SpawnMaxY:        -100,
		MaxDrift:         2,
		RoadInset:        50,
		EdgeLineInset:    60,
		EdgeLineWidth:    10,
		TilePeriod:       40,
		MarkerWidth:      10,
		MarkerLength:     20,
		ControlBarHeight: 60,
	}
}

// Load reads overrides from a YAML (.yaml, .yml) or INI (.ini) file on top of Default
// and validates the result
func Load(path string) (Settings, error) {
	settings := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := loadYAML(path, &settings); err != nil {
			return Settings{}, err
		}
	case ".ini":
		if err := loadINI(path, &settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	log.Printf("[Config] Loaded %s (%dx%d, %d obstacles)", path, settings.ScreenWidth, settings.ScreenHeight, settings.ObstacleCount)
	return settings, nil
}

func loadYAML(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	// Misspelled keys are rejected instead of silently keeping the default
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return nil
}

func loadINI(path string, settings *Settings) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	// Keys missing from the section leave the defaults untouched
	if err := file.Section(iniSection).MapTo(settings); err != nil {
		return fmt.Errorf("failed to parse config INI: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot produce a playable road
func (s Settings) Validate() error {
	if s.ScreenWidth <= 0 {
		return fmt.Errorf("%w: screen width must be > 0, got %d", ErrInvalidConfiguration, s.ScreenWidth)
	}
	if s.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen height must be > 0, got %d", ErrInvalidConfiguration, s.ScreenHeight)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps must be > 0, got %d", ErrInvalidConfiguration, s.TPS)
	}
	if s.CarWidth <= 0 || s.CarHeight <= 0 {
		return fmt.Errorf("%w: car size must be positive, got %dx%d", ErrInvalidConfiguration, s.CarWidth, s.CarHeight)
	}
	if s.CarHeight > s.ScreenHeight {
		return fmt.Errorf("%w: car height %d exceeds screen height %d", ErrInvalidConfiguration, s.CarHeight, s.ScreenHeight)
	}
	if s.MaxSpeed <= 0 {
		return fmt.Errorf("%w: max speed must be > 0, got %d", ErrInvalidConfiguration, s.MaxSpeed)
	}
	if s.MoveStep < 0 {
		return fmt.Errorf("%w: move step must be >= 0, got %d", ErrInvalidConfiguration, s.MoveStep)
	}
	if s.ObstacleCount < 0 {
		return fmt.Errorf("%w: obstacle count must be >= 0, got %d", ErrInvalidConfiguration, s.ObstacleCount)
	}
	if s.SpawnMinY > s.SpawnMaxY {
		return fmt.Errorf("%w: spawn range [%d, %d] is empty", ErrInvalidConfiguration, s.SpawnMinY, s.SpawnMaxY)
	}
	if s.MaxDrift < 0 {
		return fmt.Errorf("%w: max drift must be >= 0, got %d", ErrInvalidConfiguration, s.MaxDrift)
	}
	if s.RoadInset < 0 {
		return fmt.Errorf("%w: road inset must be >= 0, got %d", ErrInvalidConfiguration, s.RoadInset)
	}
	if s.RoadWidth() < s.CarWidth {
		return fmt.Errorf("%w: road width %d is narrower than a car (%d)", ErrInvalidConfiguration, s.RoadWidth(), s.CarWidth)
	}
	if s.EdgeLineInset < 0 || s.EdgeLineWidth < 0 {
		return fmt.Errorf("%w: edge line inset and width must be >= 0, got %d and %d", ErrInvalidConfiguration, s.EdgeLineInset, s.EdgeLineWidth)
	}
	if s.MarkerWidth < 0 || s.MarkerLength < 0 {
		return fmt.Errorf("%w: marker size must be >= 0, got %dx%d", ErrInvalidConfiguration, s.MarkerWidth, s.MarkerLength)
	}
	if s.TilePeriod <= 0 {
		return fmt.Errorf("%w: tile period must be > 0, got %d", ErrInvalidConfiguration, s.TilePeriod)
	}
	if s.ControlBarHeight < 0 {
		return fmt.Errorf("%w: control bar height must be >= 0, got %d", ErrInvalidConfiguration, s.ControlBarHeight)
	}
	return nil
}

// RoadWidth returns the width of the drivable band
func (s Settings) RoadWidth() int {
	return s.ScreenWidth - 2*s.RoadInset
}
