package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Server    ServerConfig    `yaml:"server"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DataConfig fixes the two input table locations.
type DataConfig struct {
	ScoreboardCSV string `yaml:"scoreboard_csv"`
	RostersCSV    string `yaml:"rosters_csv"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	StaticDir      string   `yaml:"static_dir"`
}

type DashboardConfig struct {
	// DefaultEntityCount is how many entities the UI pre-selects when the
	// client has not chosen any yet.
	DefaultEntityCount int `yaml:"default_entity_count"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			ScoreboardCSV: "weekly_scoreboard_csv/master_scoreboard.csv",
			RostersCSV:    "rosters_csv/master_rosters.csv",
		},
		Server: ServerConfig{
			Port:           8080,
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
			StaticDir:      "./web/dist",
		},
		Dashboard: DashboardConfig{DefaultEntityCount: 5},
	}
}

// Load reads, merges with defaults, applies environment overrides, and
// validates. Path may be empty, in which case only defaults and environment
// apply.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, err
		}
		// Relative dataset paths are interpreted relative to the config file
		// directory when a file exists there, falling back to the cwd.
		c.Data.ScoreboardCSV = resolveRelative(path, c.Data.ScoreboardCSV)
		c.Data.RostersCSV = resolveRelative(path, c.Data.RostersCSV)
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.ScoreboardCSV == "" {
		return errors.New("data.scoreboard_csv is required")
	}
	if c.Data.RostersCSV == "" {
		return errors.New("data.rosters_csv is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Dashboard.DefaultEntityCount < 0 {
		return errors.New("dashboard.default_entity_count cannot be negative")
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("SCOREBOARD_CSV"); v != "" {
		c.Data.ScoreboardCSV = v
	}
	if v := os.Getenv("ROSTERS_CSV"); v != "" {
		c.Data.RostersCSV = v
	}
}

func resolveRelative(cfgPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(filepath.Dir(cfgPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}
