package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/evanschultz/medcase-visualizer/pkg/mapping"
	"github.com/evanschultz/medcase-visualizer/pkg/models"
	"github.com/evanschultz/medcase-visualizer/pkg/scene"
)

const EnvPrefix = "MEDCASE"

// DefaultLogFile is where the viewer logs unless log.file says otherwise
const DefaultLogFile = "medcase.log"

type Config struct {
	Model    ModelConfig          `mapstructure:"model"`
	Case     CaseConfig           `mapstructure:"case"`
	UI       UIConfig             `mapstructure:"ui"`
	Log      LogConfig            `mapstructure:"log"`
	Mappings []models.TermMapping `mapstructure:"mappings"`
}

type ModelConfig struct {
	Path              string  `mapstructure:"path"` // empty selects the virtual body
	EmissiveIntensity float64 `mapstructure:"emissive_intensity"`
}

type CaseConfig struct {
	Title       string `mapstructure:"title"`
	NotesPath   string `mapstructure:"notes_path"`
	SummaryPath string `mapstructure:"summary_path"`
}

type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
	File   string `mapstructure:"file"`   // empty disables logging
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model.path", "")
	v.SetDefault("model.emissive_intensity", scene.DefaultEmissiveIntensity)
	v.SetDefault("case.title", "")
	v.SetDefault("case.notes_path", "")
	v.SetDefault("case.summary_path", "")
	v.SetDefault("ui.toast_duration", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", DefaultLogFile)
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	cfg, err := load(viper.New())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the YAML config at path, or searches ./medcase.yaml and
// $HOME/.medcase/medcase.yaml when path is empty, then overlays MEDCASE_*
// environment variables (MEDCASE_UI_TOAST_DURATION -> ui.toast_duration).
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("medcase")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".medcase"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks value ranges and the mapping table
func (c *Config) Validate() error {
	if c.Model.EmissiveIntensity < 0 {
		return fmt.Errorf("model.emissive_intensity must be non-negative")
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("ui.toast_duration must be positive")
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}

	for i, m := range c.Mappings {
		for _, h := range m.Highlights {
			if h.OrganName == "" {
				return fmt.Errorf("mapping %d: highlight without organ_name", i)
			}
			if _, err := scene.ParseHex(h.Color); err != nil {
				return fmt.Errorf("mapping %d: %w", i, err)
			}
		}
	}
	if _, err := c.Table(); err != nil {
		return err
	}
	return nil
}

// Table returns the configured mapping table, or the built-in one
func (c *Config) Table() (*mapping.Table, error) {
	if len(c.Mappings) == 0 {
		return mapping.DefaultTable(), nil
	}
	return mapping.NewTable(c.Mappings)
}
