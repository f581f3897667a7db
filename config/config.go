// Package config loads parkshots settings from defaults, an optional TOML
// file and PARKSHOTS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultOutputDir is where screenshots land when nothing else is configured.
const DefaultOutputDir = "docs/screenshots"

// Config holds application configuration.
type Config struct {
	Output OutputConfig
	Fonts  FontsConfig
	Theme  ThemeConfig
	Render RenderConfig
}

// OutputConfig holds destination settings.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	DebugDir string `mapstructure:"debug_dir"`
}

// FontsConfig points at the host font directory. Empty uses the renderer default.
type FontsConfig struct {
	Dir string `mapstructure:"dir"`
}

// ThemeConfig names an optional theme DSL file.
type ThemeConfig struct {
	File string `mapstructure:"file"`
}

// RenderConfig controls the generation run.
type RenderConfig struct {
	Workers int      `mapstructure:"workers"`
	Screens []string `mapstructure:"screens"`
}

// Load reads configuration. path, or PARKSHOTS_CONFIG when path is empty,
// names a TOML file that must exist; with neither set an optional
// ./parkshots.toml is picked up.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.debug_dir", "")
	v.SetDefault("fonts.dir", "")
	v.SetDefault("theme.file", "")
	v.SetDefault("render.workers", 1)
	v.SetDefault("render.screens", []string{})

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("PARKSHOTS_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("parkshots")
	}

	v.SetEnvPrefix("PARKSHOTS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("解析配置失败: %w", err)
	}
	return c, nil
}

// Validate reports settings a run cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir 不能为空")
	}
	if c.Output.DebugDir != "" && filepath.Clean(c.Output.DebugDir) == filepath.Clean(c.Output.Dir) {
		return errors.New("output.debug_dir 不能与 output.dir 相同")
	}
	if c.Render.Workers < 1 {
		return fmt.Errorf("render.workers 必须 >= 1，当前为 %d", c.Render.Workers)
	}
	return nil
}
