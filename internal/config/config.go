// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/sdlbind/sdl"
)

// Config represents the application configuration
type Config struct {
	// Library selects the SDL2 shared library
	Library LibraryConfig `mapstructure:"library"`

	// Init lists the subsystems commands initialize
	Init InitConfig `mapstructure:"init"`

	// Hints are applied after loading and before SDL_Init
	Hints map[string]string `mapstructure:"hints"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// LibraryConfig locates the SDL2 library
type LibraryConfig struct {
	Path string `mapstructure:"path"` // Empty means the platform's usual names
}

// InitConfig lists subsystem names such as "video" or "sensor"
type InitConfig struct {
	Subsystems []string `mapstructure:"subsystems"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `mapstructure:"level"`        // Override LOG_LEVEL env var
	SDLPriority string `mapstructure:"sdl_priority"` // Minimum SDL log priority forwarded
	ForwardSDL  bool   `mapstructure:"forward_sdl"`  // Route SDL's log output through the logger
}

const configName = "sdlbind"

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Library: LibraryConfig{
			Path: "",
		},
		Init: InitConfig{
			Subsystems: []string{"timer", "events"},
		},
		Hints: map[string]string{},
		Logging: LoggingConfig{
			Level:       "",
			SDLPriority: "warn",
			ForwardSDL:  true,
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		viper.AddConfigPath(userConfigDir())
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetEnvPrefix("SDLBIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("library.path", DefaultConfig.Library.Path)
	viper.SetDefault("init.subsystems", DefaultConfig.Init.Subsystems)
	viper.SetDefault("hints", DefaultConfig.Hints)
	viper.SetDefault("logging.level", DefaultConfig.Logging.Level)
	viper.SetDefault("logging.sdl_priority", DefaultConfig.Logging.SDLPriority)
	viper.SetDefault("logging.forward_sdl", DefaultConfig.Logging.ForwardSDL)

	if err := viper.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	c.Hints = normalizeHints(c.Hints)
	cfg = c

	return nil
}

// isNotFound reports a missing config file. An explicit path set with
// SetConfigFile fails with an fs error rather than ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// normalizeHints restores SDL's uppercase hint names, which viper lowercases.
func normalizeHints(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save writes the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c := Get()
	viper.Set("library.path", c.Library.Path)
	viper.Set("init.subsystems", c.Init.Subsystems)
	viper.Set("hints", c.Hints)
	viper.Set("logging.level", c.Logging.Level)
	viper.Set("logging.sdl_priority", c.Logging.SDLPriority)
	viper.Set("logging.forward_sdl", c.Logging.ForwardSDL)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	return filepath.Join(userConfigDir(), configName+".toml")
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, configName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", configName)
}

// InitFlags resolves the configured subsystem names.
func (c *Config) InitFlags() (sdl.InitFlags, error) {
	flags, unknown := sdl.ParseInitFlags(c.Init.Subsystems)
	if len(unknown) > 0 {
		return flags, fmt.Errorf("unknown subsystems: %s", strings.Join(unknown, ", "))
	}
	return flags, nil
}

// SDLPriority resolves logging.sdl_priority.
func (c *Config) SDLPriority() (sdl.LogPriority, error) {
	name := strings.ToLower(strings.TrimSpace(c.Logging.SDLPriority))
	if name == "" {
		return sdl.LogPriorityWarn, nil
	}
	p, ok := sdl.ParseLogPriority(name)
	if !ok {
		return 0, fmt.Errorf("unknown SDL log priority %q", c.Logging.SDLPriority)
	}
	return p, nil
}

// HintNames returns the configured hint names in order.
func (c *Config) HintNames() []string {
	names := make([]string, 0, len(c.Hints))
	for name := range c.Hints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetHint stores a hint and saves the configuration
func SetHint(name, value string) error {
	c := Get()
	if c.Hints == nil {
		c.Hints = map[string]string{}
	}
	c.Hints[strings.ToUpper(name)] = value
	return Save()
}

// RemoveHint deletes a stored hint and saves the configuration
func RemoveHint(name string) error {
	c := Get()
	name = strings.ToUpper(name)
	if _, ok := c.Hints[name]; !ok {
		return fmt.Errorf("hint %s not found", name)
	}
	delete(c.Hints, name)
	return Save()
}
