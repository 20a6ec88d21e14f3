package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/bnema/sdlbind/sdl"
)

// reset clears global state between tests.
func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfg = nil
	configPathOverride = ""
	t.Cleanup(func() {
		viper.Reset()
		cfg = nil
		configPathOverride = ""
	})
}

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		reset(t)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		config := Get()
		if config == nil {
			t.Fatal("Get() returned nil after Init()")
		}
		if config.Library.Path != "" {
			t.Errorf("Expected empty library path, got %q", config.Library.Path)
		}
		if !config.Logging.ForwardSDL {
			t.Error("Expected SDL log forwarding on by default")
		}
		flags, err := config.InitFlags()
		if err != nil {
			t.Fatalf("InitFlags() failed: %v", err)
		}
		if flags != sdl.InitTimer|sdl.InitEvents {
			t.Errorf("Expected timer|events, got %s", flags)
		}
	})

	t.Run("reads hints and restores their case", func(t *testing.T) {
		reset(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		content := `[library]
path = "/opt/sdl/libSDL2.so"

[init]
subsystems = ["video", "sensor"]

[hints]
SDL_APP_NAME = "sdlbind test"
sdl_timer_resolution = "1"

[logging]
level = "debug"
sdl_priority = "info"
forward_sdl = false
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}
		c := Get()
		if c.Library.Path != "/opt/sdl/libSDL2.so" {
			t.Errorf("Unexpected library path %q", c.Library.Path)
		}
		if c.Hints[sdl.HintAppName] != "sdlbind test" {
			t.Errorf("Expected app name hint, got %v", c.Hints)
		}
		if c.Hints[sdl.HintTimerResolution] != "1" {
			t.Errorf("Expected timer resolution hint, got %v", c.Hints)
		}
		if got := c.HintNames(); len(got) != 2 || got[0] != sdl.HintAppName {
			t.Errorf("Unexpected hint order %v", got)
		}
		p, err := c.SDLPriority()
		if err != nil || p != sdl.LogPriorityInfo {
			t.Errorf("Expected info priority, got %v (%v)", p, err)
		}
		if c.Logging.ForwardSDL {
			t.Error("Expected forwarding disabled")
		}
	})

	t.Run("handles invalid TOML gracefully", func(t *testing.T) {
		reset(t)
		path := filepath.Join(t.TempDir(), "sdlbind.toml")
		invalidTOML := `[library
path = "x"`
		if err := os.WriteFile(path, []byte(invalidTOML), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)

		err := Init()
		if err == nil {
			t.Fatal("Expected an error for invalid TOML")
		}
		if !strings.Contains(err.Error(), "reading config file") {
			t.Errorf("Expected read error, got: %v", err)
		}
	})

	t.Run("uses defaults when an explicit path does not exist yet", func(t *testing.T) {
		reset(t)
		path := filepath.Join(t.TempDir(), "missing", "sdlbind.toml")
		SetConfigPath(path)

		if err := Init(); err != nil {
			t.Fatalf("Init() failed for a missing explicit path: %v", err)
		}
		if got := Get().Logging.SDLPriority; got != "warn" {
			t.Errorf("Expected default sdl priority, got %q", got)
		}
		if err := Save(); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected config at %s: %v", path, err)
		}
	})
}

func TestConfigValidation(t *testing.T) {
	c := &Config{
		Init:    InitConfig{Subsystems: []string{"video", "gpu"}},
		Logging: LoggingConfig{SDLPriority: "loud"},
	}

	flags, err := c.InitFlags()
	if err == nil || !strings.Contains(err.Error(), "gpu") {
		t.Errorf("Expected unknown subsystem error, got %v", err)
	}
	if flags != sdl.InitVideo {
		t.Errorf("Expected known flags to survive, got %s", flags)
	}

	if _, err := c.SDLPriority(); err == nil {
		t.Error("Expected unknown priority error")
	}

	c.Logging.SDLPriority = ""
	if p, err := c.SDLPriority(); err != nil || p != sdl.LogPriorityWarn {
		t.Errorf("Expected warn default, got %v (%v)", p, err)
	}
}

func TestConfigPathResolution(t *testing.T) {
	tests := []struct {
		name         string
		setupEnv     func(t *testing.T)
		expectedPath string
	}{
		{
			name: "xdg config home",
			setupEnv: func(t *testing.T) {
				t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
			},
			expectedPath: "/tmp/xdg/sdlbind/sdlbind.toml",
		},
		{
			name: "home directory",
			setupEnv: func(t *testing.T) {
				t.Setenv("XDG_CONFIG_HOME", "")
				t.Setenv("HOME", "/home/testuser")
			},
			expectedPath: "/home/testuser/.config/sdlbind/sdlbind.toml",
		},
		{
			name: "explicit override",
			setupEnv: func(t *testing.T) {
				SetConfigPath("/srv/sdlbind.toml")
			},
			expectedPath: "/srv/sdlbind.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset(t)
			tt.setupEnv(t)

			if path := GetConfigPath(); path != tt.expectedPath {
				t.Errorf("Expected path %s, got %s", tt.expectedPath, path)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "nested", "sdlbind.toml")
	SetConfigPath(path)
	Set(&Config{
		Init:    InitConfig{Subsystems: []string{"audio"}},
		Hints:   map[string]string{},
		Logging: LoggingConfig{Level: "warn", SDLPriority: "error"},
	})

	if err := SetHint("sdl_app_name", "saved"); err != nil {
		t.Fatalf("SetHint() failed: %v", err)
	}
	if err := SetHint(sdl.HintTimerResolution, "0"); err != nil {
		t.Fatalf("SetHint() failed: %v", err)
	}
	if err := RemoveHint(sdl.HintTimerResolution); err != nil {
		t.Fatalf("RemoveHint() failed: %v", err)
	}
	if err := RemoveHint("SDL_MISSING"); err == nil {
		t.Error("Expected error removing a missing hint")
	}

	viper.Reset()
	cfg = nil
	if err := Init(); err != nil {
		t.Fatalf("Init() after Save failed: %v", err)
	}
	c := Get()
	if c.Hints[sdl.HintAppName] != "saved" {
		t.Errorf("Expected saved hint, got %v", c.Hints)
	}
	if _, ok := c.Hints[sdl.HintTimerResolution]; ok {
		t.Error("Removed hint came back")
	}
	if len(c.Init.Subsystems) != 1 || c.Init.Subsystems[0] != "audio" {
		t.Errorf("Unexpected subsystems %v", c.Init.Subsystems)
	}
	if c.Logging.SDLPriority != "error" {
		t.Errorf("Unexpected SDL priority %q", c.Logging.SDLPriority)
	}
}
