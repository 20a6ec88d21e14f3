package cmd

import (
	"fmt"

	"github.com/bnema/sdlbind/internal/config"
	"github.com/bnema/sdlbind/internal/logger"
	"github.com/bnema/sdlbind/sdl"
)

// libraryCandidates returns the library paths to try, flag first.
func libraryCandidates() []string {
	switch {
	case libraryPath != "":
		return []string{libraryPath}
	case config.Get().Library.Path != "":
		return []string{config.Get().Library.Path}
	}
	return nil
}

// session is a loaded and initialized SDL, closed with Close.
type session struct {
	sub        *sdl.Subsystem
	forwarding bool
}

// openSession loads SDL2, applies configured hints, routes SDL logging and
// initializes the configured subsystems plus extra.
func openSession(extra sdl.InitFlags) (*session, error) {
	cfg := config.Get()

	if err := sdl.Load(libraryCandidates()...); err != nil {
		return nil, err
	}
	logger.Debug("Loaded SDL2", "path", sdl.LibraryPath(), "version", sdl.GetVersion())
	if missing := sdl.MissingSymbols(); len(missing) > 0 {
		logger.Debug("SDL2 lacks some functions", "count", len(missing))
	}

	for _, name := range cfg.HintNames() {
		if err := sdl.SetHint(name, cfg.Hints[name]); err != nil {
			logger.Warn("Failed to apply hint", "name", name, "err", err)
		}
	}

	s := &session{}
	if cfg.Logging.ForwardSDL {
		priority, err := cfg.SDLPriority()
		if err != nil {
			return nil, err
		}
		if err := logger.ForwardSDL(priority); err != nil {
			return nil, fmt.Errorf("failed to forward SDL logs: %w", err)
		}
		s.forwarding = true
	}

	flags, err := cfg.InitFlags()
	if err != nil {
		logger.Warn("Ignoring unknown subsystems", "err", err)
	}
	flags |= extra
	if flags == 0 {
		return s, nil
	}

	sub, err := sdl.MakeSubsystem(flags)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to initialize %s: %w", flags, err)
	}
	s.sub = sub
	logger.Debug("Initialized SDL", "subsystems", flags)
	return s, nil
}

// Close shuts down what openSession started.
func (s *session) Close() {
	if s.sub != nil {
		s.sub.Release()
	}
	if s.forwarding {
		logger.StopForwardingSDL()
	}
}
