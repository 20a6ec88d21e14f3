package logger

import (
	"github.com/charmbracelet/log"

	"github.com/bnema/sdlbind/sdl"
)

// levelFor maps an SDL priority onto the closest logger level. Critical maps to
// ERROR so a native message never exits the process.
func levelFor(p sdl.LogPriority) log.Level {
	switch {
	case p <= sdl.LogPriorityDebug:
		return log.DebugLevel
	case p == sdl.LogPriorityInfo:
		return log.InfoLevel
	case p == sdl.LogPriorityWarn:
		return log.WarnLevel
	}
	return log.ErrorLevel
}

// sdlWriter returns the function installed as SDL's log output.
func sdlWriter(l *log.Logger) sdl.LogOutputFunc {
	return func(category sdl.LogCategory, priority sdl.LogPriority, message string) {
		l.Log(levelFor(priority), message, "category", category.String(), "priority", priority.String())
	}
}

// ForwardSDL routes SDL's own log messages into Logger. Messages below
// priority are dropped by SDL before they reach Go.
func ForwardSDL(priority sdl.LogPriority) error {
	if err := sdl.SetLogOutputFunction(sdlWriter(Logger.WithPrefix("sdl"))); err != nil {
		return err
	}
	sdl.LogSetAllPriority(priority)
	return nil
}

// StopForwardingSDL gives SDL back its own output.
func StopForwardingSDL() {
	sdl.RestoreLogOutputFunction()
}
