package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/internal/ui"
	"github.com/bnema/sdlbind/sdl"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch timers, power, sensors and devices live",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsTerminal(os.Stdout) {
			return fmt.Errorf("watch needs a terminal; use info --json instead")
		}
		if watchInterval < 50*time.Millisecond {
			return fmt.Errorf("interval %s is too short (minimum 50ms)", watchInterval)
		}

		s, err := openSession(sdl.InitTimer | sdl.InitSensor | sdl.InitEvents)
		if err != nil {
			return err
		}
		defer s.Close()

		w := newWatcher()
		defer w.Close()

		model := ui.NewWatchModel("sdlbind watch", watchInterval, w.Sample)
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "refresh interval")
	rootCmd.AddCommand(watchCmd)
}

// watcher holds the sensors opened for sampling.
type watcher struct {
	start   uint64
	sensors []*sdl.Sensor
	samples int64
	counter *sdl.Timer
}

func newWatcher() *watcher {
	w := &watcher{start: sdl.GetTicks64()}
	for _, info := range sdl.SensorInfos() {
		if sensor, err := info.Open(); err == nil {
			w.sensors = append(w.sensors, sensor)
		}
	}
	// A one second timer shows that callbacks keep arriving while the UI runs.
	if t, err := sdl.MakeTimer(time.Second, true, func() {}); err == nil {
		w.counter = t
	}
	return w
}

// Sample implements ui.Sampler.
func (w *watcher) Sample() []ui.Section {
	w.samples++
	ticks := sdl.GetTicks64()

	timer := ui.Section{
		Title: "Timer",
		Rows: []ui.Row{
			{Key: "Uptime", Value: (time.Duration(ticks-w.start) * time.Millisecond).String()},
			{Key: "Performance counter", Value: strconv.FormatUint(sdl.GetPerformanceCounter(), 10)},
			{Key: "Samples", Value: strconv.FormatInt(w.samples, 10)},
		},
	}
	if w.counter != nil {
		timer.Rows = append(timer.Rows, ui.Row{Key: "Timer callbacks", Value: strconv.FormatInt(w.counter.Fired(), 10)})
	}

	sdl.SensorUpdate()
	sensors := ui.Section{Title: "Sensors"}
	for _, s := range w.sensors {
		name, _ := s.Name()
		value := "-"
		if data, err := s.Data(3); err == nil {
			value = formatFloats(data)
		}
		sensors.Rows = append(sensors.Rows, ui.Row{Key: name, Value: value})
	}

	touch := ui.Section{Title: "Touch"}
	for _, d := range sdl.TouchDevices() {
		touch.Rows = append(touch.Rows, ui.Row{
			Key:   d.Name(),
			Value: fmt.Sprintf("%d fingers", d.FingerCount()),
		})
	}

	power := ui.Section{Title: "Power", Rows: powerRows(powerOf(sdl.GetPowerInfo()))}
	return []ui.Section{timer, power, sensors, touch}
}

func (w *watcher) Close() {
	if w.counter != nil {
		w.counter.Release()
	}
	for _, s := range w.sensors {
		s.Release()
	}
}
