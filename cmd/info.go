package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/internal/ui"
	"github.com/bnema/sdlbind/sdl"
)

// Info is what the info command reports.
type Info struct {
	Library     string   `json:"library"`
	Version     string   `json:"version"`
	Revision    string   `json:"revision"`
	Platform    string   `json:"platform"`
	Subsystems  string   `json:"subsystems"`
	Missing     []string `json:"missing_functions,omitempty"`
	CPUCount    int      `json:"cpu_count"`
	CacheLine   int      `json:"cpu_cache_line"`
	SystemRAMMB int      `json:"system_ram_mb"`
	SIMDAlign   uint64   `json:"simd_alignment"`
	CPUFeatures []string `json:"cpu_features"`
	Power       Power    `json:"power"`
	BasePath    string   `json:"base_path,omitempty"`
	Locales     []string `json:"locales,omitempty"`
}

// Power is the battery part of Info.
type Power struct {
	State            string  `json:"state"`
	SecondsRemaining int64   `json:"seconds_remaining"`
	Percentage       float32 `json:"percentage"`
}

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show SDL2 library and platform information",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(0)
		if err != nil {
			return err
		}
		defer s.Close()

		info := collectInfo()
		out := cmd.OutOrStdout()
		if infoJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		for _, section := range infoSections(info) {
			fmt.Fprintln(out, ui.RenderSection(section))
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(infoCmd)
}

func collectInfo() Info {
	info := Info{
		Library:     sdl.LibraryPath(),
		Version:     sdl.GetVersion().String(),
		Revision:    sdl.GetRevision(),
		Platform:    sdl.GetPlatformName(),
		Subsystems:  sdl.WasInit(sdl.InitEverything).String(),
		Missing:     sdl.MissingSymbols(),
		CPUCount:    sdl.GetCPUCount(),
		CacheLine:   sdl.GetCPUCacheLineSize(),
		SystemRAMMB: sdl.GetSystemRAM(),
		SIMDAlign:   uint64(sdl.SIMDGetAlignment()),
		Power:       powerOf(sdl.GetPowerInfo()),
	}
	for _, f := range sdl.CPUFeatures() {
		info.CPUFeatures = append(info.CPUFeatures, f.String())
	}
	if base, err := sdl.GetBasePath(); err == nil {
		info.BasePath = base
	}
	if locales, err := sdl.GetPreferredLocales(); err == nil {
		for _, l := range locales {
			info.Locales = append(info.Locales, l.String())
		}
	}
	return info
}

func powerOf(p sdl.PowerInfo) Power {
	return Power{
		State:            p.State.String(),
		SecondsRemaining: int64(p.Remaining.Seconds()),
		Percentage:       p.Percentage,
	}
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func infoSections(info Info) []ui.Section {
	return []ui.Section{
		{
			Title: "Library",
			Rows: []ui.Row{
				{Key: "Path", Value: info.Library},
				{Key: "Version", Value: info.Version},
				{Key: "Revision", Value: info.Revision},
				{Key: "Platform", Value: info.Platform},
				{Key: "Subsystems", Value: info.Subsystems},
				{Key: "Missing functions", Value: strconv.Itoa(len(info.Missing))},
			},
		},
		{
			Title: "System",
			Rows: []ui.Row{
				{Key: "CPUs", Value: strconv.Itoa(info.CPUCount)},
				{Key: "Cache line", Value: fmt.Sprintf("%d bytes", info.CacheLine)},
				{Key: "RAM", Value: fmt.Sprintf("%d MiB", info.SystemRAMMB)},
				{Key: "SIMD alignment", Value: strconv.FormatUint(info.SIMDAlign, 10)},
				{Key: "CPU features", Value: orNone(info.CPUFeatures)},
				{Key: "Base path", Value: info.BasePath},
				{Key: "Locales", Value: orNone(info.Locales)},
			},
		},
		{Title: "Power", Rows: powerRows(info.Power)},
	}
}

func powerRows(p Power) []ui.Row {
	rows := []ui.Row{{Key: "State", Value: p.State}}
	if p.SecondsRemaining > 0 {
		rows = append(rows, ui.Row{Key: "Remaining", Value: fmt.Sprintf("%dm", p.SecondsRemaining/60)})
	}
	if p.Percentage > 0 {
		rows = append(rows, ui.Row{Key: "Charge", Value: fmt.Sprintf("%.0f%%", p.Percentage*100)})
	}
	return rows
}
