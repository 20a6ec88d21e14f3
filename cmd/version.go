package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/sdl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sdlbind %s\n", Version)
		fmt.Fprintf(out, "commit: %s\n", Commit)
		fmt.Fprintf(out, "built: %s\n", Date)

		if err := sdl.Load(libraryCandidates()...); err != nil {
			fmt.Fprintf(out, "SDL2: not available (%v)\n", err)
			return
		}
		fmt.Fprintf(out, "SDL2: %s (%s)\n", sdl.GetVersion(), sdl.GetRevision())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
