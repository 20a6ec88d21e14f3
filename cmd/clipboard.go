package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/sdl"
)

var clipboardPrimary bool

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Read or write the clipboard through SDL",
}

var clipboardGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the clipboard text",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(sdl.InitVideo)
		if err != nil {
			return err
		}
		defer s.Close()

		text := sdl.GetClipboardText()
		if clipboardPrimary {
			text = sdl.GetPrimarySelectionText()
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var clipboardSetCmd = &cobra.Command{
	Use:   "set [text]",
	Short: "Replace the clipboard text, reading stdin when no text is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = strings.TrimSuffix(string(data), "\n")
		}

		s, err := openSession(sdl.InitVideo)
		if err != nil {
			return err
		}
		defer s.Close()

		if clipboardPrimary {
			return sdl.SetPrimarySelectionText(text)
		}
		return sdl.SetClipboardText(text)
	},
}

func init() {
	clipboardCmd.PersistentFlags().BoolVar(&clipboardPrimary, "primary", false, "use the primary selection")

	clipboardCmd.AddCommand(clipboardGetCmd)
	clipboardCmd.AddCommand(clipboardSetCmd)
	rootCmd.AddCommand(clipboardCmd)
}
