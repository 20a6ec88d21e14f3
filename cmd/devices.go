package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/sdlbind/internal/logger"
	"github.com/bnema/sdlbind/internal/ui"
	"github.com/bnema/sdlbind/sdl"
)

var sensorsRead bool

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List sensors",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(sdl.InitSensor)
		if err != nil {
			return err
		}
		defer s.Close()

		var rows [][]string
		for _, info := range sdl.SensorInfos() {
			name, _ := info.Name()
			id, _ := info.InstanceID()
			row := []string{strconv.Itoa(info.Index), strconv.Itoa(int(id)), name, info.Type().String(), ""}
			if sensorsRead {
				row[4] = readSensor(info)
			}
			rows = append(rows, row)
		}

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(out, ui.FormatWarning("No sensors found"))
			return nil
		}
		fmt.Fprint(out, ui.RenderTable([]string{"Index", "ID", "Name", "Type", "Data"}, rows))
		return nil
	},
}

func readSensor(info sdl.SensorInfo) string {
	sensor, err := info.Open()
	if err != nil {
		logger.Debug("Failed to open sensor", "index", info.Index, "err", err)
		return "-"
	}
	defer sensor.Release()

	sdl.SensorUpdate()
	data, err := sensor.Data(3)
	if err != nil {
		return "-"
	}
	return formatFloats(data)
}

func formatFloats(values []float32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'f', 3, 32)
	}
	return strings.Join(parts, " ")
}

var touchCmd = &cobra.Command{
	Use:   "touch",
	Short: "List touch devices and active fingers",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(sdl.InitEvents)
		if err != nil {
			return err
		}
		defer s.Close()

		var rows [][]string
		for _, d := range sdl.TouchDevices() {
			rows = append(rows, []string{
				strconv.Itoa(d.Index()),
				strconv.FormatInt(int64(d.ID()), 10),
				d.Name(),
				d.Type().String(),
				strconv.Itoa(d.FingerCount()),
			})
		}

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(out, ui.FormatWarning("No touch devices found"))
			return nil
		}
		fmt.Fprint(out, ui.RenderTable([]string{"Index", "ID", "Name", "Type", "Fingers"}, rows))
		return nil
	},
}

var (
	hidVendor  string
	hidProduct string
)

var hidCmd = &cobra.Command{
	Use:   "hid",
	Short: "List HID devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		vendor, err := parseUSBID(hidVendor)
		if err != nil {
			return fmt.Errorf("invalid --vendor: %w", err)
		}
		product, err := parseUSBID(hidProduct)
		if err != nil {
			return fmt.Errorf("invalid --product: %w", err)
		}

		s, err := openSession(0)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := sdl.HIDInit(); err != nil {
			return err
		}
		defer sdl.HIDExit()

		infos, err := sdl.HIDDeviceInfos(vendor, product)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(infos) == 0 {
			fmt.Fprintln(out, ui.FormatWarning("No HID devices found"))
			return nil
		}
		rows := make([][]string, len(infos))
		for i, info := range infos {
			rows[i] = []string{
				fmt.Sprintf("%04x:%04x", info.VendorID, info.ProductID),
				info.Manufacturer,
				info.Product,
				fmt.Sprintf("%04x/%04x", info.UsagePage, info.Usage),
				info.Path,
			}
		}
		fmt.Fprint(out, ui.RenderTable([]string{"ID", "Manufacturer", "Product", "Usage", "Path"}, rows))
		return nil
	},
}

// parseUSBID reads a hex USB id with or without 0x. Empty matches any device.
func parseUSBID(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func init() {
	sensorsCmd.Flags().BoolVar(&sensorsRead, "read", false, "read one sample from each sensor")
	hidCmd.Flags().StringVar(&hidVendor, "vendor", "", "USB vendor id in hex")
	hidCmd.Flags().StringVar(&hidProduct, "product", "", "USB product id in hex")

	rootCmd.AddCommand(sensorsCmd)
	rootCmd.AddCommand(touchCmd)
	rootCmd.AddCommand(hidCmd)
}
