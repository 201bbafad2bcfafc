package main

import (
	"encoding/json"

	"github.com/darkit/deviceid"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd(version string) *cobra.Command {
	var (
		jsonOut bool
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "deviceinfo",
		Short: "Show the hardware model of this device",
		Long: `deviceinfo prints the hardware identifier of the current device, its
model name, whether the binary was built for the simulator, and whether a
debugger is attached.`,
		Example: `  deviceinfo
  deviceinfo --json
  deviceinfo resolve iPhone13,2 Watch3,2`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogging(cmd.ErrOrStderr(), verbose)
			if noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := collectReport()
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			renderReport(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	cmd.AddCommand(newResolveCmd())

	return cmd
}

// collectReport 汇总各项查询；硬件标识读取失败时记录告警并继续输出其余字段
func collectReport() report {
	r := report{
		IsSimulator:         deviceid.IsSimulator(),
		IsRealDevice:        deviceid.IsRealDevice(),
		IsDebuggerConnected: deviceid.IsDebuggerConnected(),
	}

	id, err := deviceid.DeviceID()
	if err != nil {
		logWarn("device_id", err, "failed to read hardware identifier")
		return r
	}
	logDebug("device_id", "hardware identifier is "+id)

	r.DeviceID = id
	r.ModelName = deviceid.ResolveModelName(id)
	return r
}
