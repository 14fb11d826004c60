package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RBEGamer/OnRobot3FG15/internal/config"
	"github.com/RBEGamer/OnRobot3FG15/internal/control"
	"github.com/RBEGamer/OnRobot3FG15/internal/discovery"
	"github.com/RBEGamer/OnRobot3FG15/internal/gripper"
	"github.com/RBEGamer/OnRobot3FG15/internal/tui"
)

var (
	flagDevice   string
	flagPort     int
	flagConfig   string
	flagInterval time.Duration
	flagSettle   time.Duration
	flagFormat   string
	flagTimeout  time.Duration
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDevice, "device", "d", "", "Device host or IP (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", 0, "Device HTTP port (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().DurationVar(&flagInterval, "interval", 0, "Status poll interval (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&flagSettle, "settle", 0, "Post-command settle delay (overrides config)")

	statusCmd.Flags().StringVarP(&flagFormat, "format", "f", "compact", "Output format: compact, detailed, json")
	scanCmd.Flags().DurationVarP(&flagTimeout, "timeout", "t", discovery.DefaultScanTimeout, "Scan timeout")

	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(flexCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(setForceCmd)
	rootCmd.AddCommand(setDiameterCmd)
	rootCmd.AddCommand(setGripTypeCmd)
}

// loadSetup resolves the effective configuration and builds the API client.
// Flags take precedence over the config file, which takes precedence over
// the built-in defaults.
func loadSetup() (*config.Config, *gripper.Client, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, "", err
	}

	if flagDevice != "" {
		cfg.Device.Host = flagDevice
	}
	if flagPort != 0 {
		cfg.Device.Port = flagPort
	}
	if flagInterval > 0 {
		cfg.Poll.IntervalMs = int(flagInterval / time.Millisecond)
	}
	if flagSettle > 0 {
		cfg.Poll.SettleMs = int(flagSettle / time.Millisecond)
	}

	label := fmt.Sprintf("%s:%d", cfg.Device.Host, cfg.Device.Port)
	client := gripper.NewClient(cfg.Device.Host, cfg.Device.Port)

	return cfg, client, label, nil
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Launch the interactive control panel",
	Long: `Launch the interactive control panel.

The panel shows the live device snapshot, refreshed on a fixed cadence
and after every command, and offers single-key actuation plus inline
parameter editing.`,
	RunE: runPanel,
}

func runPanel(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the control panel requires an interactive terminal")
	}

	cfg, client, label, err := loadSetup()
	if err != nil {
		return err
	}

	sess := control.NewSession(client, control.Options{
		PollInterval: cfg.PollInterval(),
		SettleDelay:  cfg.SettleDelay(),
	})

	model := tui.NewPanelModel(sess, label, cfg.Params)
	program := tea.NewProgram(model, tea.WithAltScreen())

	sess.SetNotify(func(st control.DisplayState) {
		program.Send(tui.StateMsg(st))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("panel error: %w", err)
	}
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch and print the current device snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, label, err := loadSetup()
		if err != nil {
			return err
		}

		status, err := client.FetchStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("status error: %s", gripper.ErrorMessage(err))
		}

		switch flagFormat {
		case "json":
			data, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		case "detailed":
			fmt.Printf("Device: %s\n\n", label)
			fmt.Print(status.FormatDetailed())
		default:
			fmt.Print(status.FormatCompact())
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously print the device snapshot",
	Long: `Continuously print the device snapshot.

Runs the same synchronization loop as the panel but prints one summary
line per state change. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, label, err := loadSetup()
		if err != nil {
			return err
		}

		fmt.Printf("Watching %s (poll every %s, Ctrl+C to stop)\n", label, cfg.PollInterval())

		sess := control.NewSession(client, control.Options{
			PollInterval: cfg.PollInterval(),
			SettleDelay:  cfg.SettleDelay(),
		})
		sess.SetNotify(func(st control.DisplayState) {
			stamp := st.UpdatedAt.Format("15:04:05.000")
			if st.HasError() {
				fmt.Printf("%s  %s\n", stamp, st.LastError)
				return
			}
			fmt.Printf("%s  %s\n", stamp, st.Status.Summary())
		})

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		sess.Run(ctx)
		fmt.Println("\nStopped.")
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover gripper control services on the local network",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Scanning for grippers (timeout %s)...\n", flagTimeout)

		devices, err := discovery.ScanForDevices(flagTimeout)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(devices) == 0 {
			fmt.Println("No grippers found.")
			return nil
		}

		fmt.Printf("Found %d gripper(s):\n", len(devices))
		for _, device := range devices {
			fmt.Printf("  %s\n", device)
		}
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the gripper fully",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActuation(cmd.Context(), "open", func(ctx context.Context, c *gripper.Client) error {
			return c.Open(ctx)
		})
	},
}

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the gripper fully",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActuation(cmd.Context(), "close", func(ctx context.Context, c *gripper.Client) error {
			return c.Close(ctx)
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move to the configured target diameter",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActuation(cmd.Context(), "move", func(ctx context.Context, c *gripper.Client) error {
			return c.Move(ctx)
		})
	},
}

var flexCmd = &cobra.Command{
	Use:   "flex",
	Short: "Perform a flexible (force-limited) grip",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActuation(cmd.Context(), "flex", func(ctx context.Context, c *gripper.Client) error {
			return c.Flex(ctx)
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Abort the current motion",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActuation(cmd.Context(), "stop", func(ctx context.Context, c *gripper.Client) error {
			return c.Stop(ctx)
		})
	},
}

var setForceCmd = &cobra.Command{
	Use:   "set-force <value>",
	Short: "Set the target grip force (0-1000 = 0-100%)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := control.ParseValue(args[0])
		return runActuation(cmd.Context(), fmt.Sprintf("set force to %d", value),
			func(ctx context.Context, c *gripper.Client) error {
				return c.SetForce(ctx, value)
			})
	},
}

var setDiameterCmd = &cobra.Command{
	Use:   "set-diameter <value>",
	Short: "Set the target diameter in 0.1 mm units",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := control.ParseValue(args[0])
		return runActuation(cmd.Context(), fmt.Sprintf("set diameter to %d", value),
			func(ctx context.Context, c *gripper.Client) error {
				return c.SetDiameter(ctx, value)
			})
	},
}

var setGripTypeCmd = &cobra.Command{
	Use:   "set-griptype <external|internal>",
	Short: "Set the grip type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value int
		if gt, err := gripper.ParseGripType(args[0]); err == nil {
			value = int(gt)
		} else {
			value = control.ParseValue(args[0])
		}
		return runActuation(cmd.Context(), fmt.Sprintf("set grip type to %d", value),
			func(ctx context.Context, c *gripper.Client) error {
				return c.SetGripType(ctx, value)
			})
	},
}

// runActuation issues one command and, on success, waits out the settle
// delay and prints the re-polled snapshot. This mirrors the panel's
// dispatch+settle+re-poll sequence in one-shot form.
func runActuation(ctx context.Context, name string, call func(context.Context, *gripper.Client) error) error {
	cfg, client, _, err := loadSetup()
	if err != nil {
		return err
	}

	if err := call(ctx, client); err != nil {
		return fmt.Errorf("%s failed: %s", name, gripper.ErrorMessage(err))
	}
	fmt.Printf("OK: %s\n", name)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(cfg.SettleDelay()):
	}

	status, err := client.FetchStatus(ctx)
	if err != nil {
		fmt.Printf("Status error: %s\n", gripper.ErrorMessage(err))
		return nil
	}
	fmt.Println(status.Summary())
	return nil
}
