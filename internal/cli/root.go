// Package cli is the host command line: a preview window, a headless runner
// and a driver for an ST7735 wired to a Linux SPI bus.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"tftgauge/app"
	"tftgauge/hal"
	"tftgauge/internal/buildinfo"
	"tftgauge/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	cfgFile string
	verbose bool

	ticks  uint64
	hz     int
	scale  int
	serial string
	baud   int
	mode   string
	source string

	cfg config.Config
}

// NewRootCmd builds the tftgauge command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "tftgauge",
		Short: "Scrolling trace and segmented gauge for 160x128 TFT panels",
		Long: `tftgauge renders a scrolling value trace and/or a segmented radial gauge
the way an ST7735 breakout shows them. Samples come from a built-in sine
generator or from newline-delimited numbers on a serial port or stdin.`,
		Version:           buildinfo.String(),
		SilenceUsage:      true,
		PersistentPreRunE: o.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(o)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (yaml or toml)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&o.mode, "mode", "", "instruments: graph, gauge or both")
	pf.StringVar(&o.source, "source", "", "samples: sine or serial")
	pf.StringVar(&o.serial, "serial", "", "serial device to read samples from (implies --source serial)")
	pf.IntVar(&o.baud, "baud", 0, "serial baud rate")
	pf.IntVar(&o.hz, "hz", 0, "steps per second")
	pf.IntVar(&o.scale, "scale", 0, "window pixels per panel pixel")

	root.AddCommand(
		newWindowCmd(o),
		newHeadlessCmd(o),
		newPanelCmd(o),
		newConfigCmd(o),
		newPortsCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

func setupLogging(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}

func (o *options) load(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd.ErrOrStderr(), o.verbose)

	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.cfgFile != "" {
		log.Debug().Str("path", o.cfgFile).Msg("config loaded")
	}

	// Explicit flags win over file and environment.
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = o.mode
		case "source":
			cfg.Source = o.source
		case "serial":
			cfg.Serial.Port = o.serial
			cfg.Source = string(app.SourceSerial)
		case "baud":
			cfg.Serial.Baud = o.baud
		case "hz":
			cfg.Hz = o.hz
		case "ticks":
			cfg.Ticks = o.ticks
		case "scale":
			cfg.Scale = o.scale
		default:
			return
		}
		log.Debug().Str("flag", f.Name).Str("value", f.Value.String()).Msg("flag override")
	})
	o.cfg = cfg
	return nil
}

func (o *options) factory() (hal.AppFactory, error) {
	a, err := o.cfg.App()
	if err != nil {
		return nil, err
	}
	return func(h hal.HAL) (func() error, error) {
		return app.New(h, a)
	}, nil
}

func (o *options) halOptions(extra ...hal.Option) []hal.Option {
	var opts []hal.Option
	if o.cfg.Serial.Port != "" {
		opts = append(opts, hal.WithSerialPort(o.cfg.Serial.Port, o.cfg.Serial.Baud))
	}
	return append(opts, extra...)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func logStart(what string, cfg config.Config) {
	log.Info().
		Str("version", buildinfo.Short()).
		Str("mode", cfg.Mode).
		Str("source", cfg.Source).
		Int("hz", cfg.Hz).
		Msg(what)
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports that can feed samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := hal.SerialPorts()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				log.Warn().Msg("no serial ports found")
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
