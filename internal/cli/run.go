package cli

import (
	"errors"

	"tftgauge/hal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newWindowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Preview the instruments in a desktop window (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(o)
		},
	}
}

func runWindow(o *options) error {
	f, err := o.factory()
	if err != nil {
		return err
	}
	logStart("window", o.cfg)
	return hal.RunWindow(f, hal.WindowConfig{Scale: o.cfg.Scale, TPS: o.cfg.Hz}, o.halOptions()...)
}

func newHeadlessCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the instruments without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.factory()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			logStart("headless", o.cfg)
			err = hal.RunHeadless(ctx, f, hal.HeadlessConfig{Hz: o.cfg.Hz, Ticks: o.cfg.Ticks}, o.halOptions()...)
			switch {
			case ctx.Err() != nil && errors.Is(err, ctx.Err()):
				log.Info().Msg("interrupted")
				return nil
			case err == nil:
				log.Info().Uint64("ticks", o.cfg.Ticks).Msg("done")
			}
			return err
		},
	}
	cmd.Flags().Uint64Var(&o.ticks, "ticks", 0, "stop after this many steps (0 runs until interrupted)")
	return cmd
}
