package cli

import (
	"errors"
	"fmt"

	"tftgauge/hal"
	"tftgauge/internal/panel"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func newPanelCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Drive an ST7735 panel on a Linux SPI bus",
		Long: `Renders into an ST7735 connected to spidev (Raspberry Pi and similar).
Pins are periph names such as GPIO25; see panel.* in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(o)
		},
	}
	cmd.Flags().Uint64Var(&o.ticks, "ticks", 0, "stop after this many steps (0 runs until interrupted)")
	return cmd
}

func runPanel(o *options) error {
	f, err := o.factory()
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph init: %w", err)
	}

	pc := o.cfg.Panel
	port, err := spireg.Open(pc.SPI)
	if err != nil {
		return fmt.Errorf("open spi %q: %w", pc.SPI, err)
	}
	defer port.Close()

	dc := gpioreg.ByName(pc.DC)
	if dc == nil {
		return fmt.Errorf("dc pin %q not found", pc.DC)
	}
	var rst gpio.PinIO
	if pc.RST != "" {
		if rst = gpioreg.ByName(pc.RST); rst == nil {
			return fmt.Errorf("rst pin %q not found", pc.RST)
		}
	}

	dev, err := panel.NewSPI(port, dc, &panel.Opts{
		RowOffset: pc.RowOffset,
		ColOffset: pc.ColOffset,
		Rotated:   pc.Rotated,
		BGR:       pc.BGR,
		RST:       rst,
		Hz:        physic.Frequency(pc.SpeedHz) * physic.Hertz,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Halt(); err != nil {
			log.Warn().Err(err).Msg("panel halt")
		}
	}()
	log.Info().Stringer("panel", dev).Msg("panel ready")

	ctx, cancel := signalContext()
	defer cancel()

	logStart("panel", o.cfg)
	err = hal.RunHeadless(ctx, f, hal.HeadlessConfig{Hz: o.cfg.Hz, Ticks: o.cfg.Ticks}, o.halOptions(hal.WithFramebuffer(dev))...)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}
