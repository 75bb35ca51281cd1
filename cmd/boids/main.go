//go:build ebiten

package main

import (
	"fmt"
	"os"

	"boids/internal/app"
	"boids/internal/config"
	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/logging"
	"boids/internal/loop"
	_ "boids/internal/sims/boids"
	"boids/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "boids",
		Short: "Run a scene in a window",
		Long: `boids opens a window and runs a registered scene at a fixed frame rate.

Keys:
  WASD     steer every squareboy
  Space    boost
  R        reset the grid
  F2       toggle entity centres
  F3       toggle frame statistics
  Alt+F4   quit

Mouse: left click spawns a squareboy, right click removes the newest one.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(configPath, cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML or JSON config file")
	flags.Bind(cmd.Flags())
	return cmd
}

func run(cfg *config.Config) error {
	logger := logging.New(cfg.Logging.Level, os.Stderr)

	events := input.NewBroadcaster(input.NewEbitenSource())
	clock, err := core.NewClock(cfg.TargetFPS)
	if err != nil {
		return err
	}
	scene, err := app.NewScene(cfg, events, logger)
	if err != nil {
		return err
	}
	defer scene.Close()

	overlay := ui.NewOverlay(scene, events)
	defer overlay.Close()

	driver := loop.NewDriver(clock, events, scene, nil, logger)
	view := core.Size{W: cfg.Window.Width, H: cfg.Window.Height}

	title := cfg.Window.Title
	if title == "" {
		title = "boids"
	}
	ebiten.SetWindowTitle(title + " - " + scene.Name())
	ebiten.SetTPS(cfg.TargetFPS)
	ebiten.SetWindowSize(view.W+max(cfg.HUDWidth, 0), view.H)

	if err := app.New(driver, scene, overlay, view, cfg.HUDWidth).Run(); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	logger.Info("window closed", "frames", driver.Frames())
	return nil
}
