package main

import (
	"fmt"
	"image"
	"io"
	"os"

	"boids/internal/app"
	"boids/internal/config"
	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/logging"
	"boids/internal/loop"
	"boids/internal/render"
	_ "boids/internal/sims/boids"
	"boids/internal/ui"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	flags := config.Default()
	var (
		configPath string
		frames     int
		idle       bool
	)

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run a scene without a window",
		Long: `headless runs a registered scene for a fixed number of frames with
scripted input and prints where every entity ended up.

By default the input script presses steering keys at random, seeded by
--seed: a seed always replays the same key presses, while positions still
depend on measured frame times. --idle replays no input at all.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames <= 0 {
				return fmt.Errorf("--frames must be positive, got %d", frames)
			}
			cfg, err := config.Resolve(configPath, cmd.Flags(), flags)
			if err != nil {
				return err
			}
			script := input.RandomScript(cfg.Seed, frames)
			if idle {
				script = input.NewScript(make([][]input.Event, frames)...)
				script.QuitAtEnd = true
			}
			res, err := run(cfg, script, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			res.print(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML or JSON config file")
	cmd.Flags().IntVar(&frames, "frames", 300, "number of scripted frames before quitting")
	cmd.Flags().BoolVar(&idle, "idle", false, "replay no input instead of random steering")
	flags.Bind(cmd.Flags())
	return cmd
}

type result struct {
	scene   string
	frames  uint64
	draws   int
	centers []image.Point
	stats   []string
}

func (r result) print(w io.Writer) {
	fmt.Fprintf(w, "scene %s: %d frames, %d presented\n", r.scene, r.frames, r.draws)
	for _, line := range r.stats {
		fmt.Fprintln(w, line)
	}
	for i, c := range r.centers {
		fmt.Fprintf(w, "%4d %5d %5d\n", i, c.X, c.Y)
	}
}

// run drives the configured scene from src into an off-screen recorder until
// src requests quit.
func run(cfg *config.Config, src input.Source, logOut io.Writer) (result, error) {
	logger := logging.New(cfg.Logging.Level, logOut)

	events := input.NewBroadcaster(src)
	clock, err := core.NewClock(cfg.TargetFPS)
	if err != nil {
		return result{}, err
	}
	scene, err := app.NewScene(cfg, events, logger)
	if err != nil {
		return result{}, err
	}
	defer scene.Close()

	overlay := ui.NewOverlay(scene, events)
	defer overlay.Close()

	rec := render.NewRecorder(cfg.Window.Width, cfg.Window.Height)
	driver := loop.NewDriver(clock, events, scene, rec, logger)
	driver.Run()

	res := result{
		scene:  scene.Name(),
		frames: driver.Frames(),
		draws:  rec.Presents,
		stats:  overlay.StatLines(driver),
	}
	if cp, ok := scene.(interface{ Centers() []image.Point }); ok {
		res.centers = cp.Centers()
	}
	return res, nil
}
