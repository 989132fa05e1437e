package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"gradient/hal"
	"gradient/internal/buildinfo"
	"gradient/internal/config"
	"gradient/internal/snapshot"
	"gradient/render"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	var (
		configPath string
		flags      = config.Default()
	)

	rootCmd := &cobra.Command{
		Use:   "gradient [flags]",
		Short: "Animated gradient rendered through an off-screen back buffer",
		Example: `  # Open a window at the platform's default size
  gradient

  # Fixed 1200x800 window with a frame caption
  gradient --width 1200 --height 800 --overlay

  # Render 120 frames without a window and keep the last one
  gradient --headless --frames 120 --snapshot last.webp`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			applyFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	f.StringVar(&flags.Title, "title", flags.Title, "Window title")
	f.IntVar(&flags.InitialWidth, "width", 0, "Initial client width (0 = platform default)")
	f.IntVar(&flags.InitialHeight, "height", 0, "Initial client height (0 = platform default)")
	f.BoolVar(&flags.Headless, "headless", false, "Run without a window")
	f.Uint64Var(&flags.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted)")
	f.BoolVar(&flags.Overlay, "overlay", false, "Draw a frame counter caption")
	f.StringVar(&flags.Allocator, "allocator", flags.Allocator, "Back buffer allocator: heap or pages")
	f.StringVar(&flags.Filter, "filter", flags.Filter, "Stretch filter: nearest or linear")
	f.StringVar(&flags.Snapshot, "snapshot", "", "Write the last headless frame to a .png, .webp or .tga file")
	f.BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(buildinfo.Short()),
		fang.WithCommit(buildinfo.CommitID()),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

// applyFlags copies every flag the user set explicitly over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	set := cmd.Flags().Changed
	if set("title") {
		cfg.Title = flags.Title
	}
	if set("width") {
		cfg.InitialWidth = flags.InitialWidth
	}
	if set("height") {
		cfg.InitialHeight = flags.InitialHeight
	}
	if set("headless") {
		cfg.Headless = flags.Headless
	}
	if set("frames") {
		cfg.Frames = flags.Frames
	}
	if set("overlay") {
		cfg.Overlay = flags.Overlay
	}
	if set("allocator") {
		cfg.Allocator = flags.Allocator
	}
	if set("filter") {
		cfg.Filter = flags.Filter
	}
	if set("snapshot") {
		cfg.Snapshot = flags.Snapshot
	}
	if set("debug") {
		cfg.Debug = flags.Debug
	}
}

func run(ctx context.Context, cfg config.Config) error {
	log := hal.NewLogger(os.Stderr, cfg.Debug)
	slog.SetDefault(log)

	alloc, err := hal.NewAllocator(cfg.Allocator)
	if err != nil {
		return err
	}

	newLoop := func(w hal.Window) func() bool {
		opts := []render.LoopOption{render.WithLogger(log)}
		if cfg.Overlay {
			opts = append(opts, render.WithOverlay(render.NewOverlay()))
		}
		return render.NewLoop(w, render.NewState(alloc), opts...).Step
	}

	if !cfg.Headless {
		err := hal.RunWindow(ctx, hal.WindowConfig{
			Title:  cfg.Title,
			Width:  cfg.InitialWidth,
			Height: cfg.InitialHeight,
			Linear: cfg.LinearFilter(),
			Logger: log,
		}, newLoop)
		if err != nil {
			log.Error("window failed", "err", err)
		}
		return err
	}

	frame, err := hal.RunHeadless(ctx, hal.HeadlessConfig{
		Width:  cfg.InitialWidth,
		Height: cfg.InitialHeight,
		Frames: cfg.Frames,
		Linear: cfg.LinearFilter(),
		Logger: log,
	}, newLoop)
	if err != nil {
		log.Error("headless run failed", "err", err)
		return err
	}
	if cfg.Snapshot == "" {
		return nil
	}
	if frame == nil {
		return fmt.Errorf("snapshot %s: no frame was presented", cfg.Snapshot)
	}
	if err := snapshot.Write(cfg.Snapshot, frame); err != nil {
		return err
	}
	log.Info("snapshot written", "path", cfg.Snapshot)
	return nil
}
