package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/tilequest/cmd/game/configs"
	"github.com/younwookim/tilequest/internal/application/game"
	"github.com/younwookim/tilequest/internal/application/replay"
	"github.com/younwookim/tilequest/internal/application/scene/playing"
	"github.com/younwookim/tilequest/internal/infrastructure/audio"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
	"github.com/younwookim/tilequest/internal/infrastructure/logging"
)

type options struct {
	stage     string
	record    string
	replay    string
	verify    bool
	configDir string
	bounds    bool
	mute      bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.StringVar(&o.stage, "stage", "map01", "Stage to load from stages/<name>.yaml")
	fs.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fs.StringVar(&o.replay, "replay", "", "Play back a recorded replay")
	fs.BoolVar(&o.verify, "verify", false, "With -replay: run headless and check the final checksum")
	fs.StringVar(&o.configDir, "config", "", "Load configs from a directory instead of the embedded defaults")
	fs.BoolVar(&o.bounds, "bounds", false, "Draw collision boundaries")
	fs.BoolVar(&o.mute, "mute", false, "Disable audio")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.verify && o.replay == "" {
		return o, errors.New("-verify needs -replay")
	}
	if o.record != "" && o.replay != "" {
		return o, errors.New("-record and -replay are exclusive")
	}
	return o, nil
}

func newLoader(dir string) *config.Loader {
	if dir == "" {
		return config.NewFSLoader(configs.FS, "configs")
	}
	return config.NewLoader(dir)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// replays carry their stage
	var data *replay.ReplayData
	if opts.replay != "" {
		if data, err = replay.LoadReplay(opts.replay); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load replay: %v\n", err)
			os.Exit(1)
		}
		opts.stage = data.Stage
	}

	cfg, err := newLoader(opts.configDir).LoadAll(opts.stage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, cfg, data, logger); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}

func run(opts options, cfg *config.GameConfig, data *replay.ReplayData, logger *zap.Logger) error {
	sceneOpts := playing.Options{
		Config:     cfg,
		Logger:     logger,
		Diag:       logging.NewZapChannel(logger),
		RecordFile: opts.record,
		ShowBounds: opts.bounds,
	}

	if opts.verify {
		sum, err := playing.Replay(sceneOpts, *data)
		if err != nil {
			return err
		}
		logger.Info("replay verified",
			zap.String("session", data.Session),
			zap.Int("frames", len(data.Frames)),
			zap.Uint64("checksum", sum))
		return nil
	}
	if data != nil {
		sceneOpts.Input = replay.NewReplayer(*data)
	}

	sound := audio.NewSoundManager(cfg.Settings.Audio)
	if !opts.mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}
	defer sound.Cleanup()
	sceneOpts.Sound = sound

	p, err := playing.New(sceneOpts)
	if err != nil {
		return err
	}

	display := cfg.Settings.Display
	g := game.New(p, display.ScreenWidth, display.ScreenHeight, display.Framerate, logger)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
