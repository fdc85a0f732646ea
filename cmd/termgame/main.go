// Command termgame plays a stage in the terminal through tcell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/tilequest/cmd/game/configs"
	"github.com/younwookim/tilequest/internal/application/scene/playing"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
	"github.com/younwookim/tilequest/internal/infrastructure/logging"
	"github.com/younwookim/tilequest/internal/infrastructure/render"
)

// world pixels per terminal cell; cells are about twice as tall as wide
const (
	cellW = 12
	cellH = 24
	// bottom rows reserved for the HUD
	hudRows = 2
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

func main() {
	stage := flag.String("stage", "map01", "Stage to load from stages/<name>.yaml")
	logFile := flag.String("log", "termgame.log", "Log file (the terminal is taken by the game)")
	record := flag.String("record", "", "Record input to file")
	flag.Parse()

	cfg, err := config.NewFSLoader(configs.FS, "configs").LoadAll(*stage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Settings.Logging.Output = *logFile

	logger, err := logging.New(cfg.Settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	err = run(screen, cfg, *record, logger)
	screen.Fini()
	if err != nil {
		logger.Error("termgame exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fitView sizes the camera viewport to the terminal
func fitView(screen tcell.Screen, settings *config.SettingsConfig) {
	cols, rows := screen.Size()
	settings.Display.ScreenWidth = cols * cellW
	settings.Display.ScreenHeight = (rows - hudRows) * cellH
}

func run(screen tcell.Screen, cfg *config.GameConfig, record string, logger *zap.Logger) error {
	fitView(screen, cfg.Settings)

	framerate := cfg.Settings.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	// auto-repeat typically fires every ~30ms after a ~250ms delay
	input := newTermInput(framerate / 3)

	p, err := playing.New(playing.Options{
		Config:     cfg,
		Input:      input,
		Logger:     logger,
		Diag:       logging.NewZapChannel(logger),
		RecordFile: record,
	})
	if err != nil {
		return err
	}
	p.OnEnter()
	defer p.OnExit()

	renderer := render.NewTerminalRenderer(screen, cellW, cellH)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	dt := 1.0 / float64(framerate)
	ticker := time.NewTicker(time.Second / time.Duration(framerate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
				logger.Debug("terminal resized; viewport kept until restart")
			}

		case <-ticker.C:
			if input.Quit() {
				return nil
			}
			if _, err := p.Update(dt); err != nil {
				if errors.Is(err, ebiten.Termination) {
					return nil
				}
				return err
			}
			draw(renderer, p)
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or done
// is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func draw(r *render.TerminalRenderer, p *playing.Playing) {
	lvl := p.Level()
	r.Begin(lvl.Camera().TopLeft())
	lvl.Draw(r)

	_, viewH := r.ViewSize()
	r.Text(0, int(viewH/cellH)-hudRows, p.HUDText(), hudStyle)
	if msg := p.OverlayText(); msg != "" {
		r.Text(1, 1, msg, hudStyle)
	}
	r.Show()
}
