// Package playing implements the in-game scene: the level simulation, the
// pause and reset hooks, the HUD and input recording.
package playing

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/tilequest/internal/application/level"
	"github.com/younwookim/tilequest/internal/application/replay"
	"github.com/younwookim/tilequest/internal/application/scene"
	"github.com/younwookim/tilequest/internal/application/state"
	"github.com/younwookim/tilequest/internal/application/system"
	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/infrastructure/assets"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
	"github.com/younwookim/tilequest/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorPauseOverlay = color.RGBA{0, 0, 0, 128}
	colorClearOverlay = color.RGBA{20, 60, 20, 160}
	colorBounds       = color.RGBA{255, 60, 60, 255}
)

// Chime plays the pickup sound
type Chime interface {
	Pickup(value int)
}

// Options configures a Playing scene
type Options struct {
	Config *config.GameConfig
	// Library defaults to the generated placeholder art
	Library *assets.Library
	// Input defaults to the keyboard
	Input  system.InputSource
	Logger *zap.Logger
	Diag   diag.Channel
	Sound  Chime
	// RecordFile enables recording; the file is written on exit
	RecordFile string
	ShowBounds bool
}

// Playing is the main game scene
type Playing struct {
	opts     Options
	logger   *zap.Logger
	level    *level.Level
	state    state.GameState
	input    system.InputSource
	recorder *Recorder
	renderer *render.SpriteRenderer
	library  *assets.Library

	background color.RGBA
	screenW    int
	screenH    int
}

var _ scene.Scene = (*Playing)(nil)

// New creates the playing scene for the loaded stage
func New(opts Options) (*Playing, error) {
	cfg := opts.Config
	if cfg == nil || cfg.Settings == nil || cfg.Entities == nil || cfg.Stage == nil {
		return nil, errors.New("playing scene needs a complete config")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lib := opts.Library
	if lib == nil {
		lib = assets.NewPlaceholderLibrary(cfg.Entities, cfg.Stage.TileSize)
	}

	protos, err := level.BuildPrototypes(cfg.Entities, cfg.Settings, lib, opts.Diag)
	if err != nil {
		return nil, fmt.Errorf("failed to build prototypes: %w", err)
	}

	p := &Playing{
		opts:       opts,
		logger:     logger.With(zap.String("stage", cfg.Stage.ID)),
		input:      opts.Input,
		renderer:   render.NewSpriteRenderer(),
		library:    lib,
		background: assets.Palette.Grass,
		screenW:    cfg.Settings.Display.ScreenWidth,
		screenH:    cfg.Settings.Display.ScreenHeight,
	}
	if p.input == nil {
		p.input = system.NewKeyboardInput()
	}
	if cfg.Stage.Background != "" {
		if bg, err := assets.ParseHex(cfg.Stage.Background); err != nil {
			p.logger.Warn("ignoring stage background", zap.Error(err))
		} else {
			p.background = bg
		}
	}

	p.level, err = level.New(level.Options{
		Settings:   cfg.Settings,
		Stage:      cfg.Stage,
		Prototypes: protos,
		Diag:       opts.Diag,
		OnPickup:   p.onPickup,
	})
	if err != nil {
		return nil, err
	}

	if opts.RecordFile != "" {
		p.recorder = NewRecorder(cfg.Stage.ID)
		p.logger.Info("recording enabled",
			zap.String("file", opts.RecordFile),
			zap.String("session", p.recorder.Session()))
	}

	return p, nil
}

func (p *Playing) onPickup(value int) {
	if p.opts.Sound != nil {
		p.opts.Sound.Pickup(value)
	}
}

// Update reads one frame of input and steps the scene. An input source that
// reports Done ends the game with ebiten.Termination.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if src, ok := p.input.(interface{ Done() bool }); ok && src.Done() {
		p.logger.Info("input exhausted",
			zap.Uint64("frame", p.level.Frame()),
			zap.Uint64("checksum", p.level.Checksum()))
		return nil, ebiten.Termination
	}

	in := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.Step(dt, in)

	return nil, nil
}

// Step applies the one-shot commands, then ticks the level unless the
// scene is paused or the stage is clear
func (p *Playing) Step(dt float64, in system.InputState) {
	if in.Reset {
		p.Reset()
	}
	if in.TogglePause {
		p.TogglePause()
	}
	if p.state.Frozen() {
		return
	}

	p.level.Tick(dt, in)

	if p.level.Complete() {
		p.state = state.StateStageClear
		p.logger.Info("stage clear",
			zap.Uint64("frame", p.level.Frame()),
			zap.Int("score", p.level.Score()))
	}
}

// TogglePause switches between playing and paused
func (p *Playing) TogglePause() {
	p.state = p.state.TogglePause()
	p.logger.Debug("pause toggled", zap.Stringer("state", p.state))
}

// Reset rebuilds the level from the stage config and resumes play
func (p *Playing) Reset() {
	if err := p.level.Reset(); err != nil {
		p.logger.Error("level reset failed", zap.Error(err))
		return
	}
	p.state = state.StatePlaying
	p.logger.Info("level reset")
}

// State returns the scene state
func (p *Playing) State() state.GameState { return p.state }

// Level returns the running level
func (p *Playing) Level() *level.Level { return p.level }

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *Recorder { return p.recorder }

// Checksum returns the level checksum
func (p *Playing) Checksum() uint64 { return p.level.Checksum() }

// Draw renders the world through the camera, then the HUD and overlays
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	cam := p.level.Camera()
	p.renderer.Begin(screen, cam.TopLeft())
	p.level.Draw(p.renderer)

	if p.opts.ShowBounds || ebiten.IsKeyPressed(ebiten.KeyTab) {
		w := p.level.World()
		for _, id := range w.Scene() {
			if a := w.Get(id); a != nil {
				verts := a.WorldPolygon()
				for i, v := range verts {
					verts[i] = cam.WorldToScreen(v)
				}
				p.renderer.DrawPolygon(verts, colorBounds)
			}
		}
	}

	ebitenutil.DebugPrint(screen, p.HUDText())

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorPauseOverlay)
	case state.StateStageClear:
		p.drawOverlay(screen, colorClearOverlay)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, p.OverlayText(), p.screenW/2-60, p.screenH/2-20)
}

// HUDText is the status line: coins collected and the controls
func (p *Playing) HUDText() string {
	return fmt.Sprintf("Coins: %d / %d\nArrows/WASD: Move | P: Pause | R: Reset",
		p.level.Collected(), p.level.Info().Coins)
}

// OverlayText is the pause or stage-clear message, empty while playing
func (p *Playing) OverlayText() string {
	switch p.state {
	case state.StatePaused:
		return "PAUSED\n\nPress P to resume"
	case state.StateStageClear:
		return fmt.Sprintf("STAGE CLEAR\n\nCoins collected: %d\n\nPress R to play again", p.level.Collected())
	default:
		return ""
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	info := p.level.Info()
	p.logger.Info("stage entered",
		zap.String("name", info.Name),
		zap.Int("coins", info.Coins),
		zap.Int("walls", info.Walls),
		zap.Strings("images", p.library.Names()))
}

// OnExit finishes and saves the recording
func (p *Playing) OnExit() {
	p.saveRecording()
	p.logger.Debug("stage exited", zap.Int("uploaded_images", p.renderer.Cached()))
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Finish(p.level.Checksum())

	filename := p.opts.RecordFile
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", zap.String("file", filename), zap.Error(err))
		return
	}
	p.logger.Info("recording saved",
		zap.String("file", filename),
		zap.Int("frames", p.recorder.FrameCount()))
}

// Layout returns the game's screen dimensions
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Replay runs a recording through a fresh scene without drawing and returns
// the final checksum. A checksum differing from the recorded one is an
// ErrChecksumMismatch.
func Replay(opts Options, data replay.ReplayData) (uint64, error) {
	r := replay.NewReplayer(data)
	opts.Input = r
	opts.RecordFile = ""

	p, err := New(opts)
	if err != nil {
		return 0, err
	}

	framerate := opts.Config.Settings.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	dt := 1.0 / float64(framerate)
	for {
		if _, err := p.Update(dt); err != nil {
			if errors.Is(err, ebiten.Termination) {
				break
			}
			return 0, err
		}
	}

	sum := p.Checksum()
	return sum, r.Verify(sum)
}
