package playing

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/tilequest/internal/application/replay"
	"github.com/younwookim/tilequest/internal/application/scene"
	"github.com/younwookim/tilequest/internal/application/state"
	"github.com/younwookim/tilequest/internal/application/system"
	"github.com/younwookim/tilequest/internal/infrastructure/assets"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

const dt = 1.0 / 60.0

// heldInput returns the same input every frame
type heldInput struct{ in system.InputState }

func (h *heldInput) GetInput() system.InputState { return h.in }

type countingChime struct{ values []int }

func (c *countingChime) Pickup(v int) { c.values = append(c.values, v) }

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/game/configs").LoadAll("map01")
	require.NoError(t, err)
	return cfg
}

// coinUnderPlayer is a one-coin stage cleared on the first frame
func coinUnderPlayer(cfg *config.GameConfig) *config.GameConfig {
	out := *cfg
	out.Stage = &config.StageConfig{
		ID: "tiny", TileSize: 32, Width: 30, Height: 30,
		Objects: []config.ObjectConfig{
			{Tag: config.TagPlayer, RectConfig: config.RectConfig{X: 100, Y: 100, W: 48, H: 48}},
			{Tag: config.TagCoin, RectConfig: config.RectConfig{X: 108, Y: 108, W: 32, H: 32}},
		},
	}
	return &out
}

func newTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Config == nil {
		opts.Config = loadConfig(t)
	}
	if opts.Input == nil {
		opts.Input = &heldInput{}
	}
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	cfg := loadConfig(t)
	cfg.Stage = nil
	_, err = New(Options{Config: cfg})
	assert.Error(t, err)
}

func TestNewPlaying(t *testing.T) {
	p := newTestPlaying(t, Options{})

	assert.Equal(t, state.StatePlaying, p.State())
	require.NotNil(t, p.Level().World().Player())
	assert.Equal(t, 9, p.Level().Info().Coins)
	assert.Nil(t, p.Recorder())
	assert.Equal(t, "#2d5a27", p.opts.Config.Stage.Background)
	assert.Equal(t, uint8(0x5a), p.background.G)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := newTestPlaying(t, Options{})

	next, err := p.Update(dt)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, uint64(1), p.Level().Frame())
}

func TestPlaying_PauseFreezesSimulation(t *testing.T) {
	p := newTestPlaying(t, Options{})
	player := p.Level().World().Player()
	startX := player.Position.X

	p.Step(dt, system.InputState{TogglePause: true})
	assert.Equal(t, state.StatePaused, p.State())

	for range 10 {
		p.Step(dt, system.InputState{Right: true})
	}
	assert.Equal(t, startX, player.Position.X, "paused scene does not tick")
	assert.Equal(t, uint64(0), p.Level().Frame())

	p.Step(dt, system.InputState{Right: true, TogglePause: true})
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Greater(t, player.Position.X, startX, "resuming frame ticks")
}

func TestPlaying_StageClearAndReset(t *testing.T) {
	chime := &countingChime{}
	p := newTestPlaying(t, Options{Config: coinUnderPlayer(loadConfig(t)), Sound: chime})

	p.Step(dt, system.InputState{})

	assert.Equal(t, state.StateStageClear, p.State())
	assert.Equal(t, []int{1}, chime.values)
	assert.Contains(t, p.OverlayText(), "STAGE CLEAR")

	p.Step(dt, system.InputState{TogglePause: true})
	assert.Equal(t, state.StateStageClear, p.State(), "pause does not leave a cleared stage")
	assert.Equal(t, uint64(1), p.Level().Frame())

	p.Step(dt, system.InputState{Reset: true})
	assert.Equal(t, state.StateStageClear, p.State(), "the coin is collected again on the reset frame")
	assert.Equal(t, 1, p.Level().Collected())
	assert.Equal(t, []int{1, 1}, chime.values)
}

func TestPlaying_ResetWhilePaused(t *testing.T) {
	p := newTestPlaying(t, Options{})
	player := p.Level().World().Player()
	startX := player.Position.X

	for range 5 {
		p.Step(dt, system.InputState{Left: true})
	}
	p.Step(dt, system.InputState{TogglePause: true})
	require.Equal(t, state.StatePaused, p.State())

	p.Step(dt, system.InputState{Reset: true})

	assert.Equal(t, state.StatePlaying, p.State())
	player = p.Level().World().Player()
	assert.InDelta(t, startX, player.Position.X, 1e-9, "reset frame ticks from the spawn point")
	assert.Equal(t, uint64(1), p.Level().Frame())
}

func TestPlaying_HUD(t *testing.T) {
	p := newTestPlaying(t, Options{})

	assert.Contains(t, p.HUDText(), "Coins: 0 / 9")
	assert.Empty(t, p.OverlayText())

	p.TogglePause()
	assert.Contains(t, p.OverlayText(), "PAUSED")
}

func TestPlaying_TerminatesWhenInputRunsOut(t *testing.T) {
	data := replay.CreateTestReplayData(2, system.InputState{Down: true})
	p := newTestPlaying(t, Options{Input: replay.NewReplayer(data)})

	_, err := p.Update(dt)
	require.NoError(t, err)
	_, err = p.Update(dt)
	require.NoError(t, err)

	_, err = p.Update(dt)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, uint64(2), p.Level().Frame())
}

func TestPlaying_WithRecorder(t *testing.T) {
	file := filepath.Join(t.TempDir(), "replay.json")
	p := newTestPlaying(t, Options{RecordFile: file, Input: &heldInput{system.InputState{Right: true}}})
	require.NotNil(t, p.Recorder())

	for range 3 {
		_, err := p.Update(dt)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.Recorder().FrameCount())

	p.OnExit()
	assert.False(t, p.Recorder().IsRecording())

	data, err := replay.LoadReplay(file)
	require.NoError(t, err)
	assert.Equal(t, p.Recorder().Session(), data.Session)
	assert.Equal(t, "map01", data.Stage)
	assert.Equal(t, p.Checksum(), data.FinalChecksum)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[2].R)

	assert.NotPanics(t, p.OnExit, "a finished recording is saved once")
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	p := newTestPlaying(t, Options{RecordFile: filepath.Join(t.TempDir(), "empty.json")})

	assert.NotPanics(t, p.OnExit)
}

func TestReplay_ReproducesRecording(t *testing.T) {
	cfg := loadConfig(t)
	script := []system.InputState{
		{Right: true}, {Right: true}, {Right: true, Down: true}, {TogglePause: true},
		{Left: true}, {TogglePause: true}, {Down: true}, {Reset: true}, {Up: true}, {},
	}

	rec := newTestPlaying(t, Options{Config: cfg})
	rec.recorder = NewRecorder(cfg.Stage.ID)
	for _, in := range script {
		rec.recorder.RecordFrame(in)
		rec.Step(dt, in)
	}
	rec.recorder.Finish(rec.Checksum())
	data := rec.recorder.GetData()

	sum, err := Replay(Options{Config: cfg}, data)
	require.NoError(t, err)
	assert.Equal(t, data.FinalChecksum, sum)

	data.Frames[len(data.Frames)-2].U = false
	data.Frames[len(data.Frames)-2].L = true
	_, err = Replay(Options{Config: cfg}, data)
	assert.ErrorIs(t, err, replay.ErrChecksumMismatch)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder("test")

	assert.True(t, r.IsRecording())
	assert.NotEmpty(t, r.Session())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder("test")
	r.RecordFrame(system.InputState{Left: true})
	r.Stop()

	r.RecordFrame(system.InputState{Left: true})

	assert.Equal(t, 1, r.FrameCount())
	assert.Equal(t, 0, r.GetData().Frames[0].F)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("test")

	err := r.Save(filepath.Join(t.TempDir(), "x.json"))

	assert.ErrorContains(t, err, "no frames")
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, GenerateFilename())
}

func TestPlaying_EnterExitLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := newTestPlaying(t, Options{Logger: zap.New(core)})

	p.OnEnter()
	p.OnExit()

	entered := logs.FilterMessage("stage entered").All()
	require.Len(t, entered, 1)
	images, ok := entered[0].ContextMap()["images"].([]interface{})
	require.True(t, ok)
	require.Len(t, images, len(p.library.Names()))
	for i, name := range p.library.Names() {
		assert.Equal(t, name, images[i])
	}
	assert.Contains(t, images, interface{}(assets.ImageWall))

	exited := logs.FilterMessage("stage exited").All()
	require.Len(t, exited, 1)
	assert.Equal(t, int64(0), exited[0].ContextMap()["uploaded_images"], "nothing drawn yet")
}
