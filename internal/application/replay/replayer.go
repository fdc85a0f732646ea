package replay

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/tilequest/internal/application/system"
)

// ErrChecksumMismatch is returned by Verify when a replay diverges
var ErrChecksumMismatch = errors.New("replay checksum mismatch")

// Replayer plays recorded input back. It is a system.InputSource that
// yields the empty input once the recording runs out.
type Replayer struct {
	data  ReplayData
	frame int
}

var _ system.InputSource = (*Replayer)(nil)

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// GetInput implements system.InputSource
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Remaining returns the number of frames left
func (r *Replayer) Remaining() int {
	return len(r.data.Frames) - r.frame
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Session returns the recorded session id
func (r *Replayer) Session() string {
	return r.data.Session
}

// Stage returns the recorded stage name
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Verify compares a level checksum with the recorded final checksum.
// Recordings without a checksum always verify.
func (r *Replayer) Verify(checksum uint64) error {
	if r.data.FinalChecksum == 0 || r.data.FinalChecksum == checksum {
		return nil
	}
	return fmt.Errorf("%w: recorded %016x, got %016x", ErrChecksumMismatch, r.data.FinalChecksum, checksum)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data holding in for every frame
func CreateTestReplayData(frames int, in system.InputState) ReplayData {
	data := ReplayData{
		Version:   Version,
		Session:   uuid.NewString(),
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := range frames {
		data.Frames[i] = FromInput(i, in)
	}

	return data
}
