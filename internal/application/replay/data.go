package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/younwookim/tilequest/internal/application/system"
)

// Version is the replay file format written by this build
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	P  bool `json:"p,omitempty"`  // TogglePause
	RS bool `json:"rs,omitempty"` // Reset
}

// FromInput packs one frame of input
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		P:  in.TogglePause,
		RS: in.Reset,
	}
}

// Input unpacks the frame into an InputState
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		Up:          fi.U,
		Down:        fi.D,
		TogglePause: fi.P,
		Reset:       fi.RS,
	}
}

// ReplayData contains all data needed to replay a game session.
// FinalChecksum is the level checksum after the last frame; zero when the
// recording was not closed cleanly.
type ReplayData struct {
	Version       string       `json:"version"`
	Session       string       `json:"session"`
	Stage         string       `json:"stage"`
	StartTime     string       `json:"startTime"`
	FinalChecksum uint64       `json:"finalChecksum,omitempty"`
	Frames        []FrameInput `json:"frames"`
}

// Validate checks the format version, the session id and frame numbering
func (d *ReplayData) Validate() error {
	if d.Version != Version {
		return fmt.Errorf("unsupported replay version %q", d.Version)
	}
	if d.Session != "" {
		if _, err := uuid.Parse(d.Session); err != nil {
			return fmt.Errorf("invalid session id: %w", err)
		}
	}
	for i, f := range d.Frames {
		if f.F != i {
			return fmt.Errorf("frame %d is numbered %d", i, f.F)
		}
	}
	return nil
}

// Encode writes the replay as indented JSON
func Encode(w io.Writer, data *ReplayData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads and validates a replay
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}
