// Package diag is the structured diagnostic channel used by the game core.
//
// The frame loop never returns errors or panics for recoverable anomalies
// (unknown clip names, shapes built before a size is known, unrecognized map
// objects). It reports them here and carries on.
package diag

import "sync"

// Severity of a diagnostic
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind classifies the anomaly
type Kind string

const (
	// KindMissingClip: an unregistered animation clip was referenced
	KindMissingClip Kind = "missing_clip"
	// KindPrecondition: geometry or origin computed before size was set
	KindPrecondition Kind = "precondition"
	// KindUnknownMapObject: the map provider yielded an unknown tag
	KindUnknownMapObject Kind = "unknown_map_object"
	// KindRuntime: anything recovered inside the frame loop
	KindRuntime Kind = "runtime"
)

// Field is a key/value context pair
type Field struct {
	Key   string
	Value any
}

// F builds a Field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Diagnostic is a single reported anomaly
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Fields   []Field
}

// Channel consumes diagnostics
type Channel interface {
	Emit(d Diagnostic)
}

// Discard drops every diagnostic
var Discard Channel = discard{}

type discard struct{}

func (discard) Emit(Diagnostic) {}

// Or returns ch, or Discard when ch is nil
func Or(ch Channel) Channel {
	if ch == nil {
		return Discard
	}
	return ch
}

// Warn emits a warning on ch
func Warn(ch Channel, kind Kind, msg string, fields ...Field) {
	Or(ch).Emit(Diagnostic{Severity: SeverityWarn, Kind: kind, Message: msg, Fields: fields})
}

// Error emits an error on ch
func Error(ch Channel, kind Kind, msg string, fields ...Field) {
	Or(ch).Emit(Diagnostic{Severity: SeverityError, Kind: kind, Message: msg, Fields: fields})
}

// Recorder keeps every diagnostic in memory
type Recorder struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Emit implements Channel
func (r *Recorder) Emit(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, d)
}

// All returns a copy of the recorded diagnostics
func (r *Recorder) All() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns how many diagnostics of kind were recorded
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// Reset clears the recorder
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
