package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "debug", SeverityDebug.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warn", SeverityWarn.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}

	Warn(rec, KindMissingClip, "no clip", F("name", "jump"))
	Error(rec, KindPrecondition, "size not set")
	Warn(rec, KindMissingClip, "no clip", F("name", "fly"))

	all := rec.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityWarn, all[0].Severity)
	assert.Equal(t, KindMissingClip, all[0].Kind)
	assert.Equal(t, []Field{{Key: "name", Value: "jump"}}, all[0].Fields)
	assert.Equal(t, SeverityError, all[1].Severity)

	assert.Equal(t, 2, rec.Count(KindMissingClip))
	assert.Equal(t, 1, rec.Count(KindPrecondition))
	assert.Equal(t, 0, rec.Count(KindUnknownMapObject))

	rec.Reset()
	assert.Empty(t, rec.All())
}

func TestOr(t *testing.T) {
	assert.Equal(t, Discard, Or(nil))

	rec := &Recorder{}
	assert.Equal(t, Channel(rec), Or(rec))

	// nil channels are tolerated by the helpers
	assert.NotPanics(t, func() { Warn(nil, KindRuntime, "ignored") })
}
