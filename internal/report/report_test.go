package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{W: &buf}.Report(13))
	assert.Equal(t, "13\n", buf.String())

	err := Text{W: failingWriter{}}.Report(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r, err := New("json", "stabilize", &buf)
	require.NoError(t, err)
	require.NoError(t, r.Report(43))
	assert.JSONEq(t, `{"mode":"stabilize","value":43}`, buf.String())
}

func TestLogReporter(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, Log{L: zap.New(obsCore), Mode: "accessible"}.Report(4))

	entries := logs.FilterMessage("result").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "accessible", entries[0].ContextMap()["mode"])
	assert.EqualValues(t, 4, entries[0].ContextMap()["value"])
}

func TestMultiStopsAtFirstError(t *testing.T) {
	var buf bytes.Buffer
	m := Multi{Text{W: failingWriter{}}, Text{W: &buf}}
	require.Error(t, m.Report(2))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, Multi{Text{W: &buf}, Text{W: &buf}}.Report(2))
	assert.Equal(t, "2\n2\n", buf.String())
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("xml", "accessible", nil)
	require.Error(t, err)

	r, err := New("", "accessible", nil)
	require.NoError(t, err)
	assert.IsType(t, Text{}, r)
}
