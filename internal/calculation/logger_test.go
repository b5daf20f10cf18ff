package calculation

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	l.Debugf("hidden %d", 1)
	l.Infof("built %d rows", 30)
	l.Warnf("rejected: %s", "years")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "built 30 rows")
	assert.Contains(t, out, "rejected: years")
	assert.Contains(t, out, "component=engine")
}

func TestNewSlogLoggerNil(t *testing.T) {
	l := NewSlogLogger(nil)
	assert.NotNil(t, l.L)
}
