package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.gauntlet.dev/gauntlet/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	log := logger.New()
	log.SetOutput(&buf)

	log.Info("pipeline started")
	log.Warn("snapshot missing")
	log.Error(zerr.New("step failed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "pipeline started")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "snapshot missing")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "step failed")
}
