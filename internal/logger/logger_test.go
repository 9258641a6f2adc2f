package logger

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logging.DEBUG, ParseLevel("debug"))
	assert.Equal(t, logging.WARNING, ParseLevel("warn"))
	assert.Equal(t, logging.WARNING, ParseLevel("WARNING"))
	assert.Equal(t, logging.ERROR, ParseLevel("error"))
	assert.Equal(t, logging.INFO, ParseLevel("chatty"))
	assert.Equal(t, logging.DEBUG, ParseLevel(" debug\n"))
	assert.Equal(t, logging.ERROR, ParseLevel("  Error "))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, logging.WARNING)
	t.Cleanup(func() { InitLogger(logging.INFO) })

	Infof("hidden %d", 1)
	Warningf("shown %d", 2)
	Error("boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "WARNING - shown 2")
	assert.Contains(t, out, "ERROR - boom")
}
