package logsvc

import (
	"bytes"
	"io/ioutil"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardlect/cardlect/core"
)

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0))

	l.Debug("dbg")
	l.Info("inf", "extra")
	l.Warn("wrn")
	l.Error("err")

	out := buf.String()
	assert.Contains(t, out, "DEBUG: dbg")
	assert.Contains(t, out, "INFO: inf")
	assert.Contains(t, out, "extra")
	assert.Contains(t, out, "WARN: wrn")
	assert.Contains(t, out, "ERROR: err")

	// disabled logger stays quiet
	buf.Reset()
	l.Enable(false)
	l.Error("silenced")
	assert.Empty(t, buf.String())
}

func TestRollbarLogger_Close(t *testing.T) {
	l := NewRollbarLogger(log.New(ioutil.Discard, "", 0), core.Conf)
	assert.NoError(t, l.Close())
}
