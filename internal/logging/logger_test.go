package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	t.Cleanup(restore)
	SetLevel("info")
	t.Cleanup(func() { SetLevel("info") })
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(l), &m), l)
		out = append(out, m)
	}
	return out
}

func TestOutput_JSONLines(t *testing.T) {
	buf := capture(t)
	fields := Fields{"battle_id": "b1"}
	Info("round resolved", fields)
	Error("save failed", errors.New("disk full"), fields)

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "round resolved", got[0]["msg"])
	assert.Equal(t, "b1", got[0]["battle_id"])
	assert.Equal(t, "disk full", got[1]["error"])
	assert.NotContains(t, got[0], "error")
	assert.Len(t, fields, 1, "caller fields mutated")
}

func TestSetLevel_Filters(t *testing.T) {
	buf := capture(t)
	Debug("hidden", nil)
	SetLevel("warn")
	Info("hidden too", nil)
	Warn("shown", nil)
	SetLevel("nonsense")
	Info("still hidden", nil)

	got := lines(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "warn", got[0]["level"])
}

func TestFatal_Exits(t *testing.T) {
	buf := capture(t)
	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	Fatal("boom", nil, nil)
	assert.Equal(t, 1, code)
	assert.Equal(t, "fatal", lines(t, buf)[0]["level"])
}
