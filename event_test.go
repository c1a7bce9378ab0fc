package logging

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChain(t *testing.T) {
	t.Run("wrapped chain", func(t *testing.T) {
		root := errors.New("disk full")
		mid := fmt.Errorf("flush failed: %w", root)
		outer := fmt.Errorf("commit aborted: %w", mid)

		chain, rootMsg := errorChain(outer)
		require.Equal(t, []string{
			"commit aborted: flush failed: disk full",
			"flush failed: disk full",
			"disk full",
		}, chain)
		assert.Equal(t, "disk full", rootMsg)
	})

	t.Run("single error", func(t *testing.T) {
		chain, rootMsg := errorChain(errors.New("plain"))
		assert.Equal(t, []string{"plain"}, chain)
		assert.Equal(t, "plain", rootMsg)
	})

	t.Run("nil error", func(t *testing.T) {
		chain, rootMsg := errorChain(nil)
		assert.Empty(t, chain)
		assert.Empty(t, rootMsg)
	})

	t.Run("join", func(t *testing.T) {
		assert.Equal(t, "a -> b", joinChain([]string{"a", "b"}))
		assert.Equal(t, "", joinChain(nil))
	})
}

func TestEventErrEnrichment(t *testing.T) {
	svc, dir := newTestService(t, "DEBUG")

	err := fmt.Errorf("handler failed: %w", errors.New("connection reset"))
	svc.ErrorWith().Err(err).Msg("request aborted")

	content := readLog(t, filepath.Join(dir, appLogName))
	assert.Contains(t, content, "request aborted")
	assert.Contains(t, content, "connection reset")
	assert.Contains(t, content, "error_root=")
	assert.Contains(t, content, "error_history=")
}

func TestContextLogger(t *testing.T) {
	svc, dir := newTestService(t, "DEBUG")

	req := svc.With().
		Str("request_id", "req-42").
		Int("attempt", 2).
		Logger()
	req.InfoWith().Msg("handling")

	content := readLog(t, filepath.Join(dir, appLogName))
	assert.Contains(t, content, "handling")
	assert.Contains(t, content, "request_id=req-42")
	assert.Contains(t, content, "attempt=2")
}

func TestEventFieldTypes(t *testing.T) {
	svc, dir := newTestService(t, "DEBUG")

	svc.InfoWith().
		Str("s", "v").
		Strs("ss", []string{"a", "b"}).
		Int("i", -1).
		Int64("i64", 9).
		Uint64("u64", 7).
		Float64("f", 1.5).
		Bool("b", true).
		Dur("d", time.Second).
		Time("ts", time.Unix(0, 0).UTC()).
		Interface("any", map[string]int{"k": 1}).
		Msgf("typed %s", "fields")

	content := readLog(t, filepath.Join(dir, appLogName))
	assert.Contains(t, content, "typed fields")
	assert.Contains(t, content, "s=v")
	assert.Contains(t, content, "i=-1")
	assert.Contains(t, content, "b=true")
}

func TestNoopEventIsSafe(t *testing.T) {
	// disabled level yields a no-op event end to end
	svc, dir := newTestService(t, "ERROR")

	svc.DebugWith().
		Str("k", "v").
		Err(errors.New("ignored")).
		Msg("filtered-out")
	svc.InfoWith().Send()

	content := readLog(t, filepath.Join(dir, appLogName))
	assert.NotContains(t, content, "filtered-out")
}

func TestDump(t *testing.T) {
	svc, dir := newTestService(t, "DEBUG")

	type nested struct {
		Port int
	}
	type cfg struct {
		Name    string
		Server  nested
		Tags    []string
		private int
	}
	svc.Dump(cfg{Name: "demo", Server: nested{Port: 8080}, Tags: []string{"a"}})

	content := readLog(t, filepath.Join(dir, appLogName))
	assert.Contains(t, content, "Struct: cfg")
	assert.Contains(t, content, "Name: demo")
	assert.Contains(t, content, "Server.Port: 8080")
	assert.Contains(t, content, "Tags[0]: a")
}
