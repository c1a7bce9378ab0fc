package logging

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Writing past the size limit must rotate app.log and retain no more than
// the configured number of backups.
func TestRotationBound(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.MaxSizeMB = 1
	cfg.MaxBackups = 1

	svc := NewService()
	svc.Config = &cfg
	svc.ConsoleOut = io.Discard
	require.NoError(t, svc.Initialize())
	t.Cleanup(func() { _ = svc.Close() })

	// ~3 MiB of records forces at least two rotations of a 1 MiB file.
	payload := strings.Repeat("x", 1024)
	for i := 0; i < 3*1024; i++ {
		svc.InfoWith().Str("payload", payload).Msg("fill")
	}

	appFiles := func() int {
		matches, err := filepath.Glob(filepath.Join(dir, "app*"))
		require.NoError(t, err)
		return len(matches)
	}

	// backup cleanup runs asynchronously in lumberjack
	require.Eventually(t, func() bool { return appFiles() == 2 },
		5*time.Second, 50*time.Millisecond,
		"expected app.log plus exactly one retained backup, got %d files", appFiles())
}
