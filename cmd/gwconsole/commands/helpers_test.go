package commands

import (
	"path/filepath"
	"testing"

	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
)

// createTestLogFile writes events to a temporary .flog file.
func createTestLogFile(t *testing.T, events []formlog.Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test"+formlog.FileExtension)
	logger, err := formlog.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create log file: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}
	return path
}
