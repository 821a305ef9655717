package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kataras/golog"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  golog.Level
	}{
		{"", golog.InfoLevel},
		{"debug", golog.DebugLevel},
		{"warn", golog.WarnLevel},
		{"error", golog.ErrorLevel},
		{"disable", golog.DisableLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, closer, err := New(Options{Level: tt.level})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			defer closer.Close()

			if logger.Level != tt.want {
				t.Errorf("Level = %v, want %v", logger.Level, tt.want)
			}
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "imbridge.log")

	logger, closer, err := New(Options{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Child("[test]").Infof("frame loop started fps=%d", 60)
	logger.Debugf("cursor changed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "frame loop started fps=60") {
		t.Errorf("log missing info line:\n%s", out)
	}
	if !strings.Contains(out, "cursor changed") {
		t.Errorf("log missing debug line:\n%s", out)
	}
}

func TestNew_FileLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imbridge.log")

	logger, closer, err := New(Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Infof("hidden")
	logger.Warnf("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn line missing")
	}
}

func TestNew_BadFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := New(Options{File: filepath.Join(blocker, "imbridge.log")}); err == nil {
		t.Error("New should fail when the log directory is a file")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Errorf("dropped")
}
