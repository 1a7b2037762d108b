package gxmonitor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "monitor.log")
	log, err := NewLogger(LogConfig{Level: "warn", Format: "json", Outputs: []string{path}})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info("hidden")
	log.Warn("visible")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if strings.Contains(s, "hidden") {
		t.Errorf("info entry written at warn level: %s", s)
	}
	if !strings.Contains(s, `"msg":"visible"`) {
		t.Errorf("warn entry missing: %s", s)
	}
}

func TestNewLoggerRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotated.log")
	log, err := NewLogger(LogConfig{
		Level:    "debug",
		Outputs:  []string{path},
		Rotation: RotationConfig{Enable: true, MaxSizeMB: 1},
	})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug("rotating")
	_ = log.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "rotating") {
		t.Errorf("log file = %q", data)
	}
}
