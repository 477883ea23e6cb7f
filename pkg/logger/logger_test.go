package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanschultz/medcase-visualizer/pkg/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medcase.log")
	log, err := New(config.LogConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Info("mesh not found for organ")
	log.Debug("filtered out")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "mesh not found for organ") {
		t.Errorf("log file missing entry: %s", data)
	}
	if strings.Contains(string(data), "filtered out") {
		t.Error("debug entry should be below the configured level")
	}
}

func TestNewDisabled(t *testing.T) {
	log, err := New(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatal(err)
	}
	log.Info("goes nowhere")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Fatal("expected an error for an invalid level")
	}
}
