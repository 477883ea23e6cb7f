package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Model.Path != "" {
		t.Errorf("Model.Path = %q", cfg.Model.Path)
	}
	if cfg.Model.EmissiveIntensity != 0.4 {
		t.Errorf("EmissiveIntensity = %f", cfg.Model.EmissiveIntensity)
	}
	if cfg.UI.ToastDuration != 5*time.Second {
		t.Errorf("ToastDuration = %s", cfg.UI.ToastDuration)
	}
	if cfg.Log.File != "medcase.log" || cfg.Log.Level != "info" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 10 {
		t.Errorf("default table has %d mappings", table.Len())
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "medcase.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Model.Path != "./assets/body_model.glb" || cfg.Model.EmissiveIntensity != 0.6 {
		t.Errorf("unexpected model config %+v", cfg.Model)
	}
	if cfg.Case.Title != "Trauma bay" {
		t.Errorf("Case.Title = %q", cfg.Case.Title)
	}
	if cfg.UI.ToastDuration != 3*time.Second {
		t.Errorf("ToastDuration = %s", cfg.UI.ToastDuration)
	}
	if cfg.Log.File != "" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatal(err)
	}
	got := table.Extract("Patient with a Rib Fracture on the left")
	if len(got) != 1 || got[0].OrganName != "05_Chest" || got[0].Description != "Rib Fracture (Chest)" {
		t.Errorf("Extract() = %+v", got)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MEDCASE_UI_TOAST_DURATION", "750ms")
	t.Setenv("MEDCASE_MODEL_PATH", "/srv/models/body.glb")

	cfg, err := Load(filepath.Join("testdata", "medcase.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.ToastDuration != 750*time.Millisecond {
		t.Errorf("ToastDuration = %s", cfg.UI.ToastDuration)
	}
	if cfg.Model.Path != "/srv/models/body.glb" {
		t.Errorf("Model.Path = %q", cfg.Model.Path)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad level",
			content: "log:\n  level: loud\n",
			wantErr: "log.level",
		},
		{
			name:    "zero toast",
			content: "ui:\n  toast_duration: 0s\n",
			wantErr: "toast_duration",
		},
		{
			name:    "bad color",
			content: "mappings:\n  - pattern: cough\n    highlights:\n      - organ_name: 05_Chest\n        color: red\n",
			wantErr: "invalid color",
		},
		{
			name:    "bad pattern",
			content: "mappings:\n  - pattern: \"cough(\"\n    highlights:\n      - organ_name: 05_Chest\n        color: \"#FF0000\"\n",
			wantErr: "compiling term pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "medcase.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}
