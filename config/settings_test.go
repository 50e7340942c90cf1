package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uranium.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	defer Set(Default())

	path := writeSettings(t, "min_scale: 0.05\nhistory_limit: 5\n")
	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	s := Get()
	if s.MinScale != 0.05 {
		t.Errorf("MinScale = %v; expected 0.05", s.MinScale)
	}
	if s.HistoryLimit != 5 {
		t.Errorf("HistoryLimit = %d; expected 5", s.HistoryLimit)
	}
	// Untouched fields keep their defaults.
	if s.SnapPrecision != Default().SnapPrecision {
		t.Errorf("SnapPrecision = %d; expected default", s.SnapPrecision)
	}
	if s.Listen != Default().Listen {
		t.Errorf("Listen = %q; expected default", s.Listen)
	}
}

func TestLoadRejectsBadMinScale(t *testing.T) {
	defer Set(Default())

	path := writeSettings(t, "min_scale: -1\n")
	if err := Load(path); err == nil {
		t.Error("expected error for negative min_scale")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(os.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
