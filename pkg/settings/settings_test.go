package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	s := &Settings{}

	if s.Community != "" {
		t.Errorf("Community should be empty, got %q", s.Community)
	}
	if s.Port != 0 {
		t.Errorf("Port should be zero, got %d", s.Port)
	}
	if s.SMTPServer != "" {
		t.Errorf("SMTPServer should be empty, got %q", s.SMTPServer)
	}
}

func TestSettings_Clear(t *testing.T) {
	s := &Settings{
		Community:  "public",
		Port:       1161,
		SMTPServer: "relay.example.com",
		CacheDir:   "/var/cache/duplexcheck",
	}

	s.Clear()

	if s.Community != "" || s.Port != 0 || s.SMTPServer != "" || s.CacheDir != "" {
		t.Error("Clear() should reset all fields to empty")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := &Settings{
		Community:  "netops-ro",
		Port:       161,
		SMTPServer: "relay.example.com",
	}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if *loaded != *s {
		t.Errorf("round trip = %+v, want %+v", loaded, s)
	}
}

func TestSettings_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")

	s := &Settings{Community: "public"}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestLoadFrom_MissingFileReturnsEmpty(t *testing.T) {
	loaded, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadFrom should tolerate a missing file: %v", err)
	}
	if *loaded != (Settings{}) {
		t.Errorf("missing file should load as empty settings, got %+v", loaded)
	}
}

func TestLoadFrom_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for corrupt settings file")
	}
}
