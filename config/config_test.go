package config

import (
	"path/filepath"
	"testing"
)

func TestLoadOrCreateCreatesAndReloadsProfile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("CAMPUS_CHAT_DATA_DIR", tempDir)

	firstProfile, firstPath, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("first LoadOrCreate failed: %v", err)
	}
	if firstProfile.UserID == "" {
		t.Fatalf("expected non-empty user ID")
	}
	if firstProfile.Campus != DefaultCampus {
		t.Fatalf("expected default campus %q, got %q", DefaultCampus, firstProfile.Campus)
	}
	if firstProfile.Username == "" {
		t.Fatalf("expected non-empty username")
	}

	expectedConfigPath := filepath.Join(tempDir, "config.json")
	if firstPath != expectedConfigPath {
		t.Fatalf("expected config path %q, got %q", expectedConfigPath, firstPath)
	}

	secondProfile, secondPath, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("second LoadOrCreate failed: %v", err)
	}

	if secondPath != firstPath {
		t.Fatalf("expected config path to be stable, got %q then %q", firstPath, secondPath)
	}
	if secondProfile.UserID != firstProfile.UserID {
		t.Fatalf("expected stable user ID, got %q then %q", firstProfile.UserID, secondProfile.UserID)
	}
	if secondProfile.Campus != firstProfile.Campus {
		t.Fatalf("expected stable campus, got %q then %q", firstProfile.Campus, secondProfile.Campus)
	}
}

func TestLoadOrCreateFillsMissingFields(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("CAMPUS_CHAT_DATA_DIR", tempDir)

	cfgPath := filepath.Join(tempDir, "config.json")
	if err := EnsureDataDirectories(tempDir); err != nil {
		t.Fatalf("EnsureDataDirectories failed: %v", err)
	}

	partial := &Profile{
		DisplayName: "Legacy User",
	}
	if err := Save(cfgPath, partial); err != nil {
		t.Fatalf("Save partial config failed: %v", err)
	}

	profile, _, err := LoadOrCreate()
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if profile.UserID == "" {
		t.Fatalf("expected generated user ID for legacy config")
	}
	if profile.DisplayName != "Legacy User" {
		t.Fatalf("expected display name to be retained, got %q", profile.DisplayName)
	}
	if profile.Campus != DefaultCampus {
		t.Fatalf("expected campus to normalize to %q, got %q", DefaultCampus, profile.Campus)
	}
}
