package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

const (
	// AppDirectoryName is the per-user application data directory name.
	AppDirectoryName = "campus-chat"
	// DefaultCampus is used when no campus has been chosen yet.
	DefaultCampus = "hku_main"
	// configFileName is the persisted profile file.
	configFileName = "config.json"
)

// Profile contains the persistent local-user settings.
type Profile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	Campus      string `json:"campus"`
}

// ResolveDataDir returns the OS-aware app data directory.
//
// If CAMPUS_CHAT_DATA_DIR is set, its value is used as an explicit override.
func ResolveDataDir() (string, error) {
	if override := os.Getenv("CAMPUS_CHAT_DATA_DIR"); override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(base, AppDirectoryName), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", AppDirectoryName), nil
	default:
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			base = filepath.Join(home, ".config")
		}
		return filepath.Join(base, AppDirectoryName), nil
	}
}

// ConfigPath returns the full path to config.json for a data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, configFileName)
}

// EnsureDataDirectories creates the app data directory layout if needed.
func EnsureDataDirectories(dataDir string) error {
	dirs := []string{
		dataDir,
		filepath.Join(dataDir, "media"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	return nil
}

// Load reads and unmarshals config.json from disk.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &profile, nil
}

// Save marshals and writes config.json to disk.
func Save(path string, profile *Profile) error {
	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// LoadOrCreate ensures directories and config exist, then returns both.
func LoadOrCreate() (*Profile, string, error) {
	dataDir, err := ResolveDataDir()
	if err != nil {
		return nil, "", err
	}
	if err := EnsureDataDirectories(dataDir); err != nil {
		return nil, "", err
	}

	cfgPath := ConfigPath(dataDir)
	profile, err := Load(cfgPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}

		profile = defaultProfile()
		if err := Save(cfgPath, profile); err != nil {
			return nil, "", err
		}

		return profile, cfgPath, nil
	}

	if normalizeDefaults(profile) {
		if err := Save(cfgPath, profile); err != nil {
			return nil, "", err
		}
	}

	return profile, cfgPath, nil
}

func defaultProfile() *Profile {
	displayName := "Campus User"
	if host, err := os.Hostname(); err == nil && host != "" {
		displayName = host
	}

	return &Profile{
		UserID:      uuid.NewString(),
		DisplayName: displayName,
		Username:    "campususer",
		Campus:      DefaultCampus,
	}
}

func normalizeDefaults(profile *Profile) bool {
	updated := false

	if profile.UserID == "" {
		profile.UserID = uuid.NewString()
		updated = true
	}

	if profile.DisplayName == "" {
		displayName := "Campus User"
		if host, err := os.Hostname(); err == nil && host != "" {
			displayName = host
		}
		profile.DisplayName = displayName
		updated = true
	}

	if profile.Username == "" {
		profile.Username = "campususer"
		updated = true
	}

	if profile.Campus == "" {
		profile.Campus = DefaultCampus
		updated = true
	}

	return updated
}
