// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/apiclient"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Host != "" {
		t.Errorf("Server.Host should be empty by default, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 8096 {
		t.Errorf("Server.Port = %d, want 8096", cfg.Server.Port)
	}
	if cfg.Server.APIRoot != "mediabrowser" {
		t.Errorf("Server.APIRoot = %q, want mediabrowser", cfg.Server.APIRoot)
	}
	if cfg.Client.ImageQuality != 0 {
		t.Errorf("Client.ImageQuality = %d, want 0", cfg.Client.ImageQuality)
	}
	if cfg.Client.DeviceName == "" {
		t.Error("Client.DeviceName should default to the host name")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for env := range envMappings {
		t.Setenv(strings.ToUpper(env), "")
		os.Unsetenv(strings.ToUpper(env))
	}
	t.Setenv(ConfigPathEnvVar, "")
}

func TestLoadFile_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("MB_SERVER_HOST", "media.local")
	t.Setenv("MB_SERVER_PORT", "8920")
	t.Setenv("MB_CLIENT_NAME", "Dashboard")
	t.Setenv("MB_DEVICE_ID", "dev-1")
	t.Setenv("MB_IMAGE_QUALITY", "85")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Host != "media.local" {
		t.Errorf("Server.Host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 8920 {
		t.Errorf("Server.Port = %d, want 8920", cfg.Server.Port)
	}
	if cfg.Server.APIRoot != "mediabrowser" {
		t.Errorf("Server.APIRoot = %q, want default", cfg.Server.APIRoot)
	}
	if cfg.Client.Name != "Dashboard" || cfg.Client.DeviceID != "dev-1" {
		t.Errorf("Client = %+v", cfg.Client)
	}
	if cfg.Client.ImageQuality != 85 {
		t.Errorf("Client.ImageQuality = %d, want 85", cfg.Client.ImageQuality)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFile_YAMLThenEnvOverride(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "mbclient.yaml")
	yamlContent := `
server:
  host: file.local
  port: 8097
  api_root: emby
client:
  name: From File
  device_name: htpc
  user_id: user-from-file
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("MB_SERVER_PORT", "9000")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Host != "file.local" {
		t.Errorf("Server.Host = %q, want file.local", cfg.Server.Host)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("env should override file port, got %d", cfg.Server.Port)
	}
	if cfg.Server.APIRoot != "emby" {
		t.Errorf("Server.APIRoot = %q, want emby", cfg.Server.APIRoot)
	}
	if cfg.Client.UserID != "user-from-file" {
		t.Errorf("Client.UserID = %q", cfg.Client.UserID)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadFile_GeneratesDeviceID(t *testing.T) {
	clearEnv(t)
	t.Setenv("MB_SERVER_HOST", "h")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if _, err := uuid.Parse(cfg.Client.DeviceID); err != nil {
		t.Errorf("DeviceID %q is not a UUID: %v", cfg.Client.DeviceID, err)
	}
}

func TestLoadFile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing host", map[string]string{}, "Host is required"},
		{"port too large", map[string]string{"MB_SERVER_HOST": "h", "MB_SERVER_PORT": "70000"}, "Port must be at most 65535"},
		{"quality too large", map[string]string{"MB_SERVER_HOST": "h", "MB_IMAGE_QUALITY": "101"}, "ImageQuality must be at most 100"},
		{"bad log format", map[string]string{"MB_SERVER_HOST": "h", "LOG_FORMAT": "xml"}, "Format must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadFile("")
			if err == nil {
				t.Fatal("LoadFile() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MB_SERVER_HOST", "h")

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestFindConfigFile_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  host: x\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"MB_SERVER_HOST": "server.host",
		"mb_user_id":     "client.user_id",
		"LOG_CALLER":     "logging.caller",
		"HOME":           "",
		"PATH":           "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfig_Identity(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "h", Port: 8096, APIRoot: "mediabrowser"},
		Client: ClientConfig{
			Name:         "c",
			DeviceName:   "d",
			DeviceID:     "id",
			Version:      "2.0",
			UserID:       "u",
			ImageQuality: 90,
		},
	}

	want := apiclient.Identity{
		ServerHost:         "h",
		ServerPort:         8096,
		APIRoot:            "mediabrowser",
		ClientName:         "c",
		DeviceName:         "d",
		DeviceID:           "id",
		ApplicationVersion: "2.0",
		CurrentUserID:      "u",
	}
	got := cfg.Identity()
	if got.ImageQuality.OrElse(0) != 90 {
		t.Errorf("ImageQuality = %+v, want Some(90)", got.ImageQuality)
	}
	got.ImageQuality = want.ImageQuality
	if got != want {
		t.Errorf("Identity() = %+v, want %+v", got, want)
	}

	cfg.Client.ImageQuality = 0
	if cfg.Identity().ImageQuality.IsSome() {
		t.Error("zero ImageQuality should map to None")
	}
}

func TestLoggingConfig_Conversion(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Caller: true}.LoggingConfig()
	if lc.Level != "warn" || lc.Format != "json" || !lc.Caller {
		t.Errorf("LoggingConfig() = %+v", lc)
	}
}
