// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package config

import (
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/apiclient"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/logging"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
)

// Config holds the client configuration loaded from defaults, an optional
// YAML file and environment variables (highest priority wins).
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	logging.Init(cfg.Logging.LoggingConfig())
//	client, err := apiclient.NewClient(&logger, serializer.NewJSON(), cfg.Identity())
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Client  ClientConfig  `koanf:"client"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig locates the media server.
type ServerConfig struct {
	// Host is the server host name or address. Required.
	Host string `koanf:"host" validate:"required"`

	// Port is the server HTTP port.
	// Default: 8096
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// APIRoot is the first path segment of every API URL.
	// Default: mediabrowser
	APIRoot string `koanf:"api_root" validate:"required"`
}

// ClientConfig identifies this client to the server.
type ClientConfig struct {
	Name       string `koanf:"name"`
	DeviceName string `koanf:"device_name"`

	// DeviceID is generated (UUID) when left empty.
	DeviceID string `koanf:"device_id"`

	Version string `koanf:"version"`
	UserID  string `koanf:"user_id"`

	// ImageQuality is the default JPEG quality for image URLs; 0 leaves it
	// to the server.
	ImageQuality int `koanf:"image_quality" validate:"min=0,max=100"`
}

// LoggingConfig controls the global zerolog logger.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller adds file:line to log entries.
	Caller bool `koanf:"caller"`
}

// LoggingConfig converts to the logging package's configuration.
func (l LoggingConfig) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if l.Level != "" {
		cfg.Level = l.Level
	}
	if l.Format != "" {
		cfg.Format = l.Format
	}
	cfg.Caller = l.Caller
	return cfg
}

// Identity maps the configuration onto the client's identity.
func (c *Config) Identity() apiclient.Identity {
	id := apiclient.Identity{
		ServerHost:         c.Server.Host,
		ServerPort:         c.Server.Port,
		APIRoot:            c.Server.APIRoot,
		ClientName:         c.Client.Name,
		DeviceName:         c.Client.DeviceName,
		DeviceID:           c.Client.DeviceID,
		ApplicationVersion: c.Client.Version,
		CurrentUserID:      c.Client.UserID,
	}
	if c.Client.ImageQuality > 0 {
		id.ImageQuality = optional.Some(c.Client.ImageQuality)
	}
	return id
}
