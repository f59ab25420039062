// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

/*
Package config loads the API client's connection identity and logging
settings with Koanf v2.

# Configuration Sources

Sources are layered, highest priority last:
  - Built-in defaults (structs provider)
  - YAML file: $CONFIG_PATH, ./mbclient.yaml, ./mbclient.yml, /etc/mbclient/config.yaml
  - Environment variables

# Environment Variables

Server:
  - MB_SERVER_HOST: server host name (required)
  - MB_SERVER_PORT: server port (default: 8096)
  - MB_API_ROOT: API root path segment (default: mediabrowser)

Client identity:
  - MB_CLIENT_NAME, MB_DEVICE_NAME, MB_DEVICE_ID, MB_CLIENT_VERSION
  - MB_USER_ID: current user id
  - MB_IMAGE_QUALITY: default image quality 1-100 (default: unset)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false

A random UUID device id is generated when none is configured.

# Example YAML

	server:
	  host: media.local
	  port: 8096
	client:
	  name: Living Room
	  device_name: htpc
	  image_quality: 90
	logging:
	  level: debug
*/
package config
