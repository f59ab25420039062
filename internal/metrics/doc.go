// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

/*
Package metrics provides Prometheus instrumentation for the API client.

Metrics are registered on the default registry through promauto, so any
process embedding the client exposes them alongside its own.

# Available Metrics

URL Metrics:
  - mbclient_urls_built_total: URLs successfully built (counter)
    Labels: family (api, items, images, streams)
  - mbclient_url_build_errors_total: rejected build requests (counter)
    Labels: family, error_kind (invalid_argument, unsupported_image_type, other)
  - mbclient_images_unavailable_total: image lookups with no owning item (counter)
    Labels: image_type

Identity Metrics:
  - mbclient_server_location_changes_total: host/port changes (counter)
  - mbclient_current_user_changes_total: current user changes (counter)

# Usage

	metrics.RecordURLBuild(metrics.FamilyImages, err)
	metrics.RecordImageUnavailable("Logo")
*/
package metrics
