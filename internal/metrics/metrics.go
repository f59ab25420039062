// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// URL families used as the "family" label.
const (
	FamilyAPI     = "api"
	FamilyItems   = "items"
	FamilyImages  = "images"
	FamilyStreams = "streams"
)

// Error kinds used as the "error_kind" label.
const (
	ErrorKindInvalidArgument  = "invalid_argument"
	ErrorKindUnsupportedImage = "unsupported_image_type"
	ErrorKindOther            = "other"
)

var (
	// URL construction metrics
	URLsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbclient_urls_built_total",
			Help: "Total number of URLs successfully built",
		},
		[]string{"family"},
	)

	URLBuildErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbclient_url_build_errors_total",
			Help: "Total number of rejected URL build requests",
		},
		[]string{"family", "error_kind"},
	)

	ImagesUnavailable = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbclient_images_unavailable_total",
			Help: "Image requests that resolved to no image after walking the fallback chain",
		},
		[]string{"image_type"},
	)

	// Identity metrics
	ServerLocationChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mbclient_server_location_changes_total",
			Help: "Total number of server host/port changes",
		},
	)

	CurrentUserChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mbclient_current_user_changes_total",
			Help: "Total number of current user id changes",
		},
	)
)

type errorKindRule struct {
	target error
	kind   string
}

// errorKinds maps errors to error_kind labels. The apiclient package
// registers its sentinels at init so this package does not import it.
var errorKinds []errorKindRule

// RegisterErrorKind associates errors matching target (errors.Is) with
// kind. Earlier registrations win, so register narrower errors first.
func RegisterErrorKind(target error, kind string) {
	errorKinds = append(errorKinds, errorKindRule{target: target, kind: kind})
}

// ErrorKind classifies err for the error_kind label.
func ErrorKind(err error) string {
	for _, r := range errorKinds {
		if errors.Is(err, r.target) {
			return r.kind
		}
	}
	return ErrorKindOther
}

// RecordURLBuild records the outcome of one builder call.
func RecordURLBuild(family string, err error) {
	if err != nil {
		URLBuildErrors.WithLabelValues(family, ErrorKind(err)).Inc()
		return
	}
	URLsBuilt.WithLabelValues(family).Inc()
}

// RecordImageUnavailable records an image lookup that found nothing.
func RecordImageUnavailable(imageType string) {
	ImagesUnavailable.WithLabelValues(imageType).Inc()
}

// RecordServerLocationChange records a host/port change.
func RecordServerLocationChange() {
	ServerLocationChanges.Inc()
}

// RecordCurrentUserChange records a current user id change.
func RecordCurrentUserChange() {
	CurrentUserChanges.Inc()
}
