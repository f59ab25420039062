// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"errors"
	"fmt"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/validation"
)

// ErrInvalidArgument is wrapped by every rejection of a missing or empty
// required argument. Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnsupportedImageType is returned by item-based image builders for image
// types that have no tag resolution rule (Screenshot). It wraps
// ErrInvalidArgument.
var ErrUnsupportedImageType = fmt.Errorf("%w: unsupported image type", ErrInvalidArgument)

//nolint:gochecknoinits // metrics labels must know our sentinels before first use
func init() {
	metrics.RegisterErrorKind(ErrUnsupportedImageType, metrics.ErrorKindUnsupportedImage)
	metrics.RegisterErrorKind(ErrInvalidArgument, metrics.ErrorKindInvalidArgument)
}

// invalidArgument names the offending argument.
func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
}

// validateRequest applies the struct's validate tags.
func validateRequest(name string, v interface{}) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, verr)
	}
	return nil
}
