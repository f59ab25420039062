// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
)

const (
	// DefaultServerPort is used when Identity.ServerPort is zero.
	DefaultServerPort = 8096

	// DefaultAPIRoot is used when Identity.APIRoot is empty.
	DefaultAPIRoot = "mediabrowser"
)

// Serializer is the JSON collaborator the client delegates to.
// serializer.JSON implements it.
type Serializer interface {
	SerializeToString(v any) (string, error)
	DeserializeFromStream(r io.Reader, v any) error
}

// Identity is the connection identity a Client is created with.
type Identity struct {
	// ServerHost is required.
	ServerHost string
	ServerPort int
	APIRoot    string

	ClientName         string
	DeviceName         string
	DeviceID           string
	ApplicationVersion string
	CurrentUserID      string

	// ImageQuality is the default quality for image URLs whose options
	// leave Quality unset.
	ImageQuality optional.Value[int]
}

// LocationObserver is notified after the server host/port changes.
type LocationObserver interface {
	ServerLocationChanged(c *Client)
}

// LocationObserverFunc adapts a function to LocationObserver.
type LocationObserverFunc func(c *Client)

// ServerLocationChanged calls f(c).
func (f LocationObserverFunc) ServerLocationChanged(c *Client) { f(c) }

// AuthRefresher is told when the current user changes so it can rebuild
// cached authorization state, typically from c.AuthorizationParameter().
type AuthRefresher interface {
	AuthorizationChanged(c *Client)
}

// AuthRefresherFunc adapts a function to AuthRefresher.
type AuthRefresherFunc func(c *Client)

// AuthorizationChanged calls f(c).
func (f AuthRefresherFunc) AuthorizationChanged(c *Client) { f(c) }

type noopAuthRefresher struct{}

func (noopAuthRefresher) AuthorizationChanged(*Client) {}

// Option configures a Client at construction.
type Option func(*Client)

// WithAuthRefresher installs r as the authorization-changed hook.
func WithAuthRefresher(r AuthRefresher) Option {
	return func(c *Client) {
		if r != nil {
			c.authRefresher = r
		}
	}
}

// WithLocationObserver registers o before the client is returned.
func WithLocationObserver(o LocationObserver) Option {
	return func(c *Client) {
		c.AddLocationObserver(o)
	}
}

type observerEntry struct {
	id       int
	observer LocationObserver
}

// Client builds URLs for the media server REST API.
//
// URL builders only read identity state, so they may be called
// concurrently. The setters (ChangeServerLocation, SetCurrentUserID,
// SetImageQuality, AddLocationObserver) are not synchronized; callers that
// mutate identity while other goroutines build URLs must coordinate.
type Client struct {
	logger     zerolog.Logger
	serializer Serializer

	serverHost string
	serverPort int
	apiRoot    string

	clientName         string
	deviceName         string
	deviceID           string
	applicationVersion string
	currentUserID      string
	imageQuality       optional.Value[int]

	authRefresher  AuthRefresher
	observers      []observerEntry
	nextObserverID int
}

// NewClient creates a Client.
//
// Parameters:
//   - logger: required; a component field is added
//   - serializer: required JSON collaborator
//   - identity: ServerHost is required; ServerPort and APIRoot default to
//     DefaultServerPort and DefaultAPIRoot
func NewClient(logger *zerolog.Logger, serializer Serializer, identity Identity, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, invalidArgument("logger")
	}
	if serializer == nil {
		return nil, invalidArgument("serializer")
	}
	if identity.ServerHost == "" {
		return nil, invalidArgument("server host name")
	}
	if q, ok := identity.ImageQuality.Get(); ok && (q < 0 || q > 100) {
		return nil, fmt.Errorf("%w: image quality %d outside 0-100", ErrInvalidArgument, q)
	}

	port := identity.ServerPort
	if port == 0 {
		port = DefaultServerPort
	}
	apiRoot := strings.Trim(identity.APIRoot, "/")
	if apiRoot == "" {
		apiRoot = DefaultAPIRoot
	}

	c := &Client{
		logger:             logger.With().Str("component", "apiclient").Logger(),
		serializer:         serializer,
		serverHost:         identity.ServerHost,
		serverPort:         port,
		apiRoot:            apiRoot,
		clientName:         identity.ClientName,
		deviceName:         identity.DeviceName,
		deviceID:           identity.DeviceID,
		applicationVersion: identity.ApplicationVersion,
		currentUserID:      identity.CurrentUserID,
		imageQuality:       identity.ImageQuality,
		authRefresher:      noopAuthRefresher{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug().
		Str("server", c.APIURL()).
		Str("client", c.clientName).
		Str("device_id", c.deviceID).
		Msg("API client created")

	return c, nil
}

// ServerHost returns the current server host name.
func (c *Client) ServerHost() string { return c.serverHost }

// ServerPort returns the current server port.
func (c *Client) ServerPort() int { return c.serverPort }

// APIRoot returns the API root path segment.
func (c *Client) APIRoot() string { return c.apiRoot }

// ClientName returns the client application name.
func (c *Client) ClientName() string { return c.clientName }

// DeviceName returns the device name.
func (c *Client) DeviceName() string { return c.deviceName }

// DeviceID returns the device id.
func (c *Client) DeviceID() string { return c.deviceID }

// ApplicationVersion returns the client application version.
func (c *Client) ApplicationVersion() string { return c.applicationVersion }

// CurrentUserID returns the id of the signed-in user, or "".
func (c *Client) CurrentUserID() string { return c.currentUserID }

// ImageQuality returns the default image quality.
func (c *Client) ImageQuality() optional.Value[int] { return c.imageQuality }

// SetImageQuality replaces the default image quality. Values outside 0-100
// are rejected.
func (c *Client) SetImageQuality(q optional.Value[int]) error {
	if v, ok := q.Get(); ok && (v < 0 || v > 100) {
		return fmt.Errorf("%w: image quality %d outside 0-100", ErrInvalidArgument, v)
	}
	c.imageQuality = q
	return nil
}

// SetCurrentUserID stores the signed-in user and invokes the auth refresher.
func (c *Client) SetCurrentUserID(userID string) {
	c.currentUserID = userID
	metrics.RecordCurrentUserChange()
	c.logger.Debug().Str("user_id", userID).Msg("Current user changed")
	c.authRefresher.AuthorizationChanged(c)
}

// ChangeServerLocation updates host and port together, then notifies the
// registered observers synchronously in registration order.
func (c *Client) ChangeServerLocation(host string, port int) {
	c.serverHost = host
	c.serverPort = port

	metrics.RecordServerLocationChange()
	c.logger.Debug().Str("host", host).Int("port", port).Msg("Server location changed")

	// Snapshot so observers may add or remove observers while being notified.
	observers := make([]observerEntry, len(c.observers))
	copy(observers, c.observers)
	for _, e := range observers {
		e.observer.ServerLocationChanged(c)
	}
}

// AddLocationObserver registers o and returns a function that removes it.
// The remove function is idempotent. A nil observer is ignored.
func (c *Client) AddLocationObserver(o LocationObserver) (remove func()) {
	if o == nil {
		return func() {}
	}

	id := c.nextObserverID
	c.nextObserverID++
	c.observers = append(c.observers, observerEntry{id: id, observer: o})

	return func() {
		for i, e := range c.observers {
			if e.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// APIURL returns http://{host}:{port}/{apiRoot}.
func (c *Client) APIURL() string {
	return "http://" + c.serverHost + ":" + strconv.Itoa(c.serverPort) + "/" + c.apiRoot
}

// AuthorizationParameter returns the value for the MediaBrowser
// authorization header:
//
//	Client="<name>", DeviceId="<id>", Device="<device>", Version="<ver>"[, UserId="<id>"]
//
// It is empty when client name, device id and device name are all empty.
func (c *Client) AuthorizationParameter() string {
	if c.clientName == "" && c.deviceID == "" && c.deviceName == "" {
		return ""
	}

	// Values are written verbatim between the quotes, no escaping.
	header := fmt.Sprintf(`Client="%s", DeviceId="%s", Device="%s", Version="%s"`,
		c.clientName, c.deviceID, c.deviceName, c.applicationVersion)

	if c.currentUserID != "" {
		header += fmt.Sprintf(`, UserId="%s"`, c.currentUserID)
	}

	return header
}
