// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/serializer"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()
	json := serializer.NewJSON()

	tests := []struct {
		name       string
		logger     *zerolog.Logger
		serializer Serializer
		identity   Identity
		wantErr    bool
		wantAPIURL string
	}{
		{
			name:       "explicit port and root",
			logger:     &logger,
			serializer: json,
			identity:   Identity{ServerHost: "10.0.0.5", ServerPort: 8920, APIRoot: "emby"},
			wantAPIURL: "http://10.0.0.5:8920/emby",
		},
		{
			name:       "defaults",
			logger:     &logger,
			serializer: json,
			identity:   Identity{ServerHost: "media.local"},
			wantAPIURL: "http://media.local:8096/mediabrowser",
		},
		{
			name:       "root slashes trimmed",
			logger:     &logger,
			serializer: json,
			identity:   Identity{ServerHost: "media.local", APIRoot: "/emby/"},
			wantAPIURL: "http://media.local:8096/emby",
		},
		{
			name:       "missing host",
			logger:     &logger,
			serializer: json,
			identity:   Identity{},
			wantErr:    true,
		},
		{
			name:       "nil logger",
			serializer: json,
			identity:   Identity{ServerHost: "media.local"},
			wantErr:    true,
		},
		{
			name:     "nil serializer",
			logger:   &logger,
			identity: Identity{ServerHost: "media.local"},
			wantErr:  true,
		},
		{
			name:       "quality out of range",
			logger:     &logger,
			serializer: json,
			identity:   Identity{ServerHost: "media.local", ImageQuality: optional.Some(120)},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.logger, tt.serializer, tt.identity)
			if tt.wantErr {
				checkInvalidArgument(t, err)
				if c != nil {
					t.Error("client should be nil on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			checkStringEqual(t, "APIURL", c.APIURL(), tt.wantAPIURL)
		})
	}
}

func TestClientAccessors(t *testing.T) {
	c := newTestClient(t)

	checkStringEqual(t, "ServerHost", c.ServerHost(), "media.local")
	checkStringEqual(t, "ClientName", c.ClientName(), "Dashboard")
	checkStringEqual(t, "DeviceName", c.DeviceName(), "kitchen")
	checkStringEqual(t, "DeviceID", c.DeviceID(), "dev-1")
	checkStringEqual(t, "ApplicationVersion", c.ApplicationVersion(), "1.0.0")
	checkStringEqual(t, "APIRoot", c.APIRoot(), DefaultAPIRoot)
	if c.ServerPort() != 8096 {
		t.Errorf("ServerPort: expected 8096, got %d", c.ServerPort())
	}
	if c.ImageQuality().IsSome() {
		t.Error("ImageQuality should be None")
	}
}

func TestSetImageQuality(t *testing.T) {
	c := newTestClient(t)

	if err := c.SetImageQuality(optional.Some(85)); err != nil {
		t.Fatalf("SetImageQuality(85): %v", err)
	}
	if got := c.ImageQuality().OrElse(0); got != 85 {
		t.Errorf("ImageQuality: expected 85, got %d", got)
	}

	checkInvalidArgument(t, c.SetImageQuality(optional.Some(-1)))
	if got := c.ImageQuality().OrElse(0); got != 85 {
		t.Errorf("rejected value must not be stored, got %d", got)
	}

	if err := c.SetImageQuality(optional.None[int]()); err != nil {
		t.Fatalf("SetImageQuality(None): %v", err)
	}
	if c.ImageQuality().IsSome() {
		t.Error("ImageQuality should be None after reset")
	}
}

func TestChangeServerLocation(t *testing.T) {
	c := newTestClient(t)

	var order []string
	var seenHost string
	var seenPort int

	c.AddLocationObserver(LocationObserverFunc(func(c *Client) {
		order = append(order, "first")
		seenHost, seenPort = c.ServerHost(), c.ServerPort()
	}))
	c.AddLocationObserver(LocationObserverFunc(func(*Client) {
		order = append(order, "second")
	}))

	before := testutil.ToFloat64(metrics.ServerLocationChanges)
	c.ChangeServerLocation("backup.local", 9000)

	checkStringEqual(t, "APIURL", c.APIURL(), "http://backup.local:9000/mediabrowser")
	checkStringEqual(t, "observer host", seenHost, "backup.local")
	if seenPort != 9000 {
		t.Errorf("observer port: expected 9000, got %d", seenPort)
	}
	if strings.Join(order, ",") != "first,second" {
		t.Errorf("observers must run in registration order, got %v", order)
	}
	if got := testutil.ToFloat64(metrics.ServerLocationChanges) - before; got != 1 {
		t.Errorf("ServerLocationChanges: expected +1, got +%v", got)
	}
}

func TestAddLocationObserverRemove(t *testing.T) {
	c := newTestClient(t)

	calls := 0
	remove := c.AddLocationObserver(LocationObserverFunc(func(*Client) { calls++ }))

	c.ChangeServerLocation("a.local", 1)
	remove()
	remove()
	c.ChangeServerLocation("b.local", 2)

	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}

	// nil observers are ignored and still return a usable remover
	c.AddLocationObserver(nil)()
	c.ChangeServerLocation("c.local", 3)
}

func TestObserverRemovingItselfDuringNotification(t *testing.T) {
	c := newTestClient(t)

	var remove func()
	calls := 0
	remove = c.AddLocationObserver(LocationObserverFunc(func(*Client) {
		calls++
		remove()
	}))
	other := 0
	c.AddLocationObserver(LocationObserverFunc(func(*Client) { other++ }))

	c.ChangeServerLocation("a.local", 1)
	c.ChangeServerLocation("b.local", 2)

	if calls != 1 {
		t.Errorf("self-removing observer: expected 1 call, got %d", calls)
	}
	if other != 2 {
		t.Errorf("other observer: expected 2 calls, got %d", other)
	}
}

func TestWithLocationObserver(t *testing.T) {
	calls := 0
	c := newTestClient(t, WithLocationObserver(LocationObserverFunc(func(*Client) { calls++ })))

	c.ChangeServerLocation("a.local", 1)
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestSetCurrentUserIDInvokesAuthRefresher(t *testing.T) {
	var headers []string
	c := newTestClient(t, WithAuthRefresher(AuthRefresherFunc(func(c *Client) {
		headers = append(headers, c.AuthorizationParameter())
	})))

	c.SetCurrentUserID("user-7")
	c.SetCurrentUserID("")

	if len(headers) != 2 {
		t.Fatalf("expected 2 refreshes, got %d", len(headers))
	}
	if !strings.HasSuffix(headers[0], `, UserId="user-7"`) {
		t.Errorf("refresh must observe the new user, got %q", headers[0])
	}
	if strings.Contains(headers[1], "UserId") {
		t.Errorf("cleared user must drop UserId, got %q", headers[1])
	}
	checkStringEqual(t, "CurrentUserID", c.CurrentUserID(), "")
}

func TestSetCurrentUserIDWithoutRefresher(t *testing.T) {
	c := newTestClient(t, WithAuthRefresher(nil))
	c.SetCurrentUserID("user-1")
	checkStringEqual(t, "CurrentUserID", c.CurrentUserID(), "user-1")
}

func TestAuthorizationParameter(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		identity Identity
		want     string
	}{
		{
			name:     "full identity",
			identity: testIdentity(),
			want:     `Client="Dashboard", DeviceId="dev-1", Device="kitchen", Version="1.0.0"`,
		},
		{
			name: "with user",
			identity: Identity{
				ServerHost: "h", ClientName: "C", DeviceID: "D", DeviceName: "N",
				ApplicationVersion: "2", CurrentUserID: "U",
			},
			want: `Client="C", DeviceId="D", Device="N", Version="2", UserId="U"`,
		},
		{
			name:     "no identity fields",
			identity: Identity{ServerHost: "h", ApplicationVersion: "1.0.0", CurrentUserID: "U"},
			want:     "",
		},
		{
			name:     "device id only",
			identity: Identity{ServerHost: "h", DeviceID: "D"},
			want:     `Client="", DeviceId="D", Device="", Version=""`,
		},
		{
			name: "values are not escaped",
			identity: Identity{
				ServerHost: "h", ClientName: `My "App"`, DeviceID: `C:\dev`, DeviceName: "N",
				ApplicationVersion: "1", CurrentUserID: `u\1`,
			},
			want: `Client="My "App"", DeviceId="C:\dev", Device="N", Version="1", UserId="u\1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(&logger, serializer.NewJSON(), tt.identity)
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			checkStringEqual(t, "AuthorizationParameter", c.AuthorizationParameter(), tt.want)
		})
	}
}

func TestClientLogsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	c, err := NewClient(&logger, serializer.NewJSON(), testIdentity())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.BuildURL(""); err == nil {
		t.Fatal("expected error for empty handler")
	}

	out := buf.String()
	if !strings.Contains(out, `"component":"apiclient"`) {
		t.Errorf("log output missing component field: %s", out)
	}
	if !strings.Contains(out, `"operation":"BuildURL"`) {
		t.Errorf("log output missing rejected operation: %s", out)
	}
}

func TestErrorSentinels(t *testing.T) {
	if !errors.Is(ErrUnsupportedImageType, ErrInvalidArgument) {
		t.Error("ErrUnsupportedImageType must wrap ErrInvalidArgument")
	}
	checkStringEqual(t, "error kind", metrics.ErrorKind(invalidArgument("x")), metrics.ErrorKindInvalidArgument)
	checkStringEqual(t, "error kind", metrics.ErrorKind(ErrUnsupportedImageType), metrics.ErrorKindUnsupportedImage)
}
