// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/apiclient"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/config"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/logging"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/serializer"
)

type globalFlags struct {
	configPath string
	host       string
	port       int
	userID     string
	jsonOutput bool
}

type commandContext struct {
	flags *globalFlags

	config *config.Config
	client *apiclient.Client
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureClient loads configuration, applies flag overrides and builds the
// client on first use.
func (c *commandContext) ensureClient(cmd *cobra.Command) (*apiclient.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	path := strings.TrimSpace(c.flags.configPath)
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Logging.LoggingConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)

	identity := cfg.Identity()
	if c.flags.userID != "" {
		identity.CurrentUserID = c.flags.userID
	}

	// NewClient adds its own component; the CLI keeps "mburl" for its lines.
	client, err := apiclient.NewClient(logging.Ctx(cmd.Context()), serializer.NewJSON(), identity)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	if c.flags.host != "" || c.flags.port != 0 {
		host, port := client.ServerHost(), client.ServerPort()
		if c.flags.host != "" {
			host = c.flags.host
		}
		if c.flags.port != 0 {
			port = c.flags.port
		}
		client.ChangeServerLocation(host, port)
	}

	cmd.SetContext(logging.ContextWithLogger(cmd.Context(), logging.WithComponent("mburl")))
	logging.Ctx(cmd.Context()).Debug().
		Str("config", path).
		Str("host", client.ServerHost()).
		Int("port", client.ServerPort()).
		Msg("client ready")

	c.config = cfg
	c.client = client
	return client, nil
}

// decodeFile reads a JSON request object from path into v. "-" reads the
// command's stdin.
func (c *commandContext) decodeFile(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path) //nolint:gosec // path comes from the operator
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	if err := c.client.DeserializeFromStream(r, v); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
