// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printResult writes urls one per line, or as a JSON array with --json.
func (c *commandContext) printResult(cmd *cobra.Command, urls ...string) error {
	if c.flags.jsonOutput {
		s, err := c.client.SerializeToString(urls)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	}

	out := cmd.OutOrStdout()
	for _, u := range urls {
		if _, err := fmt.Fprintln(out, u); err != nil {
			return err
		}
	}
	return nil
}

// printURL prints a single builder result. An empty URL means the image
// does not exist and is reported on stderr.
func (c *commandContext) printURL(cmd *cobra.Command, u string, err error) error {
	if err != nil {
		return err
	}
	if u == "" {
		_, werr := fmt.Fprintln(cmd.ErrOrStderr(), "no image available")
		return werr
	}
	return c.printResult(cmd, u)
}
