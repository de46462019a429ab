// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package cli

import (
	"nttt/cmd/tui"
	"nttt/internal/logger"
	"nttt/internal/ui"

	"github.com/spf13/cobra"
)

func newStartCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Browse registered projects in the terminal",
		Long: `Opens a full-screen list of registered projects.

Keys: up/down move the selection (wrapping at both ends), d deletes the
highlighted project, esc exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			logger.Info("starting project browser", "projects", s.registry.Len(), "ephemeral", s.store == nil)
			err := tui.RunTUI(s.registry, ui.Options{
				Saver:        s.saver(),
				PollInterval: s.cfg.PollInterval(),
			})
			if err != nil {
				logger.Error("project browser failed", "error", err)
				return err
			}
			return nil
		},
	}
}
