// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package cli

import (
	"fmt"

	"nttt/internal/logger"

	"github.com/spf13/cobra"
)

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered projects (alias: ls)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entries := s.registry.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No hay proyectos registrados.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s - Puerto %d\n", identifierColor.Sprint(e.Name), e.Port)
			}
			return nil
		},
	}
}

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <name>",
		Aliases:           []string{"rm"},
		Short:             "Remove a registered project (alias: rm)",
		Example:           "  nttt remove alpha",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: projectCompletionFunc(s),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name := args[0]
			if err := s.registry.Remove(name); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			logger.Info("project removed", "name", name)
			successColor.Fprintf(cmd.OutOrStdout(), "Eliminado: %s\n", name)
			return nil
		},
	}
}
