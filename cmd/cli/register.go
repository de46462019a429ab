// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"nttt/internal/logger"

	"github.com/spf13/cobra"
)

// parsePort accepts a base-10 port number in [0, 65535], optionally with a
// single leading '+'.
func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: must be an integer between 0 and 65535", s)
	}
	return uint16(port), nil
}

func newRegisterCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "register <name> <port>",
		Short:   "Register a project with a name and a port",
		Long:    `Registers a project, overwriting the port if the name is already registered.`,
		Example: "  nttt register alpha 8080\n  nttt --ephemeral register beta 3000",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return err
			}
			_, err := parsePort(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name := args[0]
			port, err := parsePort(args[1])
			if err != nil {
				return err
			}

			s.registry.Set(name, port)
			if err := s.save(); err != nil {
				return err
			}
			logger.Info("project registered", "name", name, "port", port)

			successColor.Fprintf(cmd.OutOrStdout(), "Registrado: %s en el puerto %d\n", name, port)
			return nil
		},
	}
}
