// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"nttt/internal/config"
	"nttt/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// dimColor is used for less important/secondary text in the CLI output
var dimColor = color.New(color.Faint)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage nttt configuration",
		Long: `Provides subcommands to inspect and change the nttt configuration file
(~/.config/nttt/config.yaml).`,
		// Config commands must work even when the projects file is unreadable.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger(false)
			return nil
		},
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigSetStateFileCmd())
	configCmd.AddCommand(newConfigSetEphemeralCmd())
	configCmd.AddCommand(newConfigSetPollIntervalCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
			stateFile, err := cfg.ResolvedStateFile()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			statusColor.Fprintf(out, "Config file: %s\n", configPath)
			fmt.Fprintf(out, "State file:    %s", stateFile)
			if cfg.StateFile == "" {
				dimColor.Fprint(out, " (default)")
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Ephemeral:     %t\n", cfg.Ephemeral)
			fmt.Fprintf(out, "Poll interval: %s\n", cfg.PollInterval())
			return nil
		},
	}
}

// updateConfig loads the config, applies change and saves it back.
func updateConfig(change func(*config.Config)) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	change(&cfg)
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}
	return nil
}

func newConfigSetStateFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-state-file <path>",
		Short: "Set where registered projects are saved",
		Long: `Sets the file registered projects are saved to.
Use an absolute path or a path starting with '~/'.
To revert to the default location, set the path to an empty string: nttt config set-state-file ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := args[0]
			if path != "" && !strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "~/") {
				return fmt.Errorf("path must be absolute or start with '~/'")
			}
			if err := updateConfig(func(c *config.Config) { c.StateFile = path }); err != nil {
				return err
			}
			if path == "" {
				successColor.Fprintln(cmd.OutOrStdout(), "State file reset to the default location.")
			} else {
				successColor.Fprintf(cmd.OutOrStdout(), "State file set to: %s\n", path)
			}
			return nil
		},
	}
}

func newConfigSetEphemeralCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set-ephemeral <true|false>",
		Short:     "Choose whether projects are kept in memory only",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ephemeral, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: expected true or false", args[0])
			}
			if err := updateConfig(func(c *config.Config) { c.Ephemeral = ephemeral }); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "Ephemeral mode set to: %t\n", ephemeral)
			return nil
		},
	}
}

func newConfigSetPollIntervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-poll-interval <milliseconds>",
		Short:   "Set how often the browser re-reads projects",
		Example: "  nttt config set-poll-interval 250",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ms, err := strconv.Atoi(args[0])
			if err != nil || ms <= 0 {
				return fmt.Errorf("invalid interval %q: expected a positive number of milliseconds", args[0])
			}
			if err := updateConfig(func(c *config.Config) { c.PollIntervalMs = ms }); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "Poll interval set to: %dms\n", ms)
			return nil
		},
	}
}
