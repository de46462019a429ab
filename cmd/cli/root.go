// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package cli

import (
	"fmt"
	"os"

	"nttt/internal/config"
	"nttt/internal/logger"
	"nttt/internal/registry"
	"nttt/internal/store"
	"nttt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

// session is the state shared by one invocation's commands: the registry
// and, unless running ephemeral, the file it is saved to.
type session struct {
	cfg       config.Config
	registry  *registry.Registry
	store     *store.File
	ephemeral bool
	stateFile string
	loaded    bool
}

// load reads config and saved projects once per invocation.
func (s *session) load(cmd *cobra.Command) error {
	if s.loaded {
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	s.cfg = cfg

	if !cmd.Flags().Changed("ephemeral") {
		s.ephemeral = cfg.Ephemeral
	}
	if s.ephemeral {
		if s.stateFile != "" {
			logger.Warn("state file ignored in ephemeral mode", "file", s.stateFile)
		}
		logger.Debug("running ephemeral, projects will not be saved")
		s.loaded = true
		return nil
	}

	path := s.stateFile
	if path == "" {
		path, err = cfg.ResolvedStateFile()
		if err != nil {
			return err
		}
	} else if path, err = config.ResolvePath(path); err != nil {
		return err
	}

	s.store = store.NewFile(path)
	if err := s.store.LoadInto(s.registry); err != nil {
		return err
	}
	logger.Debug("projects loaded", "file", path, "count", s.registry.Len())
	s.loaded = true
	return nil
}

// save persists the registry unless the session is ephemeral.
func (s *session) save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveFrom(s.registry); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

// saver returns the store as a ui.Saver, or a nil interface when ephemeral.
func (s *session) saver() ui.Saver {
	if s.store == nil {
		return nil
	}
	return s.store
}

func newRootCmd() *cobra.Command {
	s := &session{registry: registry.New()}

	rootCmd := &cobra.Command{
		Use:     "nttt",
		Short:   "Register projects and their ports",
		Version: "0.1",
		Long: `Registers named projects with the port they use and lets you browse
and delete them in a terminal list.

Projects are saved to ~/.local/share/nttt/projects.yaml (or $XDG_DATA_HOME)
unless --ephemeral is given, in which case each invocation starts empty.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLogger(cmd.Name() == "start")
			return s.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			logger.Close()
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&s.ephemeral, "ephemeral", false, "keep projects in memory for this invocation only")
	rootCmd.PersistentFlags().StringVar(&s.stateFile, "state-file", "", "path of the projects file (overrides config)")

	rootCmd.AddCommand(newRegisterCmd(s))
	rootCmd.AddCommand(newStartCmd(s))
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newRemoveCmd(s))
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func RunCLI() {
	err := newRootCmd().Execute()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}
