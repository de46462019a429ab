// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// projectCompletionFunc completes registered project names. Completion runs
// without the root pre-run hook, so saved projects are loaded here.
func projectCompletionFunc(s *session) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := s.load(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var suggestions []string
		for _, e := range s.registry.Entries() {
			if strings.HasPrefix(e.Name, toComplete) {
				suggestions = append(suggestions, e.Name)
			}
		}
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}
}
