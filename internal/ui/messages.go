// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package ui

import "time"

// tickMsg fires every poll interval so the list is re-read from the registry.
type tickMsg time.Time

// projectsSavedMsg reports the outcome of persisting the registry after a delete.
type projectsSavedMsg struct{ err error }
