// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package registry

// Direction is a cursor movement through the enumerated entries.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// NextIndex moves current one step in dir, wrapping at both ends.
// It reports false when length is zero, meaning there is no selection.
// A current outside [0, length) is clamped first.
func NextIndex(current, length int, dir Direction) (int, bool) {
	current, ok := Clamp(current, length)
	if !ok {
		return 0, false
	}
	switch dir {
	case DirectionDown:
		return (current + 1) % length, true
	case DirectionUp:
		if current == 0 {
			return length - 1, true
		}
		return current - 1, true
	}
	return current, true
}

// Clamp forces current into [0, length-1]. It reports false when length is
// zero.
func Clamp(current, length int) (int, bool) {
	if length <= 0 {
		return 0, false
	}
	if current < 0 {
		return 0, true
	}
	if current >= length {
		return length - 1, true
	}
	return current, true
}
