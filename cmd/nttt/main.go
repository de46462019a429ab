// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package main

import "nttt/cmd/cli"

func main() {
	cli.RunCLI()
}
