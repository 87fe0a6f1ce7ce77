// Copyright 2025 The MyArea Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/johnlhuangP/myArea/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
