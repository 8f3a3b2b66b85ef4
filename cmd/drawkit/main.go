// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/drawkit/cmd/drawkit/cli"
)

func main() {
	if err := cli.Command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "drawkit failed: %v\n", err)
		os.Exit(1)
	}
}
