// SPDX-License-Identifier: MIT

// Command lvunits converts values between registered units and lists the
// unit catalogue.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/cmd/lvunits/commands"
	"github.com/katalvlaran/lvunits/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
