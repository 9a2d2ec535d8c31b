// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/spf13/cobra"
)

func newPrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix [value [unit]]",
		Short: "Rescale a value with the closest SI prefix, or list the prefixes",
		Example: `  lvunits prefix
  lvunits prefix 123000000
  lvunits prefix 0.0042 A`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return renderTable(cmd, []string{"Prefix", "Symbol", "Factor"}, prefixRows(a))
			}

			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "value %q", args[0])
			}
			symbol := ""
			if len(args) == 2 {
				entries, err := a.reg.Lookup(args[1])
				if err != nil {
					return err
				}
				symbol = entries[0].Unit.PrintName()
			}

			v, p := unit.FindPrefix(x)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n", a.number(v), p, symbol)
			return err
		},
	}
}
