// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		quantity string
		auto     bool
	)

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units",
		Long: `Convert a value between two units of the same dimension and kind.

Units are named by symbol (exact case) or long name (any case). When a
symbol belongs to several quantities with different meanings, pick one
with --quantity.`,
		Example: `  lvunits convert 20 °C °F
  lvunits convert 3 km mi
  lvunits convert 5 K °C --quantity TemperatureInterval
  lvunits convert 0.0042 A A --auto`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "value %q", args[0])
			}

			var opts []registry.ConvertOption
			if quantity != "" {
				opts = append(opts, registry.InQuantity(quantity))
			}
			rt, err := a.reg.Route(args[1], args[2], opts...)
			if err != nil {
				return err
			}

			out := unit.Display(registry.Apply(rt, x), rt.To.Unit)
			if auto {
				out = unit.Auto(out.Magnitude, rt.To.Unit)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.number(out.Magnitude), out.Symbol)
			return err
		},
	}

	cmd.Flags().StringVarP(&quantity, "quantity", "q", "", "quantity both units must belong to")
	cmd.Flags().BoolVar(&auto, "auto", false, "rescale the result with an SI prefix")

	return cmd
}
