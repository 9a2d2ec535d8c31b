// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/logger"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded quantities, units and kind rules as a catalogue",
		Long: `Write the loaded quantities, units and kind rules as a catalogue that
--catalog can read back. The format defaults to the extension of --output,
or TOML on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}
			cat, err := catalog.FromRegistry(a.reg, a.kinds)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				fh, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "export")
				}
				defer fh.Close()
				w = fh
			}
			if err := catalog.Encode(w, cat, f); err != nil {
				return err
			}
			logger.Logger.Infow("catalogue exported",
				"format", f, "quantities", len(cat.Quantities), "units", len(cat.Units))

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "toml, yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func exportFormat(format, output string) (catalog.Format, error) {
	switch {
	case format != "":
		return catalog.ParseFormat(format)
	case output != "":
		return catalog.FormatOf(output)
	}

	return catalog.TOML, nil
}
