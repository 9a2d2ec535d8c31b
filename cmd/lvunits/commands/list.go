// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/si"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// renderTable writes a header row and rows to the command's output.
func renderTable(cmd *cobra.Command, header []string, rows [][]string) error {
	data := append(pterm.TableData{header}, rows...)

	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(cmd.OutOrStdout()).
		WithData(data).
		Render()
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [quantity...]",
		Short: "List units, optionally of the named quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				for _, q := range a.reg.Quantities() {
					names = append(names, q.Name)
				}
			}

			var rows [][]string
			for _, name := range names {
				entries, err := a.reg.Units(name)
				if err != nil {
					return err
				}
				rows = append(rows, unitRows(a, entries)...)
			}

			return renderTable(cmd, []string{"Quantity", "Unit", "Symbol", "Factor", "Offset"}, rows)
		},
	}
}

func unitRows(a *app, entries []registry.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		offset := ""
		if e.Conversion.Offset != 0 {
			offset = a.number(e.Conversion.Offset)
		}
		rows = append(rows, []string{
			e.Quantity, e.Unit.LongName(), e.Unit.PrintName(), a.number(e.Conversion.Factor), offset,
		})
	}

	return rows
}

func newQuantitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quantities",
		Short: "List quantities with their dimension, kind and base unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, q := range a.reg.Quantities() {
				rows = append(rows, []string{
					q.Name, q.Dimension.String(), q.Dimension.BaseUnits(), string(q.Kind), q.BaseUnit.PrintName(), q.Doc,
				})
			}

			return renderTable(cmd, []string{"Quantity", "Dimension", "Base units", "Kind", "Unit", "Description"}, rows)
		},
	}
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List declared kind rules",
		Long:  "List declared kind rules. Built-in rules (Unit, Angle and same-kind division) are not shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, r := range a.kinds.Rules() {
				rows = append(rows, []string{string(r.Left), r.Op.String(), string(r.Right), string(r.Result)})
			}

			return renderTable(cmd, []string{"Left", "Op", "Right", "Result"}, rows)
		},
	}
}

func newConstantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List physical constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, c := range si.Constants() {
				rows = append(rows, []string{c.Name, c.Symbol, a.number(c.Value), c.Unit, c.Quantity})
			}

			return renderTable(cmd, []string{"Constant", "Symbol", "Value", "Unit", "Quantity"}, rows)
		},
	}
}

func prefixRows(a *app) [][]string {
	var rows [][]string
	for _, p := range unit.Prefixes() {
		if p.IsNone() {
			continue
		}
		rows = append(rows, []string{p.Name, p.Symbol, a.number(p.Factor())})
	}

	return rows
}
