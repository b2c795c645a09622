package main

import (
	"fmt"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type tableDump struct {
	Factor      string               `json:"factor"`
	Input       string               `json:"input"`
	Breakpoints []float64            `json:"breakpoints"`
	Factors     map[string][]float64 `json:"factors"`
}

func newTablesCommand(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [pga|ss|s1]",
		Short: "Print the built-in site-factor reference tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantities := domain.Quantities
			if len(args) == 1 {
				q, ok := domain.ParseQuantity(args[0])
				if !ok {
					return fmt.Errorf("unknown quantity %q", args[0])
				}
				quantities = []domain.Quantity{q}
			}

			dumps := make([]tableDump, 0, len(quantities))
			for _, q := range quantities {
				d, err := dumpTable(q)
				if err != nil {
					return err
				}
				dumps = append(dumps, d)
			}
			if *output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), dumps)
			}

			for _, d := range dumps {
				fmt.Fprintf(cmd.OutOrStdout(), "%s by %s\n", d.Factor, d.Input)
				header := prettytable.Row{d.Input}
				for _, g := range domain.GroundTypes {
					header = append(header, g.Label())
				}
				t := newTable(cmd.OutOrStdout(), header)
				for i, bp := range d.Breakpoints {
					row := prettytable.Row{bp}
					for _, g := range domain.GroundTypes {
						row = append(row, d.Factors[g.String()][i])
					}
					t.AppendRow(row)
				}
				t.Render()
			}
			return nil
		},
	}
}

func dumpTable(q domain.Quantity) (tableDump, error) {
	d := tableDump{Factor: q.FactorName(), Input: q.String(), Factors: map[string][]float64{}}
	for _, g := range domain.GroundTypes {
		table, err := domain.Table(q, g)
		if err != nil {
			return tableDump{}, err
		}
		d.Breakpoints = table.Breakpoints
		d.Factors[g.String()] = table.Factors
	}
	return d, nil
}
