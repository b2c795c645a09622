package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newRootCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sitecalc",
		Short: "Seismic site-response calculator",
		Long: `sitecalc classifies soil layer profiles into ground types I, II and III
from their characteristic period TG = 4*sum(H/Vs), and looks up the
site factors Fpga, Fa and Fv for a ground type.

Subcommands:
  classify  - Classify a layer profile (defaults to the reference borehole)
  factor    - Look up site factors for PGA, Ss and S1
  spectrum  - Sample the design response spectrum
  tables    - Print the built-in site-factor reference tables`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch output {
			case outputTable, outputJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputTable, outputJSON)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	cmd.AddCommand(
		newClassifyCommand(&output),
		newFactorCommand(&output),
		newSpectrumCommand(&output),
		newTablesCommand(&output),
	)
	return cmd
}

func newTable(w io.Writer, header prettytable.Row) prettytable.Writer {
	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)
	t.AppendHeader(header)
	return t
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func groundTypeFlag(cmd *cobra.Command) (domain.GroundType, error) {
	raw, err := cmd.Flags().GetString("ground-type")
	if err != nil {
		return 0, err
	}
	return domain.ParseGroundType(raw)
}

func formatFactor(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}
