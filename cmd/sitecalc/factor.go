package main

import (
	"github.com/couchcryptid/seismic-site-response/internal/domain"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type factorResult struct {
	GroundType   domain.GroundType       `json:"ground_type"`
	Inputs       domain.SiteInputs       `json:"inputs"`
	Coefficients domain.SiteCoefficients `json:"coefficients"`
}

func newFactorCommand(output *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Look up site factors for a ground type",
		Long: `Factor interpolates Fpga from --pga, Fa from --ss and Fv from --s1 in the
reference tables of the given ground type. Only supplied inputs are looked up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := groundTypeFlag(cmd)
			if err != nil {
				return err
			}
			site, err := domain.NewSiteConditions(g)
			if err != nil {
				return err
			}
			for _, q := range domain.Quantities {
				if !cmd.Flags().Changed(q.String()) {
					continue
				}
				v, err := cmd.Flags().GetFloat64(q.String())
				if err != nil {
					return err
				}
				site.Set(q, v)
			}

			coeffs, err := site.Coefficients()
			if err != nil {
				return err
			}
			if *output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), factorResult{GroundType: g, Inputs: domain.SiteInputs{PGA: site.PGA, Ss: site.Ss, S1: site.S1}, Coefficients: coeffs})
			}

			t := newTable(cmd.OutOrStdout(), prettytable.Row{"Input", "Value", "Factor", g.Label()})
			for _, q := range domain.Quantities {
				v, err := site.Input(q)
				if err != nil {
					continue
				}
				f, err := site.Factor(q)
				if err != nil {
					return err
				}
				t.AppendRow(prettytable.Row{q.String(), v, q.FactorName(), formatFactor(&f)})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringP("ground-type", "g", "", "ground type: I, II or III")
	cmd.Flags().Float64("pga", 0, "peak ground acceleration (g)")
	cmd.Flags().Float64("ss", 0, "short-period spectral acceleration (g)")
	cmd.Flags().Float64("s1", 0, "1-second spectral acceleration (g)")
	_ = cmd.MarkFlagRequired("ground-type")
	return cmd
}
