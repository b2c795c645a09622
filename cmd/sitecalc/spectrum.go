package main

import (
	"fmt"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSpectrumCommand(output *string) *cobra.Command {
	var (
		params    domain.SpectrumParams
		points    int
		maxPeriod float64
	)

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Sample the design response spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := groundTypeFlag(cmd)
			if err != nil {
				return err
			}
			params.GroundType = g

			periods, err := domain.SpectrumPeriods(points, maxPeriod)
			if err != nil {
				return err
			}
			spectrum, err := domain.DesignSpectrum(params, periods)
			if err != nil {
				return err
			}
			if *output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), spectrum)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  As=%.4f  SDS=%.4f  SD1=%.4f  T0=%.4f s  Ts=%.4f s\n",
				g.Label(), spectrum.As, spectrum.SDS, spectrum.SD1, spectrum.T0, spectrum.Ts)
			t := newTable(cmd.OutOrStdout(), prettytable.Row{"T (s)", "Csm (g)"})
			for i, p := range spectrum.Periods {
				t.AppendRow(prettytable.Row{fmt.Sprintf("%.3f", p), fmt.Sprintf("%.4f", spectrum.Accelerations[i])})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringP("ground-type", "g", "", "ground type: I, II or III")
	cmd.Flags().Float64Var(&params.PGA, "pga", 0, "peak ground acceleration (g)")
	cmd.Flags().Float64Var(&params.Ss, "ss", 0, "short-period spectral acceleration (g)")
	cmd.Flags().Float64Var(&params.S1, "s1", 0, "1-second spectral acceleration (g)")
	cmd.Flags().IntVar(&points, "points", 21, "number of periods to sample")
	cmd.Flags().Float64Var(&maxPeriod, "max-period", 4, "last sampled period (s)")
	_ = cmd.MarkFlagRequired("ground-type")
	return cmd
}
