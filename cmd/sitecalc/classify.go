package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newClassifyCommand(output *string) *cobra.Command {
	var layerArgs []string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a layer profile into a ground type",
		Long: `Classify walks the profile from the surface down and prints the running
characteristic period TG and ground type after every layer.

Layers are given top-down as THICKNESS:VS, e.g. --layer 4:281.25 --layer 2:290.
Without any --layer the 12-layer reference borehole is classified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layers, err := parseLayers(layerArgs)
			if err != nil {
				return err
			}
			if len(layers) == 0 {
				layers = domain.DefaultLayers()
			}

			rows, err := domain.ClassifyGroundType(layers)
			if err != nil {
				return err
			}
			if *output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			t := newTable(cmd.OutOrStdout(), prettytable.Row{"#", "H (m)", "Vs (m/s)", "H/Vs", "TG (s)", "Ground type"})
			for i, r := range rows {
				ratio := "-"
				if r.Ratio.Defined {
					ratio = fmt.Sprintf("%.12f", r.Ratio.Value)
				}
				t.AppendRow(prettytable.Row{i + 1, r.Thickness, fmt.Sprintf("%.6f", r.ShearVelocity), ratio, fmt.Sprintf("%.6f", r.TG), r.GroundType.Label()})
			}
			final := rows[len(rows)-1]
			t.AppendFooter(prettytable.Row{"", "", "", "", fmt.Sprintf("%.6f", final.TG), final.GroundType.Label()})
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&layerArgs, "layer", "l", nil, "layer as THICKNESS:VS, repeat top-down")
	return cmd
}

func parseLayers(args []string) ([]domain.Layer, error) {
	layers := make([]domain.Layer, 0, len(args))
	for _, arg := range args {
		hRaw, vsRaw, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("layer %q: want THICKNESS:VS", arg)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hRaw), 64)
		if err != nil {
			return nil, fmt.Errorf("layer %q: thickness: %w", arg, err)
		}
		vs, err := strconv.ParseFloat(strings.TrimSpace(vsRaw), 64)
		if err != nil {
			return nil, fmt.Errorf("layer %q: shear velocity: %w", arg, err)
		}
		layers = append(layers, domain.Layer{Thickness: h, ShearVelocity: vs})
	}
	return layers, nil
}
