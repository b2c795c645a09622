// Command genmock reads a layer-profile CSV and generates mock fixtures for the
// pipeline test suites: the source-topic messages and the classifications the
// pipeline is expected to produce for them. It uses the domain package so the
// expected output always matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv data/mock/reference_profiles.csv \
//	  -source-out data/mock/layer_profiles.json \
//	  -expected-out data/mock/ground_classifications.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	"github.com/jonboulle/clockwork"
)

var requiredColumns = []string{"profile_id", "thickness", "shear_velocity"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "layer-profile CSV with profile_id, thickness, shear_velocity[, pga, ss, s1]")
	sourceOut := flag.String("source-out", "", "output path for source message fixture")
	expectedOut := flag.String("expected-out", "", "output path for expected classification fixture")
	flag.Parse()

	if *csvPath == "" || *sourceOut == "" || *expectedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -source-out, -expected-out")
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	requests, err := readProfiles(*csvPath)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}

	classified := make([]domain.ClassifiedProfile, 0, len(requests))
	for _, req := range requests {
		out, err := domain.ClassifyProfile(req)
		if err != nil {
			return fmt.Errorf("classify %s: %w", req.ID, err)
		}
		classified = append(classified, out)
		log.Printf("%s: %d layers", req.ID, len(req.Layers))
	}

	if err := writeJSON(*sourceOut, requests); err != nil {
		return fmt.Errorf("writing source fixture: %w", err)
	}
	log.Printf("wrote source fixture: %s", *sourceOut)

	if err := writeJSON(*expectedOut, classified); err != nil {
		return fmt.Errorf("writing expected fixture: %w", err)
	}
	log.Printf("wrote expected fixture: %s", *expectedOut)

	printStats(classified)
	return nil
}

// readProfiles groups CSV rows into profile requests, preserving first-seen
// profile order and layer order within a profile.
func readProfiles(path string) ([]domain.ProfileRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := colIdx[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	var requests []domain.ProfileRequest
	byID := map[string]int{}
	for n, row := range rows[1:] {
		line := n + 2
		id := get(row, colIdx, "profile_id")
		if id == "" {
			return nil, fmt.Errorf("line %d: empty profile_id", line)
		}

		h, err := parseFloat(get(row, colIdx, "thickness"))
		if err != nil {
			return nil, fmt.Errorf("line %d: thickness: %w", line, err)
		}
		vs, err := parseFloat(get(row, colIdx, "shear_velocity"))
		if err != nil {
			return nil, fmt.Errorf("line %d: shear_velocity: %w", line, err)
		}

		i, ok := byID[id]
		if !ok {
			i = len(requests)
			byID[id] = i
			requests = append(requests, domain.ProfileRequest{ID: id})
		}
		req := &requests[i]
		req.Layers = append(req.Layers, domain.Layer{Thickness: h, ShearVelocity: vs})

		if err := mergeSiteInputs(req, row, colIdx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return requests, nil
}

// mergeSiteInputs records any pga/ss/s1 value found on the row. The first
// value seen for a profile wins.
func mergeSiteInputs(req *domain.ProfileRequest, row []string, colIdx map[string]int) error {
	for _, col := range []string{"pga", "ss", "s1"} {
		raw := get(row, colIdx, col)
		if raw == "" {
			continue
		}
		v, err := parseFloat(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", col, err)
		}
		if req.Site == nil {
			req.Site = &domain.SiteInputs{}
		}
		var dst **float64
		switch col {
		case "pga":
			dst = &req.Site.PGA
		case "ss":
			dst = &req.Site.Ss
		case "s1":
			dst = &req.Site.S1
		}
		if *dst == nil {
			*dst = &v
		}
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(profiles []domain.ClassifiedProfile) {
	counts := map[domain.GroundType]int{}
	var layers int
	for i := range profiles {
		counts[profiles[i].GroundType]++
		layers += len(profiles[i].Rows)
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Profiles: %d, layers: %d\n", len(profiles), layers)
	fmt.Printf("By ground type: I=%d, II=%d, III=%d\n",
		counts[domain.GroundTypeI], counts[domain.GroundTypeII], counts[domain.GroundTypeIII])
	for i := range profiles {
		p := &profiles[i]
		fmt.Printf("  %s: TG=%.7f %s", p.ID, p.TG, p.GroundType.Label())
		if c := p.Coefficients; c != nil {
			printCoeff("Fpga", c.Fpga)
			printCoeff("Fa", c.Fa)
			printCoeff("Fv", c.Fv)
		}
		fmt.Println()
	}
}

func printCoeff(name string, v *float64) {
	if v != nil {
		fmt.Printf(" %s=%g", name, *v)
	}
}
