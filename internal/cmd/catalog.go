package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/freshcart/internal/domain"
)

// SamplesCmd inspects the sample catalog
type SamplesCmd struct {
	List SamplesListCmd `cmd:"list" help:"List the samples on offer" default:"1"`
}

// SamplesListCmd lists samples
type SamplesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SamplesListCmd) Run(cli *CLI) error {
	samples, err := cli.Container.Catalog.ListSamples(context.Background())
	if err != nil {
		return err
	}
	return writeSamples(os.Stdout, samples, s.Format)
}

func writeSamples(w io.Writer, samples []domain.Sample, format string) error {
	if format == "json" {
		return writeJSON(w, samples)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSOURCE\tBADGE")
	for _, s := range samples {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Sub, s.Badge)
	}
	return tw.Flush()
}

// ZonesCmd manages service zones
type ZonesCmd struct {
	Add  ZonesAddCmd  `cmd:"add" help:"Add a service zone"`
	List ZonesListCmd `cmd:"list" help:"List service zones" default:"1"`
}

// ZonesListCmd lists service zones
type ZonesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// ZonesAddCmd adds a service zone
// Positional arguments keep command-line order.
type ZonesAddCmd struct {
	Name      string  `arg:"" help:"Zone name (unique)"`
	Latitude  float64 `arg:"" help:"Centre latitude"`
	Longitude float64 `arg:"" help:"Centre longitude"`
	RadiusKm  float64 `help:"Zone radius in kilometres" default:"10"`
}

// Run executes the list command
func (z *ZonesListCmd) Run(cli *CLI) error {
	zones, err := cli.Container.Catalog.ListZones(context.Background())
	if err != nil {
		return err
	}
	return writeZones(os.Stdout, zones, z.Format)
}

// Run executes the add command
func (z *ZonesAddCmd) Run(cli *CLI) error {
	zone := domain.ServiceZone{
		Latitude:  z.Latitude,
		Longitude: z.Longitude,
		Name:      z.Name,
		RadiusKm:  z.RadiusKm,
	}
	if err := cli.Container.Catalog.AddZone(context.Background(), zone); err != nil {
		return err
	}

	fmt.Printf("Added zone '%s' (%.1f km around %.4f, %.4f)\n", zone.Name, zone.RadiusKm, zone.Latitude, zone.Longitude)
	return nil
}

func writeZones(w io.Writer, zones []domain.ServiceZone, format string) error {
	if format == "json" {
		return writeJSON(w, zones)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCENTRE\tRADIUS")
	for _, z := range zones {
		fmt.Fprintf(tw, "%s\t%.4f, %.4f\t%.1f km\n", z.Name, z.Latitude, z.Longitude, z.RadiusKm)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
