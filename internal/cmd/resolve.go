package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/services"
)

// ResolveCmd runs one resolution against the configured device scenario
type ResolveCmd struct {
	Current ResolveCurrentCmd `cmd:"current" help:"Resolve the current device location"`
	Load    ResolveLoadCmd    `cmd:"load" help:"Run the on-load resolution (permission, GPS, fallbacks)" default:"1"`
	Point   ResolvePointCmd   `cmd:"point" help:"Label a map point"`
	Search  ResolveSearchCmd  `cmd:"search" help:"Resolve a free-text address"`
}

// resolveOutput holds the flags shared by every resolve subcommand
type resolveOutput struct {
	Commit  bool          `help:"Confirm the location afterwards, as the continue button would"`
	Format  string        `help:"Output format: text or json" enum:"text,json" default:"text"`
	Timeout time.Duration `help:"Give up after this long" default:"30s"`
}

// ResolveLoadCmd runs the on-load resolution
type ResolveLoadCmd struct {
	Output       resolveOutput `embed:""`
	OpenSettings bool          `help:"When the user must act, open app settings and resume as if returning to the foreground"`
}

// ResolveCurrentCmd resolves the current device location
type ResolveCurrentCmd struct {
	Output resolveOutput `embed:""`
}

// ResolveSearchCmd resolves a free-text address
type ResolveSearchCmd struct {
	Output resolveOutput `embed:""`
	Query  []string      `arg:"" help:"Address to search for"`
}

// ResolvePointCmd labels a map point
type ResolvePointCmd struct {
	Latitude  float64       `arg:"" help:"Latitude in degrees"`
	Longitude float64       `arg:"" help:"Longitude in degrees"`
	Output    resolveOutput `embed:""`
}

// Run executes the load command
func (r *ResolveLoadCmd) Run(cli *CLI) error {
	return runResolution(cli, r.Output, func(ctx context.Context, session *services.Session) []domain.Resolution {
		results := []domain.Resolution{session.Location.ResolveOnLoad(ctx)}
		if !r.OpenSettings || !session.Location.AwaitingUserAction() {
			return results
		}

		if err := session.Location.OpenSettings(ctx); err != nil {
			logging.Logger.Warn("Failed to open app settings", "error", err)
			return results
		}
		if res, ok := session.Location.ResumeOnForeground(ctx); ok {
			results = append(results, res)
		}
		return results
	})
}

// Run executes the current command
func (r *ResolveCurrentCmd) Run(cli *CLI) error {
	return runResolution(cli, r.Output, func(ctx context.Context, session *services.Session) []domain.Resolution {
		return []domain.Resolution{session.Location.ResolveCurrentLocation(ctx)}
	})
}

// Run executes the search command
func (r *ResolveSearchCmd) Run(cli *CLI) error {
	query := strings.Join(r.Query, " ")
	return runResolution(cli, r.Output, func(ctx context.Context, session *services.Session) []domain.Resolution {
		return []domain.Resolution{session.Location.ResolveFromSearch(ctx, query)}
	})
}

// Run executes the point command
func (r *ResolvePointCmd) Run(cli *CLI) error {
	coords := domain.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
	return runResolution(cli, r.Output, func(ctx context.Context, session *services.Session) []domain.Resolution {
		return []domain.Resolution{session.Location.ResolveFromMapPoint(ctx, coords)}
	})
}

func runResolution(cli *CLI, out resolveOutput, resolve func(context.Context, *services.Session) []domain.Resolution) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, out.Timeout)
	defer cancel()

	session := cli.Container.NewSession()
	defer session.Close()

	report := resolveReport{Resolutions: resolve(ctx, session)}
	if out.Commit {
		if err := session.Location.CommitLocationAndAdvance(ctx); err != nil {
			report.CommitError = err
		} else {
			loc, _ := session.Store.Location()
			report.Committed = &loc
		}
	}

	return writeReport(os.Stdout, report, out.Format)
}

// resolveReport is what a resolve command prints
type resolveReport struct {
	CommitError error
	Committed   *domain.ResolvedLocation
	Resolutions []domain.Resolution
}

// resolutionView is the JSON shape of a resolution
type resolutionView struct {
	Attempt   uint64                   `json:"attempt"`
	Committed bool                     `json:"committed"`
	Kind      string                   `json:"kind"`
	Location  *domain.ResolvedLocation `json:"location,omitempty"`
	Phases    []domain.Phase           `json:"phases"`
	Reason    string                   `json:"reason,omitempty"`
	Source    domain.PositionSource    `json:"source,omitempty"`
	Trigger   domain.Trigger           `json:"trigger"`
}

func newResolutionView(res domain.Resolution) resolutionView {
	view := resolutionView{
		Attempt:   res.Attempt,
		Committed: res.Committed,
		Kind:      res.Kind.String(),
		Phases:    res.Phases,
		Source:    res.Source,
		Trigger:   res.Trigger,
	}
	if res.HasLocation() {
		loc := res.Location
		view.Location = &loc
	}
	if res.Reason != nil {
		view.Reason = res.Reason.Error()
	}
	return view
}

func writeReport(w io.Writer, report resolveReport, format string) error {
	if format == "json" {
		output := map[string]any{}
		views := make([]resolutionView, 0, len(report.Resolutions))
		for _, res := range report.Resolutions {
			views = append(views, newResolutionView(res))
		}
		output["resolutions"] = views
		if report.Committed != nil {
			output["committed_location"] = report.Committed
		}
		if report.CommitError != nil {
			output["commit_error"] = report.CommitError.Error()
		}

		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, res := range report.Resolutions {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		writeResolutionText(tw, res)
	}
	if report.Committed != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Confirmed:\t%s, %s\n", report.Committed.Address, report.Committed.City)
	}
	if report.CommitError != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Cannot confirm:\t%v\n", report.CommitError)
	}
	return tw.Flush()
}

func writeResolutionText(w io.Writer, res domain.Resolution) {
	fmt.Fprintf(w, "Outcome:\t%s (attempt %d, %s)\n", res.Kind, res.Attempt, res.Trigger)
	if res.HasLocation() {
		loc := res.Location
		fmt.Fprintf(w, "Address:\t%s\n", loc.Address)
		fmt.Fprintf(w, "Sub-address:\t%s\n", loc.SubAddress)
		fmt.Fprintf(w, "City:\t%s\n", loc.City)
		fmt.Fprintf(w, "Coordinates:\t%s\n", loc.Coordinates())
		fmt.Fprintf(w, "Serviceable:\t%s\n", yesNo(loc.IsServiceable))
		fmt.Fprintf(w, "Source:\t%s\n", res.Source)
	}
	if res.Reason != nil {
		fmt.Fprintf(w, "Reason:\t%v\n", res.Reason)
	}
	fmt.Fprintf(w, "Committed:\t%s\n", yesNo(res.Committed))

	phases := make([]string, len(res.Phases))
	for i, p := range res.Phases {
		phases[i] = string(p)
	}
	fmt.Fprintf(w, "Phases:\t%s\n", strings.Join(phases, " > "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
