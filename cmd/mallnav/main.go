// SPDX-License-Identifier: MIT

// Command mallnav routes between shops of a venue description and prints
// turn-by-turn directions.
//
//	mallnav route Bakery Cinema --accessible --venue mall.yaml
//	mallnav reachable Bakery --accessible
//	mallnav inspect --venue mall.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mallnav/builder"
	"github.com/katalvlaran/mallnav/directions"
	"github.com/katalvlaran/mallnav/internal/config"
	"github.com/katalvlaran/mallnav/internal/logging"
	"github.com/katalvlaran/mallnav/pathfind"
	"github.com/katalvlaran/mallnav/reach"
	"github.com/katalvlaran/mallnav/venue"
	"github.com/katalvlaran/mallnav/venuefile"
)

var version = "0.1.0-dev"

// errReported marks a failure already printed for the user.
var errReported = errors.New("reported")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mallnav",
		Short:         "Indoor venue navigation",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("venue", "", "Path to the venue description (overrides config)")

	routeCmd := &cobra.Command{
		Use:   "route <start> <end>",
		Short: "Print the shortest route and directions between two shops",
		Args:  cobra.ExactArgs(2),
		RunE:  runRoute,
	}
	routeCmd.Flags().Bool("accessible", false, "Avoid connectors that are not accessible")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarise the floors and routing graph of a venue",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}

	reachableCmd := &cobra.Command{
		Use:   "reachable <shop>",
		Short: "List the shops reachable from a shop",
		Args:  cobra.ExactArgs(1),
		RunE:  runReachable,
	}
	reachableCmd.Flags().Bool("accessible", false, "Avoid connectors that are not accessible")
	reachableCmd.Flags().Int("max-hops", 0, "Only list shops within this many graph edges (0 = no limit)")

	rootCmd.AddCommand(routeCmd, inspectCmd, reachableCmd)

	return rootCmd
}

// session is a loaded venue with its configuration and logger.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	venue  *venue.Venue
	report *builder.Report
}

func openSession(cmd *cobra.Command) (*session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	venuePath, err := cmd.Flags().GetString("venue")
	if err != nil {
		return nil, err
	}
	if venuePath != "" {
		cfg.Venue.Path = venuePath
	}

	logger := logging.New(cfg.Logging, version, cmd.OutOrStdout(), cmd.ErrOrStderr()).
		With("command", cmd.Name())
	v, _, err := venuefile.Load(cfg.Venue.Path, venuefile.WithLogger(logger.Logger))
	if err != nil {
		return nil, err
	}
	report, err := builder.Build(v,
		builder.WithVerticalUnitCost(cfg.Routing.VerticalUnitCost),
		builder.WithLogger(logger.Logger),
	)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, venue: v, report: report}, nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	accessible, err := cmd.Flags().GetBool("accessible")
	if err != nil {
		return err
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	start, end := args[0], args[1]
	var suggestions []string
	res, err := pathfind.FindPath(s.venue, start, end,
		pathfind.WithAccessible(accessible),
		pathfind.WithFloorWeight(s.cfg.Routing.FloorHeuristicWeight),
		pathfind.WithLogger(s.logger.Logger),
		pathfind.WithSuggestionHandler(func(_ string, found []string) {
			suggestions = found
		}),
	)

	out := cmd.OutOrStdout()
	var notFound *pathfind.ShopNotFoundError
	switch {
	case errors.As(err, &notFound):
		printNotFound(out, notFound, suggestions)
		return errReported
	case errors.Is(err, pathfind.ErrNoPath):
		fmt.Fprintln(out, "no path found")
		return errReported
	case err != nil:
		return err
	}

	labels, err := directions.Describe(s.venue, res.Path)
	if err != nil {
		return err
	}
	steps, err := directions.Generate(s.venue, res.Path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Shortest path from %s to %s:\n", start, end)
	for _, l := range labels {
		fmt.Fprintln(out, " ->", l)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Turn-by-turn Instructions:")
	for _, step := range steps {
		fmt.Fprintln(out, step)
	}

	return nil
}

func printNotFound(out io.Writer, e *pathfind.ShopNotFoundError, suggestions []string) {
	fmt.Fprintln(out, e.Error())
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(out, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintln(out, "  -", s)
	}
}

func runReachable(cmd *cobra.Command, args []string) error {
	accessible, err := cmd.Flags().GetBool("accessible")
	if err != nil {
		return err
	}
	maxHops, err := cmd.Flags().GetInt("max-hops")
	if err != nil {
		return err
	}
	if maxHops < 0 {
		return fmt.Errorf("--max-hops must be >= 0, got %d", maxHops)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	var suggestions []string
	dests, err := pathfind.Reachable(s.venue, args[0],
		pathfind.WithAccessible(accessible),
		pathfind.WithMaxHops(maxHops),
		pathfind.WithLogger(s.logger.Logger),
		pathfind.WithSuggestionHandler(func(_ string, found []string) {
			suggestions = found
		}),
	)
	out := cmd.OutOrStdout()
	var notFound *pathfind.ShopNotFoundError
	if errors.As(err, &notFound) {
		printNotFound(out, notFound, suggestions)
		return errReported
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Reachable from %s: %d shops\n", args[0], len(dests))
	for _, d := range dests {
		fmt.Fprintf(out, " -> %s (%d hops)\n", d.Name, d.Hops)
	}

	return nil
}

func runInspect(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range s.venue.Floors() {
		fmt.Fprintf(out, "Level %d (%s): %d shops, %d connectors, %d waypoints\n",
			f.Level, s.report.Strategies[f.Level], len(f.Shops()), len(f.Connectors()), len(f.Waypoints()))
	}

	stats := s.report.Graph.Stats()
	fmt.Fprintf(out, "Graph: %d vertices, %d edges (%d vertical)\n", stats.Vertices, stats.Edges, stats.DirectedEdges)

	comps, err := reach.Components(s.report.Graph)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Components: %d\n", len(comps))
	if len(comps) > 1 {
		for i, c := range comps {
			fmt.Fprintf(out, "  %d: %d vertices, first %s\n", i+1, len(c), c[0])
		}
	}
	for _, w := range s.report.Warnings {
		fmt.Fprintln(out, "warning:", w)
	}

	return nil
}
