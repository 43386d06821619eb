package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"saferoute/config"
	"saferoute/internal/infra/announce"
	logs "saferoute/internal/infra/log"
	"saferoute/internal/infra/routing/ors"
	"saferoute/internal/infra/samples"
	"saferoute/internal/navigation"
	"saferoute/internal/util"

	"github.com/pkg/errors"
)

// Exit codes
const (
	exitArrived    = 0
	exitFailure    = 1
	exitNotArrived = 2
)

type replayFlags struct {
	routePath     string
	positionsPath string
	alternative   int
	locale        string
	logLevel      string
}

func parseFlags(args []string, stderr io.Writer) (*replayFlags, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	flags := &replayFlags{}
	fs.StringVar(&flags.routePath, "route", "", "Stored OpenRouteService GeoJSON directions response")
	fs.StringVar(&flags.positionsPath, "positions", "", "CSV of lat,lng[,accuracy] samples")
	fs.IntVar(&flags.alternative, "alt", 0, "Index of the alternative route to follow")
	fs.StringVar(&flags.locale, "locale", "en-US", "Locale attached to announcements")
	fs.StringVar(&flags.logLevel, "log-level", "info", "Log level for announcements (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.WithStack(err)
	}
	if flags.routePath == "" || flags.positionsPath == "" {
		fs.Usage()

		return nil, errors.New("-route and -positions are required")
	}

	return flags, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitFailure
	}

	arrived, err := replay(flags, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitFailure
	}
	if !arrived {
		fmt.Fprintln(stdout, "Samples ended before arrival")

		return exitNotArrived
	}

	return exitArrived
}

func replay(flags *replayFlags, stdout, stderr io.Writer) (bool, error) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "replay"
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = flags.logLevel

	logger, err := logs.NewWithWriter(stderr, cfg)
	if err != nil {
		return false, err
	}

	routeFile, err := os.Open(flags.routePath)
	if err != nil {
		return false, errors.WithStack(err)
	}
	defer routeFile.Close()

	routes, dropped, err := ors.DecodeRoutes(routeFile)
	if err != nil {
		return false, err
	}
	if dropped > 0 {
		logger.Warn("Dropped malformed alternatives", slog.Int("count", dropped))
	}
	if flags.alternative < 0 || flags.alternative >= len(routes) {
		return false, errors.Errorf("alternative %d out of range, response has %d", flags.alternative, len(routes))
	}

	trace, err := samples.LoadFile(flags.positionsPath)
	if err != nil {
		return false, err
	}

	route := routes[flags.alternative]
	tracker := navigation.NewTracker(announce.NewLogAnnouncer(logger), navigation.WithLocale(flags.locale))
	if !tracker.SelectRoute(&route) {
		return false, errors.New("selected alternative has no steps")
	}
	tracker.RepeatInstruction()

	fmt.Fprintf(stdout, "Route %d: %d steps, %s, %s\n",
		flags.alternative, len(route.Steps), util.FormatDistance(route.Distance), util.FormatSeconds(route.Duration))

	for i, sample := range trace {
		update := tracker.OnPositionUpdate(sample.Position)
		fmt.Fprintln(stdout, progressLine(i+1, tracker, update))

		if update.Arrived {
			return true, nil
		}
	}

	return false, nil
}

func progressLine(n int, tracker *navigation.Tracker, update navigation.Update) string {
	if !update.Applied {
		return fmt.Sprintf("#%d ignored", n)
	}

	line := fmt.Sprintf("#%d step %d  to turn %s  remaining %s / %s",
		n, update.StepIndex, util.FormatDistance(update.Distance),
		util.FormatDistance(tracker.RemainingDistance()), util.FormatSeconds(tracker.RemainingDuration()))

	switch {
	case update.Arrived:
		line += "  arrived"
	case update.Advanced:
		line += "  advanced"
	case update.PreAnnounced:
		line += "  pre-announced"
	}

	return line
}
