package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/geo"
	"github.com/ShinjiMC/Simulated-Annealing-TSP/matrix"
	"github.com/ShinjiMC/Simulated-Annealing-TSP/report"
	"github.com/ShinjiMC/Simulated-Annealing-TSP/runner"
	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

// defaultNameProperty matches the department name column of the Peruvian
// boundaries dataset the tool was first used with.
const defaultNameProperty = "NOMBDEP"

// Solve is the sub-command invoked when running "satsp solve".
var Solve = subCommand{Cmd: newSolveCmd(), EnvPrefix: envPrefix}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a short tour through the input sites",
		Long: `
Solve loads sites, runs simulated annealing with 2-opt moves and prints the
visiting order together with a summary of the run. With --restarts > 1 it runs
independent searches with derived seeds and keeps the best.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), Solve.Conf)
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "Sites file: .geojson/.json features or .yaml/.yml point list.")
	f.String("name-property", defaultNameProperty, "GeoJSON feature property holding the site name.")
	f.Bool("project", false, "Project lon/lat to Web Mercator before measuring distances.")
	f.Float64("initial-temp", tsp.DefaultInitialTemperature, "Initial temperature T0.")
	f.Float64("cooling-rate", tsp.DefaultCoolingRate, "Geometric cooling rate, T *= 1-rate.")
	f.Float64("floor", tsp.DefaultTemperatureFloor, "Temperature floor; the search stops at or below it.")
	f.Int64("seed", 0, "Random seed; 0 selects the fixed default seed.")
	f.Bool("live", false, "Use the live schedule and publish a snapshot for every iteration.")
	f.Int("restarts", 1, "Number of independent runs.")
	f.Int("workers", 0, "Concurrent runs when --restarts > 1; 0 means one per run.")
	f.Bool("polish", false, "Finish with a deterministic 2-opt descent on the best tour.")
	f.String("trace-csv", "", "Write the per-iteration trace of the best run to this CSV file.")
	f.String("export-points", "", "Write the loaded sites as a YAML point list to this file.")
	f.String("mqtt-broker", "", "MQTT broker URL, e.g. tcp://localhost:1883. Empty disables publishing.")
	f.String("mqtt-topic", report.DefaultTopicPrefix, "MQTT topic prefix.")
	f.Int("mqtt-every", 1, "Publish every n-th snapshot.")
	f.Duration("mqtt-timeout", 5*time.Second, "MQTT connect and publish timeout.")

	return cmd
}

func runSolve(ctx context.Context, w io.Writer, conf *viper.Viper) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sites, err := loadSites(conf)
	if err != nil {
		return err
	}
	glog.Infof("loaded %d sites from %s", len(sites), conf.GetString("input"))

	if path := conf.GetString("export-points"); path != "" {
		if err = geo.SavePointsYAML(path, sites); err != nil {
			return errors.Wrapf(err, "exporting points to %s", path)
		}
	}

	points := geo.Points(sites)
	dm, err := tsp.NewDistanceModel(points)
	if err != nil {
		return errors.Wrap(err, "building distance model")
	}
	opts := buildOptions(conf)
	glog.V(2).Infof("schedule T0=%v rate=%v floor=%v: ~%d iterations",
		opts.InitialTemperature, opts.CoolingRate, opts.TemperatureFloor, tsp.EstimatedIterations(opts))
	if glog.V(3) {
		glog.Info(describeModel(dm))
	}

	obs, closeMQTT, err := connectObserver(conf)
	if err != nil {
		return err
	}
	defer closeMQTT()

	var res tsp.Result
	if runs := conf.GetInt("restarts"); runs > 1 {
		cfg := runner.Config{Runs: runs, Workers: conf.GetInt("workers")}
		if obs != nil {
			cfg.Observers = obs.ForRun
		}
		out, err := runner.MultiStart(ctx, dm, opts, cfg)
		if err != nil {
			return errors.Wrapf(err, "running %d restarts", runs)
		}
		report.WriteRestarts(w, out.Seeds, out.Runs, out.Best)
		res = out.BestResult()
		opts.Seed = out.Seeds[out.Best]
	} else {
		if obs != nil {
			opts.Observer = obs
		}
		s, err := tsp.NewSearch(dm, opts)
		if err != nil {
			return errors.Wrap(err, "configuring search")
		}
		if res, err = s.Run(ctx); err != nil {
			return errors.Wrap(err, "annealing")
		}
	}

	if conf.GetBool("polish") {
		tour, cost, moves := tsp.Polish(dm, res.BestTour, 0)
		glog.Infof("2-opt polish: %d moves, %.4f -> %.4f", moves, res.BestCost, cost)
		res.BestTour, res.BestCost = tour, cost
	}

	if err = report.WriteRoute(w, report.Route{Model: dm, Names: geo.Names(sites), Points: points, Result: res}); err != nil {
		return errors.Wrap(err, "writing route")
	}
	report.WriteSummary(w, res, opts)

	if path := conf.GetString("trace-csv"); path != "" {
		if err = writeTrace(path, res.Trace); err != nil {
			return errors.Wrapf(err, "writing trace to %s", path)
		}
	}
	if obs != nil {
		if err = obs.PublishResult(res, geo.Names(sites)); err != nil {
			glog.Warningf("publishing result: %v", err)
		}
		_, published, failed := obs.Stats()
		glog.Infof("mqtt: %d messages published, %d failed", published, failed)
	}

	return nil
}

// buildOptions maps flags onto tsp.Options. --live swaps in the live schedule
// for every schedule flag the user did not set explicitly.
func buildOptions(conf *viper.Viper) tsp.Options {
	opts := tsp.DefaultOptions()
	if conf.GetBool("live") {
		opts = tsp.LiveOptions()
	}
	if !conf.GetBool("live") || conf.IsSet("initial-temp") {
		opts.InitialTemperature = conf.GetFloat64("initial-temp")
	}
	if !conf.GetBool("live") || conf.IsSet("cooling-rate") {
		opts.CoolingRate = conf.GetFloat64("cooling-rate")
	}
	if !conf.GetBool("live") || conf.IsSet("floor") {
		opts.TemperatureFloor = conf.GetFloat64("floor")
	}
	opts.Seed = conf.GetInt64("seed")

	return opts
}

// describeModel renders the distance matrix for debug logging.
func describeModel(dm *tsp.DistanceModel) string {
	m := dm.Matrix()
	if m == nil {
		return "distance matrix: empty"
	}

	return fmt.Sprintf("distance matrix %dx%d symmetric=%v\n%s",
		m.Rows(), m.Cols(), matrix.IsSymmetric(m, 0), m)
}

func loadSites(conf *viper.Viper) ([]geo.Site, error) {
	path := conf.GetString("input")
	if path == "" {
		return nil, errors.New("--input is required")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		fc, err := geo.LoadFeatureCollection(path)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", path)
		}
		sites, err := geo.Sites(fc, geo.SiteOptions{
			NameProperty: conf.GetString("name-property"),
			Project:      conf.GetBool("project"),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "extracting sites from %s", path)
		}
		return sites, nil
	case ".yaml", ".yml":
		sites, err := geo.LoadPointsYAML(path)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", path)
		}
		return sites, nil
	default:
		return nil, errors.Errorf("unsupported input extension %q", ext)
	}
}

// connectObserver returns a nil observer and a no-op closer when no broker is configured.
func connectObserver(conf *viper.Viper) (*report.MQTTObserver, func(), error) {
	broker := conf.GetString("mqtt-broker")
	if broker == "" {
		return nil, func() {}, nil
	}
	timeout := conf.GetDuration("mqtt-timeout")

	client, err := report.ConnectMQTT(broker, fmt.Sprintf("satsp-%d", os.Getpid()), timeout)
	if err != nil {
		return nil, nil, errors.Wrap(err, "mqtt")
	}
	obs := report.NewMQTTObserver(client, conf.GetString("mqtt-topic"))
	obs.SetEvery(conf.GetInt("mqtt-every"))
	obs.SetTimeout(timeout)

	return obs, func() { client.Disconnect(250) }, nil
}

func writeTrace(path string, trace []tsp.TraceRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteTraceCSV(f, trace)
}
