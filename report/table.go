package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

// ErrRouteShape is returned when names, points and the tour disagree in length.
var ErrRouteShape = errors.New("report: route shape mismatch")

// Route bundles what WriteRoute prints. Names may be nil. Model is the
// DistanceModel the result was searched on; legs are read from it so the
// printed total matches Result.BestCost.
type Route struct {
	Model  *tsp.DistanceModel
	Names  []string
	Points []tsp.Point
	Result tsp.Result
}

// WriteRoute prints the visiting order of r.Result.BestTour, one row per stop,
// with the leg length to the next stop (the last leg closes the cycle).
func WriteRoute(w io.Writer, r Route) error {
	var (
		tour = r.Result.BestTour
		n    = len(tour)
	)
	if r.Model.Len() != n || len(r.Points) != n || (r.Names != nil && len(r.Names) != n) {
		return fmt.Errorf("%w: %d stops, model of %d, %d points, %d names",
			ErrRouteShape, n, r.Model.Len(), len(r.Points), len(r.Names))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Index", "Name", "X", "Y", "Leg"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	var total float64
	for k, idx := range tour {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: tour[%d]=%d", ErrRouteShape, k, idx)
		}
		next := tour[(k+1)%n]
		if next < 0 || next >= n {
			return fmt.Errorf("%w: tour[%d]=%d", ErrRouteShape, (k+1)%n, next)
		}
		p := r.Points[idx]
		leg := r.Model.Distance(idx, next)
		total += leg

		name := strconv.Itoa(idx)
		if r.Names != nil {
			name = r.Names[idx]
		}
		table.Append([]string{
			strconv.Itoa(k + 1),
			strconv.Itoa(idx),
			name,
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(leg),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Total", formatFloat(total)})
	table.Render()

	return nil
}

// WriteSummary prints the search configuration and outcome as a key/value table.
func WriteSummary(w io.Writer, res tsp.Result, opts tsp.Options) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Initial temperature", formatFloat(opts.InitialTemperature)},
		{"Cooling rate", formatFloat(opts.CoolingRate)},
		{"Temperature floor", formatFloat(opts.TemperatureFloor)},
		{"Seed", strconv.FormatInt(opts.Seed, 10)},
		{"Stops", humanize.Comma(int64(len(res.BestTour)))},
		{"Iterations", humanize.Comma(int64(res.Iterations))},
		{"Acceptance rate", fmt.Sprintf("%.1f%%", 100*res.AcceptanceRate())},
		{"Final temperature", formatFloat(res.FinalTemperature)},
		{"Best cost", formatFloat(res.BestCost)},
	})
	table.Render()
}

// WriteRestarts prints one row per multi-start run and marks the best one.
func WriteRestarts(w io.Writer, seeds []int64, runs []tsp.Result, best int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Seed", "Best cost", "Acceptance", ""})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for i := range runs {
		mark := ""
		if i == best {
			mark = "*"
		}
		var seed string
		if i < len(seeds) {
			seed = strconv.FormatInt(seeds[i], 10)
		}
		table.Append([]string{
			strconv.Itoa(i),
			seed,
			formatFloat(runs[i].BestCost),
			fmt.Sprintf("%.1f%%", 100*runs[i].AcceptanceRate()),
			mark,
		})
	}
	table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
