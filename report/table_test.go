package report_test

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/report"
	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

func squareRoute(t *testing.T) report.Route {
	t.Helper()
	pts := []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dm, err := tsp.NewDistanceModel(pts)
	require.NoError(t, err)

	return report.Route{
		Model:  dm,
		Names:  []string{"A", "B", "C", "D"},
		Points: pts,
		Result: tsp.Result{
			BestTour:         []int{0, 1, 2, 3},
			BestCost:         4,
			FinalTemperature: 0.99,
			Iterations:       4,
			Trace: []tsp.TraceRecord{
				{Temperature: 100, Cost: 4, BestCost: 4, Accepted: true},
				{Temperature: 90, Cost: 4, BestCost: 4, Accepted: false},
				{Temperature: 81, Cost: 4.8284, BestCost: 4, Accepted: true},
				{Temperature: 72.9, Cost: 4, BestCost: 4, Accepted: true},
			},
		},
	}
}

func TestWriteRoute(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteRoute(&buf, squareRoute(t)))

	out := buf.String()
	for _, want := range []string{"Step", "Name", "Leg", "A", "D", "1.0000", "Total", "4.0000"} {
		require.Contains(t, out, want)
	}
	// Header, four stops and the footer each occupy one line.
	require.GreaterOrEqual(t, strings.Count(out, "\n"), 6)
}

func TestWriteRoute_NoNames(t *testing.T) {
	r := squareRoute(t)
	r.Names = nil

	var buf bytes.Buffer
	require.NoError(t, report.WriteRoute(&buf, r))
	require.NotContains(t, buf.String(), " A ")
}

func TestWriteRoute_ShapeMismatch(t *testing.T) {
	r := squareRoute(t)
	r.Points = r.Points[:3]
	require.ErrorIs(t, report.WriteRoute(&bytes.Buffer{}, r), report.ErrRouteShape)

	r = squareRoute(t)
	r.Result.BestTour = []int{0, 1, 2, 9}
	require.ErrorIs(t, report.WriteRoute(&bytes.Buffer{}, r), report.ErrRouteShape)

	r = squareRoute(t)
	r.Model = nil
	require.ErrorIs(t, report.WriteRoute(&bytes.Buffer{}, r), report.ErrRouteShape)
}

func TestWriteRoute_TotalMatchesBestCost(t *testing.T) {
	pts := []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 4}, {X: 1.5, Y: 2}}
	dm, err := tsp.NewDistanceModel(pts)
	require.NoError(t, err)
	tour := []int{4, 0, 1, 2, 3}
	cost := tsp.TourCost(dm, tour)

	var buf bytes.Buffer
	r := report.Route{Model: dm, Points: pts, Result: tsp.Result{BestTour: tour, BestCost: cost}}
	require.NoError(t, report.WriteRoute(&buf, r))
	require.Contains(t, buf.String(), strconv.FormatFloat(cost, 'f', 4, 64))
	require.Contains(t, buf.String(), "2.5000") // leg 4 -> 0
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	res := squareRoute(t).Result
	res.Iterations = 13790
	report.WriteSummary(&buf, res, tsp.DefaultOptions())

	out := buf.String()
	require.Contains(t, out, "13,790")
	require.Contains(t, out, "Best cost")
	require.Contains(t, out, "1000.0000")
	require.Contains(t, out, "75.0%")
}

func TestWriteRestarts(t *testing.T) {
	var buf bytes.Buffer
	runs := []tsp.Result{{BestCost: 5}, {BestCost: 4}}
	report.WriteRestarts(&buf, []int64{11, 12}, runs, 1)

	out := buf.String()
	require.Contains(t, out, "12")
	require.Contains(t, out, "*")
}

func TestWriteTraceCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTraceCSV(&buf, squareRoute(t).Result.Trace))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	require.Equal(t, []string{"iteration", "temperature", "cost", "best_cost", "accepted"}, rows[0])
	require.Equal(t, []string{"1", "100", "4", "4", "true"}, rows[1])
	require.Equal(t, []string{"3", "81", "4.8284", "4", "true"}, rows[3])
}

func TestWriteTraceCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTraceCSV(&buf, nil))
	require.Equal(t, "iteration,temperature,cost,best_cost,accepted\n", buf.String())
}
