package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ShinjiMC/Simulated-Annealing-TSP/tsp"
)

// traceHeader is the first CSV row written by WriteTraceCSV.
var traceHeader = []string{"iteration", "temperature", "cost", "best_cost", "accepted"}

// WriteTraceCSV writes one row per trace record, 1-based iteration numbers,
// full float precision.
func WriteTraceCSV(w io.Writer, trace []tsp.TraceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	row := make([]string, len(traceHeader))
	for i, r := range trace {
		row[0] = strconv.Itoa(i + 1)
		row[1] = strconv.FormatFloat(r.Temperature, 'g', -1, 64)
		row[2] = strconv.FormatFloat(r.Cost, 'g', -1, 64)
		row[3] = strconv.FormatFloat(r.BestCost, 'g', -1, 64)
		row[4] = strconv.FormatBool(r.Accepted)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing trace row %d: %w", i+1, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
