// Command satsp solves Euclidean TSP instances with simulated annealing.
//
//	satsp solve --input departments.geojson --name-property NOMBDEP --project
//	satsp solve --input points.yaml --live --mqtt-broker tcp://localhost:1883
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

func main() {
	code := 0
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code = 1
	}
	glog.Flush()
	os.Exit(code)
}
