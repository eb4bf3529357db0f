// Package report renders annealing results for people and machines:
// tablewriter route and summary tables, a CSV dump of the trace, and an
// MQTT observer that streams snapshots while the search runs.
//
// Nothing in here feeds back into the search; publish failures are logged and
// counted, never returned to the solver.
package report
