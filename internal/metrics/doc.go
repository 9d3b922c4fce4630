// Package metrics collects Prometheus metrics about calculations and exports
// them to a textfile for the node_exporter textfile collector.
package metrics
