package adapter

// MetricAssignment is one interface metric to be set on the OS.
type MetricAssignment struct {
	Name   string `json:"name"`
	Metric int    `json:"metric"`
}
