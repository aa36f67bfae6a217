package netsh

import (
	"context"

	"netprio/domain/adapter"
)

type Contract interface {
	// ShowInterfaces returns the raw, undecoded output of the interface query.
	ShowInterfaces(ctx context.Context) ([]byte, error)
	// SetInterfaceMetrics applies all assignments in one shell launch.
	SetInterfaceMetrics(ctx context.Context, assignments []adapter.MetricAssignment) error
	// BatchCommand renders the script SetInterfaceMetrics would run.
	BatchCommand(assignments []adapter.MetricAssignment) string
}
