package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"netprio/application/logging"
	"netprio/domain/adapter"
)

const (
	DefaultBase = 1
	DefaultStep = 10
	// MaxMetric is the largest interface metric Windows accepts.
	MaxMetric = 9999
)

var (
	ErrInvalidPlan       = errors.New("invalid metric plan")
	ErrMetricOutOfRange  = errors.New("metric out of range")
	ErrUnsafeName        = errors.New("interface name cannot be quoted safely")
	unsafeNameCharacters = "\"%\r\n"
)

// MetricBatcher applies a full set of metric assignments as one unit.
type MetricBatcher interface {
	SetInterfaceMetrics(ctx context.Context, assignments []adapter.MetricAssignment) error
}

type Result struct {
	Success     bool
	Message     string
	Assignments []adapter.MetricAssignment
	Err         error
}

type Reconciler struct {
	batcher MetricBatcher
	logger  logging.Logger
	base    int
	step    int
}

func NewReconciler(batcher MetricBatcher, logger logging.Logger, base, step int) *Reconciler {
	return &Reconciler{
		batcher: batcher,
		logger:  logger,
		base:    base,
		step:    step,
	}
}

// Plan assigns base + i*step to position i. Nothing is issued when any
// position cannot be assigned.
func (r *Reconciler) Plan(ordered []adapter.Record) ([]adapter.MetricAssignment, error) {
	if r.base < 1 || r.step < 1 {
		return nil, fmt.Errorf("%w: base=%d step=%d must both be positive", ErrInvalidPlan, r.base, r.step)
	}
	assignments := make([]adapter.MetricAssignment, 0, len(ordered))
	for i, record := range ordered {
		if record.Name == "" {
			return nil, fmt.Errorf("%w: empty interface name at position %d", ErrInvalidPlan, i)
		}
		if strings.ContainsAny(record.Name, unsafeNameCharacters) {
			return nil, fmt.Errorf("%w: %q", ErrUnsafeName, record.Name)
		}
		metric := r.base + i*r.step
		if metric > MaxMetric {
			return nil, fmt.Errorf("%w: %q would get %d (max %d)", ErrMetricOutOfRange, record.Name, metric, MaxMetric)
		}
		assignments = append(assignments, adapter.MetricAssignment{Name: record.Name, Metric: metric})
	}
	return assignments, nil
}

// Apply submits the planned metrics as a single batch. It does not roll back:
// if the batch fails midway the OS may hold a subset of the new metrics.
func (r *Reconciler) Apply(ctx context.Context, ordered []adapter.Record) Result {
	assignments, err := r.Plan(ordered)
	if err != nil {
		return failure(err, nil)
	}
	if len(assignments) == 0 {
		return Result{Success: true}
	}
	if err := r.batcher.SetInterfaceMetrics(ctx, assignments); err != nil {
		r.logger.Printf("reconcile: batch of %d assignment(s) failed: %v", len(assignments), err)
		return failure(err, assignments)
	}
	r.logger.Printf("reconcile: applied %d assignment(s)", len(assignments))
	return Result{Success: true, Assignments: assignments}
}

func failure(err error, assignments []adapter.MetricAssignment) Result {
	return Result{
		Success:     false,
		Message:     err.Error(),
		Assignments: assignments,
		Err:         err,
	}
}
