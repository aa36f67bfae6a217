package api

import "netprio/domain/adapter"

type AdaptersResponse struct {
	Adapters []adapter.Record `json:"adapters"`
	Status   string           `json:"status,omitempty"`
}

// MoveRequest carries zero-based positions; out-of-range values are clamped.
type MoveRequest struct {
	From *int `json:"from" validate:"required"`
	To   *int `json:"to" validate:"required"`
}

// CommitRequest optionally names the full or partial order to commit. The
// named adapters go first and the rest keep their current relative order.
type CommitRequest struct {
	Order []string `json:"order" validate:"omitempty,unique,dive,required"`
}

type CommitResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Adapters []adapter.Record `json:"adapters"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
