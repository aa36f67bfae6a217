package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"netprio/application/session"
	"netprio/domain/adapter"
)

type Core interface {
	ListAdapters(ctx context.Context) ([]adapter.Record, string)
	Snapshot() []adapter.Record
	Reorder(from, to int) []adapter.Record
	Prioritize(names []string) ([]adapter.Record, error)
	CommitOrder(ctx context.Context, ordered []adapter.Record) (bool, string)
}

type Handler struct {
	core     Core
	validate *validator.Validate
}

func NewHandler(core Core) *Handler {
	return &Handler{
		core:     core,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetAdapters relists adapters from the OS.
func (h *Handler) GetAdapters(w http.ResponseWriter, r *http.Request) {
	records, status := h.core.ListAdapters(r.Context())
	writeJSON(w, http.StatusOK, AdaptersResponse{Adapters: nonNil(records), Status: status})
}

func (h *Handler) MoveAdapter(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !h.decode(w, r, &req) {
		return
	}
	records := h.core.Reorder(*req.From, *req.To)
	writeJSON(w, http.StatusOK, AdaptersResponse{Adapters: nonNil(records)})
}

// Commit applies the named order when given, otherwise the current list.
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}

	ordered := h.core.Snapshot()
	if len(req.Order) > 0 {
		var err error
		ordered, err = h.core.Prioritize(req.Order)
		if errors.Is(err, session.ErrUnknownAdapter) {
			WriteError(w, http.StatusBadRequest, ErrCodeUnknownAdapter, err.Error())
			return
		}
		if errors.Is(err, session.ErrDuplicateAdapter) {
			WriteInvalidRequest(w, err.Error())
			return
		}
		if err != nil {
			WriteInternalError(w, err.Error())
			return
		}
	}

	ok, message := h.core.CommitOrder(r.Context(), ordered)
	writeJSON(w, http.StatusOK, CommitResponse{
		Success:  ok,
		Message:  message,
		Adapters: nonNil(h.core.Snapshot()),
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	return h.decodeBody(w, r, dst, false)
}

// decodeOptional accepts an empty body and leaves dst untouched.
func (h *Handler) decodeOptional(w http.ResponseWriter, r *http.Request, dst any) bool {
	return h.decodeBody(w, r, dst, true)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		WriteInvalidRequest(w, "invalid JSON body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		WriteInvalidRequest(w, err.Error())
		return false
	}
	return true
}

func nonNil(records []adapter.Record) []adapter.Record {
	if records == nil {
		return []adapter.Record{}
	}
	return records
}
