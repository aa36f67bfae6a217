package session

import (
	"context"
	"errors"
	"fmt"

	"netprio/application/listing"
	"netprio/application/logging"
	"netprio/application/priority"
	"netprio/application/reconcile"
	"netprio/domain/adapter"
)

// Messages renders user-facing status lines in the current language.
type Messages interface {
	AdaptersFound(n int) string
	NoAdapters() string
	NoHeader() string
	Error(detail string) string
	PriorityChanged() string
	PriorityFailed(detail string) string
}

// Gateway is the query half of the adapter command gateway.
type Gateway interface {
	ShowInterfaces(ctx context.Context) ([]byte, error)
}

type Decoder interface {
	Decode(data []byte) string
}

type Parser interface {
	Parse(text string) (listing.Result, error)
}

type Applier interface {
	Apply(ctx context.Context, ordered []adapter.Record) reconcile.Result
}

// Outcome labels reported to the Observer.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeNoHeader = "no_header"
	OutcomeError    = "error"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
)

type Observer interface {
	ListingCompleted(outcome string, adapters int)
	CommitCompleted(outcome string)
}

type nopObserver struct{}

func (nopObserver) ListingCompleted(string, int) {}
func (nopObserver) CommitCompleted(string)       {}

// Session is the core owned by a single host surface. Calls must not overlap;
// hosts that serve concurrent requests serialize them.
type Session struct {
	gateway  Gateway
	decoder  Decoder
	parser   Parser
	applier  Applier
	messages Messages
	logger   logging.Logger
	observer Observer
	list     *priority.List
}

func NewSession(
	gateway Gateway,
	decoder Decoder,
	parser Parser,
	applier Applier,
	messages Messages,
	logger logging.Logger,
) *Session {
	return &Session{
		gateway:  gateway,
		decoder:  decoder,
		parser:   parser,
		applier:  applier,
		messages: messages,
		logger:   logger,
		observer: nopObserver{},
		list:     priority.NewList(nil),
	}
}

func (s *Session) SetObserver(observer Observer) {
	if observer == nil {
		observer = nopObserver{}
	}
	s.observer = observer
}

// ListAdapters queries the OS and replaces the priority list wholesale. Any
// failure yields an empty list and a localized status line.
func (s *Session) ListAdapters(ctx context.Context) ([]adapter.Record, string) {
	records, status, outcome := s.refresh(ctx)
	s.observer.ListingCompleted(outcome, len(records))
	return records, status
}

func (s *Session) refresh(ctx context.Context) ([]adapter.Record, string, string) {
	raw, err := s.gateway.ShowInterfaces(ctx)
	if err != nil {
		s.logger.Printf("session: interface query failed: %v", err)
		s.list.Replace(nil)
		return nil, s.messages.Error(err.Error()), OutcomeError
	}

	result, err := s.parser.Parse(s.decoder.Decode(raw))
	if err != nil {
		s.list.Replace(nil)
		s.logger.Printf("session: parse failed: %v", err)
		if errors.Is(err, listing.ErrNoHeader) {
			return nil, s.messages.Error(s.messages.NoHeader()), OutcomeNoHeader
		}
		return nil, s.messages.Error(err.Error()), OutcomeError
	}
	if result.Skipped > 0 {
		s.logger.Printf("session: skipped %d row(s) of interface table", result.Skipped)
	}

	s.list.Replace(result.Adapters)
	if len(result.Adapters) == 0 {
		return s.list.Snapshot(), s.messages.NoAdapters(), OutcomeEmpty
	}
	return s.list.Snapshot(), s.messages.AdaptersFound(len(result.Adapters)), OutcomeOK
}

// Reorder moves one adapter; out-of-range positions are clamped.
func (s *Session) Reorder(from, to int) []adapter.Record {
	s.list.MoveItem(from, to)
	return s.list.Snapshot()
}

func (s *Session) Snapshot() []adapter.Record {
	return s.list.Snapshot()
}

// CommitOrder applies ordered as new metrics. On success the list is rebuilt
// from a fresh OS listing; on failure the list keeps the user's order.
func (s *Session) CommitOrder(ctx context.Context, ordered []adapter.Record) (bool, string) {
	result := s.applier.Apply(ctx, ordered)
	if !result.Success {
		s.observer.CommitCompleted(OutcomeFailure)
		return false, s.messages.PriorityFailed(result.Message)
	}
	s.observer.CommitCompleted(OutcomeSuccess)

	message := s.messages.PriorityChanged()
	records, status, outcome := s.refresh(ctx)
	s.observer.ListingCompleted(outcome, len(records))
	if outcome == OutcomeError || outcome == OutcomeNoHeader {
		message += " " + status
	}
	return true, message
}

// CommitCurrent commits the session's own priority list.
func (s *Session) CommitCurrent(ctx context.Context) (bool, string) {
	return s.CommitOrder(ctx, s.list.Snapshot())
}

var (
	// ErrUnknownAdapter is returned by Prioritize for names absent from the list.
	ErrUnknownAdapter = errors.New("adapter is not in the current listing")
	// ErrDuplicateAdapter is returned by Prioritize when a name is given twice.
	ErrDuplicateAdapter = errors.New("adapter is named more than once")
)

// Prioritize moves the named adapters to the top in the given order; the rest
// keep their relative order. The list is unchanged when any name is unknown
// or repeated.
func (s *Session) Prioritize(names []string) ([]adapter.Record, error) {
	current := s.list.Snapshot()
	index := make(map[string]struct{}, len(current))
	for _, r := range current {
		index[r.Name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := index[name]; !ok {
			return current, fmt.Errorf("%w: %q", ErrUnknownAdapter, name)
		}
		if _, ok := seen[name]; ok {
			return current, fmt.Errorf("%w: %q", ErrDuplicateAdapter, name)
		}
		seen[name] = struct{}{}
	}
	for target, name := range names {
		for i, r := range s.list.Snapshot() {
			if r.Name == name {
				s.list.MoveItem(i, target)
				break
			}
		}
	}
	return s.list.Snapshot(), nil
}
