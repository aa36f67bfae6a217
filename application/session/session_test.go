package session

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"netprio/application/listing"
	"netprio/application/reconcile"
	"netprio/domain/adapter"
)

const tableHeader = "Idx Met MTU State Name\n--- --- --- ----- ----\n"

// fakeOS answers the interface query from an in-memory metric table and
// applies metric batches to it unless failApply is set.
type fakeOS struct {
	rows      map[string]int
	order     []string
	queryErr  error
	raw       []byte
	failApply error
	batches   [][]adapter.MetricAssignment
}

func newFakeOS(rows ...any) *fakeOS {
	f := &fakeOS{rows: map[string]int{}}
	for i := 0; i+1 < len(rows); i += 2 {
		name := rows[i].(string)
		f.rows[name] = rows[i+1].(int)
		f.order = append(f.order, name)
	}
	return f
}

func (f *fakeOS) ShowInterfaces(context.Context) ([]byte, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.raw != nil {
		return f.raw, nil
	}
	var b strings.Builder
	b.WriteString(tableHeader)
	for i, name := range f.order {
		fmt.Fprintf(&b, "%d %d 1500 connected %s\n", i+1, f.rows[name], name)
	}
	return []byte(b.String()), nil
}

func (f *fakeOS) SetInterfaceMetrics(_ context.Context, a []adapter.MetricAssignment) error {
	f.batches = append(f.batches, a)
	if f.failApply != nil {
		return f.failApply
	}
	for _, x := range a {
		f.rows[x.Name] = x.Metric
	}
	return nil
}

type plainDecoder struct{}

func (plainDecoder) Decode(data []byte) string { return string(data) }

type testMessages struct{}

func (testMessages) AdaptersFound(n int) string          { return fmt.Sprintf("adapters found: %d", n) }
func (testMessages) NoAdapters() string                  { return "no connected adapters" }
func (testMessages) NoHeader() string                    { return "no header" }
func (testMessages) Error(detail string) string          { return "error: " + detail }
func (testMessages) PriorityChanged() string             { return "changed" }
func (testMessages) PriorityFailed(detail string) string { return "failed: " + detail }

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

type recordingObserver struct {
	listings []string
	commits  []string
}

func (r *recordingObserver) ListingCompleted(outcome string, _ int) {
	r.listings = append(r.listings, outcome)
}
func (r *recordingObserver) CommitCompleted(outcome string) { r.commits = append(r.commits, outcome) }

func newTestSession(host *fakeOS) *Session {
	return NewSession(
		host,
		plainDecoder{},
		listing.NewDefaultParser(),
		reconcile.NewReconciler(host, nopLogger{}, 1, 10),
		testMessages{},
		nopLogger{},
	)
}

func TestSession_ListAdapters(t *testing.T) {
	host := newFakeOS("Wi-Fi", 50, "Ethernet", 10)
	s := newTestSession(host)

	records, status := s.ListAdapters(context.Background())
	if status != "adapters found: 2" {
		t.Fatalf("unexpected status %q", status)
	}
	if got := adapter.Names(records); !reflect.DeepEqual(got, []string{"Ethernet", "Wi-Fi"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if !reflect.DeepEqual(s.Snapshot(), records) {
		t.Fatal("snapshot must match listing")
	}
}

func TestSession_ListAdapters_NoConnected(t *testing.T) {
	host := newFakeOS()
	host.raw = []byte(tableHeader + "1 10 1500 disconnected Ethernet\n")
	records, status := newTestSession(host).ListAdapters(context.Background())
	if len(records) != 0 || status != "no connected adapters" {
		t.Fatalf("got %v / %q", records, status)
	}
}

func TestSession_ScenarioD_NoHeader(t *testing.T) {
	host := newFakeOS("Ethernet", 10)
	s := newTestSession(host)
	s.ListAdapters(context.Background())

	host.raw = []byte("The following command was not found: interface ipv4 show interfaces.\n")
	obs := &recordingObserver{}
	s.SetObserver(obs)

	records, status := s.ListAdapters(context.Background())
	if len(records) != 0 {
		t.Fatalf("expected empty listing, got %v", records)
	}
	if status != "error: no header" {
		t.Fatalf("unexpected status %q", status)
	}
	if len(s.Snapshot()) != 0 {
		t.Fatal("priority list must be emptied on failed listing")
	}
	if !reflect.DeepEqual(obs.listings, []string{OutcomeNoHeader}) {
		t.Fatalf("unexpected observed outcomes %v", obs.listings)
	}
}

func TestSession_ListAdapters_QueryError(t *testing.T) {
	host := newFakeOS()
	host.queryErr = errors.New("exec: netsh not found")
	records, status := newTestSession(host).ListAdapters(context.Background())
	if len(records) != 0 || status != "error: exec: netsh not found" {
		t.Fatalf("got %v / %q", records, status)
	}
}

func TestSession_Reorder(t *testing.T) {
	s := newTestSession(newFakeOS("A", 1, "B", 2, "C", 3))
	s.ListAdapters(context.Background())

	got := adapter.Names(s.Reorder(2, 0))
	if !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Fatalf("unexpected order %v", got)
	}
	got = adapter.Names(s.Reorder(0, 100))
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("unexpected order after clamped move %v", got)
	}
}

func TestSession_CommitOrder_RelistsFromOS(t *testing.T) {
	host := newFakeOS("A", 5, "B", 30, "C", 40)
	s := newTestSession(host)
	s.ListAdapters(context.Background())
	ordered := s.Reorder(2, 0) // C, A, B

	ok, msg := s.CommitOrder(context.Background(), ordered)
	if !ok || msg != "changed" {
		t.Fatalf("got %v / %q", ok, msg)
	}
	want := []adapter.Record{
		{Name: "C", Kind: adapter.Unknown, Metric: 1},
		{Name: "A", Kind: adapter.Unknown, Metric: 11},
		{Name: "B", Kind: adapter.Unknown, Metric: 21},
	}
	if !reflect.DeepEqual(s.Snapshot(), want) {
		t.Fatalf("got %+v, want %+v", s.Snapshot(), want)
	}
}

func TestSession_ScenarioE_ApplyFailure(t *testing.T) {
	host := newFakeOS("A", 5, "B", 30)
	host.failApply = errors.New("SetInterfaceMetrics error: exit status 1, output: Element not found.")
	s := newTestSession(host)
	s.ListAdapters(context.Background())
	reordered := s.Reorder(1, 0)

	ok, msg := s.CommitOrder(context.Background(), reordered)
	if ok {
		t.Fatal("expected failure")
	}
	if msg != "failed: "+host.failApply.Error() {
		t.Fatalf("unexpected message %q", msg)
	}
	if !reflect.DeepEqual(s.Snapshot(), reordered) {
		t.Fatal("failed commit must keep the user's order")
	}

	records, _ := s.ListAdapters(context.Background())
	want := []adapter.Record{{Name: "A", Metric: 5}, {Name: "B", Metric: 30}}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("listing must reflect pre-failure OS state, got %+v", records)
	}
}

func TestSession_CommitOrder_RefreshFailureIsReported(t *testing.T) {
	host := newFakeOS("A", 5)
	s := newTestSession(host)
	ordered, _ := s.ListAdapters(context.Background())
	host.raw = []byte("garbage without divider")

	ok, msg := s.CommitOrder(context.Background(), ordered)
	if !ok {
		t.Fatal("apply itself succeeded")
	}
	if msg != "changed error: no header" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestSession_CommitObserved(t *testing.T) {
	host := newFakeOS("A", 5)
	s := newTestSession(host)
	obs := &recordingObserver{}
	s.SetObserver(obs)
	s.ListAdapters(context.Background())
	s.CommitCurrent(context.Background())

	if !reflect.DeepEqual(obs.commits, []string{OutcomeSuccess}) {
		t.Fatalf("unexpected commits %v", obs.commits)
	}
	if !reflect.DeepEqual(obs.listings, []string{OutcomeOK, OutcomeOK}) {
		t.Fatalf("unexpected listings %v", obs.listings)
	}
	s.SetObserver(nil)
	s.CommitCurrent(context.Background())
}

func TestSession_Prioritize(t *testing.T) {
	s := newTestSession(newFakeOS("A", 1, "B", 2, "C", 3, "D", 4))
	s.ListAdapters(context.Background())

	got, err := s.Prioritize([]string{"C", "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := adapter.Names(got); !reflect.DeepEqual(names, []string{"C", "A", "B", "D"}) {
		t.Fatalf("unexpected order %v", names)
	}

	before := s.Snapshot()
	if _, err := s.Prioritize([]string{"B", "nope"}); !errors.Is(err, ErrUnknownAdapter) {
		t.Fatalf("expected ErrUnknownAdapter, got %v", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Fatal("unknown name must leave the list unchanged")
	}
}

func TestSession_Prioritize_RejectsRepeatedNames(t *testing.T) {
	host := newFakeOS("A", 1, "B", 2, "C", 3)
	s := newTestSession(host)
	s.ListAdapters(context.Background())
	before := s.Snapshot()

	if _, err := s.Prioritize([]string{"C", "C"}); !errors.Is(err, ErrDuplicateAdapter) {
		t.Fatalf("expected ErrDuplicateAdapter, got %v", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Fatal("repeated name must leave the list unchanged")
	}
}
