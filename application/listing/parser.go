package listing

import (
	"slices"
	"strconv"
	"strings"

	"netprio/domain/adapter"
)

const (
	dividerMarker = "---"
	minColumns    = 4 // Idx, Met, MTU, State
	stateColumn   = 3
	metricColumn  = 1
)

var (
	DefaultConnectedStates    = []string{"connected"}
	DefaultDisconnectedStates = []string{"disconnected"}
)

// Result is a successful parse. Skipped counts rows dropped as malformed,
// filtered or duplicate; it is informational only.
type Result struct {
	Adapters []adapter.Record
	Skipped  int
}

// Parser turns `netsh interface ipv4 show interfaces` text into adapter records.
type Parser struct {
	classifier   adapter.Classifier
	connected    []string
	disconnected []string
}

func NewParser(classifier adapter.Classifier, connectedStates, disconnectedStates []string) *Parser {
	return &Parser{
		classifier:   classifier,
		connected:    lower(connectedStates),
		disconnected: lower(disconnectedStates),
	}
}

func NewDefaultParser() *Parser {
	return NewParser(adapter.NewDefaultClassifier(), DefaultConnectedStates, DefaultDisconnectedStates)
}

// Parse locates the divider line and parses every row after it. Only a missing
// divider is an error; malformed rows are skipped.
func (p *Parser) Parse(text string) (Result, error) {
	lines := strings.Split(text, "\n")
	header := -1
	for i, line := range lines {
		if strings.Contains(line, dividerMarker) {
			header = i
			break
		}
	}
	if header == -1 {
		return Result{}, &NoHeaderError{Lines: len(lines)}
	}

	var result Result
	seen := make(map[string]struct{})
	for _, line := range lines[header+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, ok := p.parseRow(line)
		if !ok {
			result.Skipped++
			continue
		}
		if _, dup := seen[record.Name]; dup {
			result.Skipped++
			continue
		}
		seen[record.Name] = struct{}{}
		result.Adapters = append(result.Adapters, record)
	}

	slices.SortStableFunc(result.Adapters, func(a, b adapter.Record) int {
		return a.Metric - b.Metric
	})
	return result, nil
}

func (p *Parser) parseRow(line string) (adapter.Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < minColumns {
		return adapter.Record{}, false
	}
	name := strings.Join(fields[minColumns:], " ")
	if name == "" {
		return adapter.Record{}, false
	}
	if !p.isConnected(fields[stateColumn]) {
		return adapter.Record{}, false
	}
	kind, excluded := p.classifier.Classify(name)
	if excluded {
		return adapter.Record{}, false
	}
	metric, err := strconv.Atoi(fields[metricColumn])
	if err != nil || metric < 0 {
		return adapter.Record{}, false
	}
	return adapter.Record{Name: name, Kind: kind, Metric: metric}, true
}

// isConnected treats "Disconnected" as not connected even though it contains
// the connected marker.
func (p *Parser) isConnected(state string) bool {
	state = strings.ToLower(state)
	for _, marker := range p.disconnected {
		if strings.Contains(state, marker) {
			return false
		}
	}
	for _, marker := range p.connected {
		if strings.Contains(state, marker) {
			return true
		}
	}
	return false
}

func lower(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
