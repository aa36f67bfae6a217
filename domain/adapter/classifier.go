package adapter

import "strings"

var (
	DefaultWirelessMarkers = []string{"wi-fi", "wireless", "wlan", "무선"}
	DefaultWiredMarkers    = []string{"ethernet", "이더넷"}
	DefaultExcludedMarkers = []string{"loopback", "vpn"}
)

// Classifier maps adapter names to a Kind using case-insensitive substring markers.
type Classifier struct {
	wireless []string
	wired    []string
	excluded []string
}

func NewClassifier(wireless, wired, excluded []string) Classifier {
	return Classifier{
		wireless: lowerAll(wireless),
		wired:    lowerAll(wired),
		excluded: lowerAll(excluded),
	}
}

func NewDefaultClassifier() Classifier {
	return NewClassifier(DefaultWirelessMarkers, DefaultWiredMarkers, DefaultExcludedMarkers)
}

// Classify reports the adapter kind, or excluded=true when the name carries an
// exclusion marker. Exclusion wins over any kind marker.
func (c Classifier) Classify(name string) (kind Kind, excluded bool) {
	lower := strings.ToLower(name)
	if containsAny(lower, c.excluded) {
		return Unknown, true
	}
	if containsAny(lower, c.wireless) {
		return Wireless, false
	}
	if containsAny(lower, c.wired) {
		return Wired, false
	}
	return Unknown, false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
