package adapter

// Kind is the coarse adapter family derived from the adapter name.
type Kind int

const (
	Unknown Kind = iota
	Wired
	Wireless
)

func (k Kind) String() string {
	switch k {
	case Wired:
		return "wired"
	case Wireless:
		return "wireless"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Record is one connected adapter as reported by the OS.
// Name is unique within a single listing and may contain spaces.
type Record struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Metric int    `json:"metric"`
}

// Names returns adapter names in the order given.
func Names(records []Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
