package history

// Provider exposes the most recent command record of a shell session.
// Implementations must be safe to call once per prompt draw.
type Provider interface {
	// Last returns the most recent record and true, or a zero Record and
	// false when no command has been executed yet.
	Last() (Record, bool, error)
}

// MemoryProvider is an in-memory Provider. It backs sessions where the host
// passes command results directly (e.g., via CLI flags) and is the standard
// test double.
type MemoryProvider struct {
	records []Record
}

// NewMemoryProvider creates a MemoryProvider pre-populated with records.
func NewMemoryProvider(records ...Record) *MemoryProvider {
	return &MemoryProvider{records: records}
}

// Append adds a record as the newest entry.
func (p *MemoryProvider) Append(r Record) {
	p.records = append(p.records, r)
}

// Last implements Provider.
func (p *MemoryProvider) Last() (Record, bool, error) {
	if len(p.records) == 0 {
		return Record{}, false, nil
	}
	return p.records[len(p.records)-1], true, nil
}

// StaticProvider is a Provider with exactly one fixed record. It adapts
// result values the shell shim already extracted (status and duration passed
// as invocation flags) into the Provider interface.
type StaticProvider struct {
	Record Record
	// Empty marks the session as having no executed commands yet.
	Empty bool
}

// Last implements Provider.
func (p *StaticProvider) Last() (Record, bool, error) {
	if p.Empty {
		return Record{}, false, nil
	}
	return p.Record, true, nil
}

// StaticRecord builds a Record from an already-computed command result, for
// hosts that report status and duration directly instead of raw timestamps.
func StaticRecord(status int, durationMillis int64) Record {
	return Record{
		Status: status,
		Start:  0,
		End:    float64(durationMillis) / 1000.0,
	}
}
