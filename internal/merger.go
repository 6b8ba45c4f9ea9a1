package internal

// MergePolicy selects which sources are filtered against seen keys
type MergePolicy int

const (
	// PolicyLegacy appends seeded sources unconditionally and filters only
	// later sources against their keys.
	PolicyLegacy MergePolicy = iota
	// PolicyStrict filters every source, including seeded ones.
	PolicyStrict
)

func (p MergePolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "legacy"
}

// MergeStats counts merger decisions
type MergeStats struct {
	Seeded  int `yaml:"seeded"`
	Added   int `yaml:"added"`
	Skipped int `yaml:"skipped"`
}

// Merger combines record sources in priority order, keeping the first record
// seen for each deduplication key.
type Merger struct {
	policy  MergePolicy
	seen    map[string]bool
	records []Record
	stats   MergeStats
}

// NewMerger creates an empty merger
func NewMerger(policy MergePolicy) *Merger {
	return &Merger{
		policy:  policy,
		seen:    make(map[string]bool),
		records: make([]Record, 0),
	}
}

// Seed appends records and registers their keys. Under PolicyLegacy no
// record is dropped, even when keys repeat; under PolicyStrict Seed behaves
// like Filter. Returns the number of records appended.
func (m *Merger) Seed(records []Record) int {
	if m.policy == PolicyStrict {
		added, _ := m.Filter(records)
		return added
	}
	for _, r := range records {
		m.seen[DedupKey(r)] = true
		m.records = append(m.records, r)
	}
	m.stats.Seeded += len(records)
	return len(records)
}

// Filter appends records whose key has not been seen yet and drops the rest.
func (m *Merger) Filter(records []Record) (added, skipped int) {
	for _, r := range records {
		key := DedupKey(r)
		if m.seen[key] {
			LogDebug("Skipping duplicate prompt %q", key)
			skipped++
			continue
		}
		m.seen[key] = true
		m.records = append(m.records, r)
		added++
	}
	m.stats.Added += added
	m.stats.Skipped += skipped
	return added, skipped
}

// Seen reports whether a key has been registered
func (m *Merger) Seen(key string) bool {
	return m.seen[key]
}

// Records returns the merged records in insertion order
func (m *Merger) Records() []Record {
	return m.records
}

// Stats returns counts accumulated so far
func (m *Merger) Stats() MergeStats {
	return m.stats
}
