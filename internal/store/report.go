package store

// LoadReport lists everything the lenient loader dropped or rewrote, so the
// tolerant-read policy stays observable instead of silent.
type LoadReport struct {
	Skipped   []SkippedRecord
	Defaulted []DefaultedField
	Migrated  []string
}

// Empty reports whether the load was fully clean.
func (r LoadReport) Empty() bool {
	return len(r.Skipped) == 0 && len(r.Defaulted) == 0 && len(r.Migrated) == 0
}

// SkippedRecord identifies one persisted line that could not be used.
type SkippedRecord struct {
	Line   int
	Reason string
}

// DefaultedField identifies one optional field that was filled in on load.
type DefaultedField struct {
	Email string
	Field string
}
