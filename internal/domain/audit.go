package domain

// AuditEntry records one assumption or table value consumed by a pipeline
// stage, in the order the stages ran.
type AuditEntry struct {
	Stage         string `json:"stage"`
	Description   string `json:"description"`
	Value         string `json:"value"`
	SourceLabel   string `json:"source_label"`
	SourceLocator string `json:"source_locator"`
}

// AuditLog accumulates citations across a single case run. It is append-only:
// entries are never removed or reordered, and each run gets its own log.
type AuditLog struct {
	entries []AuditEntry
}

// NewAuditLog returns an empty per-run audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Record appends one entry to the log.
func (l *AuditLog) Record(stage, description, value, sourceLabel, sourceLocator string) {
	l.entries = append(l.entries, AuditEntry{
		Stage:         stage,
		Description:   description,
		Value:         value,
		SourceLabel:   sourceLabel,
		SourceLocator: sourceLocator,
	})
}

// RecordCitation appends one entry built from a table citation.
func (l *AuditLog) RecordCitation(stage, description, value string, c Citation) {
	l.Record(stage, description, value, c.SourceLabel, c.SourceLocator)
}

// Entries returns a copy of the ordered entry sequence.
func (l *AuditLog) Entries() []AuditEntry {
	out := make([]AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of recorded entries.
func (l *AuditLog) Len() int {
	return len(l.entries)
}
