package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogPreservesOrder(t *testing.T) {
	log := NewAuditLog()
	log.Record("life_expectancy", "lower bracket", "35", "mortality table", "mortality/female/45")
	log.Record("life_expectancy", "upper bracket", "34", "mortality table", "mortality/female/46")
	log.RecordCitation("worklife", "participation factor", "0.5", Citation{
		SourceLabel:   "worklife table",
		SourceLocator: "worklife/45-54/female/bachelors",
	})

	entries := log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, "mortality/female/45", entries[0].SourceLocator)
	assert.Equal(t, "mortality/female/46", entries[1].SourceLocator)
	assert.Equal(t, "worklife", entries[2].Stage)
	assert.Equal(t, "worklife table", entries[2].SourceLabel)
}

func TestAuditLogEntriesReturnsCopy(t *testing.T) {
	log := NewAuditLog()
	log.Record("discounting", "rate", "0.037", "discount table", "discount/treasury_1y_cmt")

	entries := log.Entries()
	entries[0].Value = "tampered"

	assert.Equal(t, "0.037", log.Entries()[0].Value, "mutating the snapshot must not reach the log")
}

func TestOverrideCitation(t *testing.T) {
	c := OverrideCitation("assumptions/discount_rate_override")
	assert.Equal(t, "user override", c.SourceLabel)
	assert.Equal(t, "assumptions/discount_rate_override", c.SourceLocator)
}
