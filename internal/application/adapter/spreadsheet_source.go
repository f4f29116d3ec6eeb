// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SourceID identifies one of the configured spreadsheet exports.
type SourceID string

const (
	// SourceAllocations is the budget-allocation ledger export ("MA SMART").
	SourceAllocations SourceID = "allocations"
	// SourceTransactions is the SIMRS transaction ledger export.
	SourceTransactions SourceID = "transactions"
)

// RawTable is an ordered sequence of rows of untyped cell values, exactly as
// decoded from a spreadsheet. Rows may have differing lengths; cell typing is
// the ledger builders' job.
type RawTable [][]string

// SpreadsheetSource produces raw tabular rows for a source identifier. The
// implementation owns connectivity, timeouts and retries; the core only sees
// an already-fetched table or a failure that is fatal for the load cycle.
type SpreadsheetSource interface {
	// Fetch retrieves the raw table for the given source.
	Fetch(ctx context.Context, id SourceID) (RawTable, error)
}

// SnapshotCache optionally caches fetched raw tables between process restarts
// so a reload within the TTL does not refetch the remote export. Implementations
// must be safe to skip entirely; a cache miss is never an error for the caller.
type SnapshotCache interface {
	// Get returns the cached raw table for a source, ok=false on miss.
	Get(ctx context.Context, id SourceID) (RawTable, bool, error)

	// Set stores the raw table for a source.
	Set(ctx context.Context, id SourceID, table RawTable) error

	// Invalidate drops any cached tables.
	Invalidate(ctx context.Context) error
}
