package entity

import (
	"sort"
	"time"
)

// DatasetSource identifies where the current snapshot's raw tables came from.
type DatasetSource string

const (
	DatasetSourceDrive  DatasetSource = "drive"
	DatasetSourceUpload DatasetSource = "upload"
)

// Dataset is one fully built load cycle: both normalized ledgers plus the
// quality counters for the rows that could not be attributed. Snapshots are
// immutable once published; a reload replaces the whole value.
type Dataset struct {
	Allocations  []*AllocationLine
	Transactions []*TransactionRecord

	// Rows silently excluded by the builders, kept observable so data-quality
	// regressions show up in the load summary instead of disappearing.
	DroppedAllocations  int
	DroppedTransactions int

	Source              DatasetSource
	LoadedAt            time.Time
	LastTransactionDate *time.Time // max transaction date, nil when none parseable
}

// Months returns the sorted distinct month buckets present in the transaction
// table, skipping records without a parseable date.
func (d *Dataset) Months() []string {
	seen := make(map[string]struct{})
	var months []string
	for _, txn := range d.Transactions {
		if txn.MonthBucket == "" {
			continue
		}
		if _, ok := seen[txn.MonthBucket]; ok {
			continue
		}
		seen[txn.MonthBucket] = struct{}{}
		months = append(months, txn.MonthBucket)
	}
	sort.Strings(months)
	return months
}
