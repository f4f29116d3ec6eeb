package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord represents one disbursement event from the SIMRS export.
// An amount of zero denotes a voided/cancelled document; such records stay in
// the table (the report counts them separately) but do not count as realized
// documents. Records are rebuilt wholesale on every load cycle.
type TransactionRecord struct {
	Counterparty   string
	Date           *time.Time // nil when the source cell is unparseable
	DocumentNumber string
	BudgetItemName string
	Amount         decimal.Decimal

	// Derived at build time.
	BudgetCode     string // composite code extracted from the free-text field
	JoinKey        string
	ProgramCode    string
	ControllerCode string
	ControllerName string // empty when the controller code is unmapped
	MonthBucket    string // "YYYY-MM", empty when Date is nil
}

// MonthBucketOf formats a date as the "YYYY-MM" month bucket used for the
// realization month filter.
func MonthBucketOf(t time.Time) string {
	return t.Format("2006-01")
}
