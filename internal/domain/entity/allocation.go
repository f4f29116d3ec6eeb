// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// AllocationLine represents one budgeted line item from the allocation ledger
// (the "MA SMART" export). Lines are built once per load cycle and never
// mutated; a reload discards and rebuilds the whole table.
type AllocationLine struct {
	FundCode     string
	BudgetCode   string // raw composite code, e.g. "520111.5.001"
	Description  string
	BudgetAmount decimal.Decimal

	// Derived at build time.
	ProgramCode    string // first 6-digit group of the budget code
	ControllerCode string // second group, key into the controller enumeration
	ControllerName string
	JoinKey        string // trimmed BudgetCode, shared with TransactionRecord
}
