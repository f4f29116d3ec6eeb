package dataset

import (
	"context"
	"log/slog"
	"time"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/application/usecase/ledger"
	"github.com/simrs-budget/backend/internal/domain/entity"
	"github.com/simrs-budget/backend/internal/domain/valueobject"
)

// LoadDatasetInput represents the options for a load cycle.
type LoadDatasetInput struct {
	// Force bypasses the snapshot cache and refetches both exports.
	Force bool
}

// LoadDatasetOutput summarizes the completed load cycle.
type LoadDatasetOutput struct {
	Dataset *entity.Dataset
}

// LoadDatasetUseCase fetches both spreadsheet exports, builds the normalized
// ledgers and publishes the new snapshot. A fetch or build failure is fatal
// for the cycle and leaves the previous snapshot in place.
type LoadDatasetUseCase struct {
	source      adapter.SpreadsheetSource
	cache       adapter.SnapshotCache // nil disables caching
	controllers valueobject.ControllerMap
	holder      *Holder
	alerter     *OverBudgetAlerter // nil disables alerts
}

// NewLoadDatasetUseCase creates a new LoadDatasetUseCase instance.
func NewLoadDatasetUseCase(
	source adapter.SpreadsheetSource,
	cache adapter.SnapshotCache,
	controllers valueobject.ControllerMap,
	holder *Holder,
	alerter *OverBudgetAlerter,
) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{
		source:      source,
		cache:       cache,
		controllers: controllers,
		holder:      holder,
		alerter:     alerter,
	}
}

// Execute performs one full load cycle.
func (uc *LoadDatasetUseCase) Execute(ctx context.Context, input LoadDatasetInput) (*LoadDatasetOutput, error) {
	if input.Force && uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate snapshot cache", "error", err)
		}
	}

	allocRows, err := uc.fetch(ctx, adapter.SourceAllocations)
	if err != nil {
		return nil, err
	}
	txnRows, err := uc.fetch(ctx, adapter.SourceTransactions)
	if err != nil {
		return nil, err
	}

	ds, err := Build(allocRows, txnRows, uc.controllers, entity.DatasetSourceDrive)
	if err != nil {
		return nil, err
	}

	uc.holder.Publish(ds)
	slog.Info("Dataset loaded",
		"allocations", len(ds.Allocations),
		"transactions", len(ds.Transactions),
		"dropped_allocations", ds.DroppedAllocations,
		"dropped_transactions", ds.DroppedTransactions,
	)

	if uc.alerter != nil {
		uc.alerter.Notify(ctx, ds)
	}

	return &LoadDatasetOutput{Dataset: ds}, nil
}

// fetch goes through the snapshot cache when one is configured; a cache error
// falls back to the source rather than failing the cycle.
func (uc *LoadDatasetUseCase) fetch(ctx context.Context, id adapter.SourceID) (adapter.RawTable, error) {
	if uc.cache != nil {
		table, ok, err := uc.cache.Get(ctx, id)
		if err != nil {
			slog.Warn("Snapshot cache read failed", "source", string(id), "error", err)
		} else if ok {
			return table, nil
		}
	}

	table, err := uc.source.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, id, table); err != nil {
			slog.Warn("Snapshot cache write failed", "source", string(id), "error", err)
		}
	}
	return table, nil
}

// Build constructs a Dataset from two raw tables. Shared by the drive load
// path and the manual upload path.
func Build(
	allocRows, txnRows adapter.RawTable,
	controllers valueobject.ControllerMap,
	source entity.DatasetSource,
) (*entity.Dataset, error) {
	allocations, droppedAlloc, err := ledger.BuildAllocations(allocRows, controllers)
	if err != nil {
		return nil, err
	}
	transactions, droppedTxn, err := ledger.BuildTransactions(txnRows, controllers)
	if err != nil {
		return nil, err
	}

	ds := &entity.Dataset{
		Allocations:         allocations,
		Transactions:        transactions,
		DroppedAllocations:  droppedAlloc,
		DroppedTransactions: droppedTxn,
		Source:              source,
		LoadedAt:            time.Now().UTC(),
		LastTransactionDate: lastTransactionDate(transactions),
	}
	return ds, nil
}

func lastTransactionDate(transactions []*entity.TransactionRecord) *time.Time {
	var latest *time.Time
	for _, txn := range transactions {
		if txn.Date == nil {
			continue
		}
		if latest == nil || txn.Date.After(*latest) {
			latest = txn.Date
		}
	}
	return latest
}
