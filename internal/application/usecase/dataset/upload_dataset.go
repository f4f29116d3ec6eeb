package dataset

import (
	"context"
	"log/slog"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	"github.com/simrs-budget/backend/internal/domain/valueobject"
)

// UploadDatasetInput carries the two already-decoded workbooks of a manual
// upload. Decoding the uploaded files is the HTTP layer's job.
type UploadDatasetInput struct {
	AllocationRows  adapter.RawTable
	TransactionRows adapter.RawTable
}

// UploadDatasetOutput summarizes the published snapshot.
type UploadDatasetOutput struct {
	Dataset *entity.Dataset
}

// UploadDatasetUseCase replaces the current snapshot with manually uploaded
// exports. The uploaded data stays active until the next drive reload.
type UploadDatasetUseCase struct {
	controllers valueobject.ControllerMap
	holder      *Holder
}

// NewUploadDatasetUseCase creates a new UploadDatasetUseCase instance.
func NewUploadDatasetUseCase(controllers valueobject.ControllerMap, holder *Holder) *UploadDatasetUseCase {
	return &UploadDatasetUseCase{
		controllers: controllers,
		holder:      holder,
	}
}

// Execute builds and publishes the uploaded dataset.
func (uc *UploadDatasetUseCase) Execute(ctx context.Context, input UploadDatasetInput) (*UploadDatasetOutput, error) {
	ds, err := Build(input.AllocationRows, input.TransactionRows, uc.controllers, entity.DatasetSourceUpload)
	if err != nil {
		return nil, err
	}

	uc.holder.Publish(ds)
	slog.Info("Dataset replaced from manual upload",
		"allocations", len(ds.Allocations),
		"transactions", len(ds.Transactions),
	)

	return &UploadDatasetOutput{Dataset: ds}, nil
}
