package problemdoc

import (
	"context"

	"github.com/google/uuid"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
)

// DeleteProblemDocumentInput identifies the record to remove.
type DeleteProblemDocumentInput struct {
	ID uuid.UUID
}

// DeleteProblemDocumentUseCase removes a problem document from the table.
type DeleteProblemDocumentUseCase struct {
	store adapter.ProblemDocumentStore
}

// NewDeleteProblemDocumentUseCase creates a new DeleteProblemDocumentUseCase instance.
func NewDeleteProblemDocumentUseCase(store adapter.ProblemDocumentStore) *DeleteProblemDocumentUseCase {
	return &DeleteProblemDocumentUseCase{store: store}
}

// Execute removes the record and persists the remaining table with its order
// preserved. Identifiers of the remaining records are unaffected by the
// removal.
func (uc *DeleteProblemDocumentUseCase) Execute(ctx context.Context, input DeleteProblemDocumentInput) error {
	docs, version, err := uc.store.ReadAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*entity.ProblemDocument, 0, len(docs))
	found := false
	for _, doc := range docs {
		if doc.ID == input.ID {
			found = true
			continue
		}
		remaining = append(remaining, doc)
	}
	if !found {
		return notFound(input.ID)
	}

	return uc.store.OverwriteAll(ctx, remaining, version)
}
