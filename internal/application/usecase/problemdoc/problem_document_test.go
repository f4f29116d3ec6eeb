package problemdoc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// fakeStore mimics the overwrite-only backing table, including the stale
// version rejection.
type fakeStore struct {
	docs    []*entity.ProblemDocument
	version int64

	readErr  error
	writeErr error
	writes   int
}

func (s *fakeStore) ReadAll(ctx context.Context) ([]*entity.ProblemDocument, int64, error) {
	if s.readErr != nil {
		return nil, 0, s.readErr
	}
	out := make([]*entity.ProblemDocument, len(s.docs))
	copy(out, s.docs)
	return out, s.version, nil
}

func (s *fakeStore) OverwriteAll(ctx context.Context, docs []*entity.ProblemDocument, version int64) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	if version != s.version {
		return domainerror.NewProblemDocumentError(
			domainerror.ErrCodeConcurrentModification,
			"stale version token",
			domainerror.ErrConcurrentModification,
		)
	}
	s.docs = docs
	s.version++
	s.writes++
	return nil
}

func (s *fakeStore) Healthy(ctx context.Context) bool { return true }

func validInput() CreateProblemDocumentInput {
	return CreateProblemDocumentInput{
		VerificationDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Company:          "PT MAJU JAYA",
		Note:             "selisih pembayaran",
		DocumentNumber:   "BKU-001",
		Amount:           decimal.NewFromInt(250000),
		IssueDescription: "bukti transfer belum lengkap",
	}
}

func TestCreateProblemDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("appends at the end of the table", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewCreateProblemDocumentUseCase(store)

		first, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		second := validInput()
		second.DocumentNumber = "BKU-002"
		if _, err := uc.Execute(ctx, second); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if len(store.docs) != 2 {
			t.Fatalf("stored %d docs, want 2", len(store.docs))
		}
		if store.docs[0].ID != first.Document.ID {
			t.Errorf("first stored doc is not the first created one")
		}
		if store.docs[1].DocumentNumber != "BKU-002" {
			t.Errorf("second doc = %q, want BKU-002", store.docs[1].DocumentNumber)
		}
	})

	t.Run("assigns a fresh identifier and entry date", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewCreateProblemDocumentUseCase(store)

		out, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Document.ID == uuid.Nil {
			t.Errorf("doc ID is nil")
		}
		if out.Document.EntryDate.IsZero() {
			t.Errorf("entry date not set")
		}
		if out.Document.Status != entity.ProblemDocumentPending {
			t.Errorf("status = %q, want PENDING by default", out.Document.Status)
		}
	})

	t.Run("resolved flag sets RESOLVED at entry time", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewCreateProblemDocumentUseCase(store)

		input := validInput()
		input.Resolved = true
		out, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Document.Status != entity.ProblemDocumentResolved {
			t.Errorf("status = %q, want RESOLVED", out.Document.Status)
		}
	})

	t.Run("rejects blank required fields without writing", func(t *testing.T) {
		for _, field := range []string{"company", "document number", "issue description"} {
			input := validInput()
			switch field {
			case "company":
				input.Company = "   "
			case "document number":
				input.DocumentNumber = ""
			case "issue description":
				input.IssueDescription = "\t"
			}

			store := &fakeStore{}
			uc := NewCreateProblemDocumentUseCase(store)
			_, err := uc.Execute(ctx, input)
			if !errors.Is(err, domainerror.ErrMissingRequiredField) {
				t.Errorf("%s: error = %v, want ErrMissingRequiredField", field, err)
			}
			if store.writes != 0 {
				t.Errorf("%s: store written despite validation failure", field)
			}
		}
	})

	t.Run("rejects negative amounts, zero is allowed", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewCreateProblemDocumentUseCase(store)

		input := validInput()
		input.Amount = decimal.NewFromInt(-1)
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrNegativeAmount) {
			t.Errorf("error = %v, want ErrNegativeAmount", err)
		}

		input.Amount = decimal.Zero
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Errorf("zero amount rejected: %v", err)
		}
	})

	t.Run("stale version token surfaces as concurrent modification", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewCreateProblemDocumentUseCase(store)

		if _, err := uc.Execute(ctx, validInput()); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		// Another session writes between this session's read and write.
		store.writeErr = domainerror.NewProblemDocumentError(
			domainerror.ErrCodeConcurrentModification,
			"stale version token",
			domainerror.ErrConcurrentModification,
		)
		_, err := uc.Execute(ctx, validInput())
		if !errors.Is(err, domainerror.ErrConcurrentModification) {
			t.Errorf("error = %v, want ErrConcurrentModification", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeStore, *entity.ProblemDocument) {
		t.Helper()
		store := &fakeStore{}
		out, err := NewCreateProblemDocumentUseCase(store).Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return store, out.Document
	}

	t.Run("toggles to RESOLVED and back", func(t *testing.T) {
		store, doc := seed(t)
		uc := NewUpdateStatusUseCase(store)

		out, err := uc.Execute(ctx, UpdateStatusInput{ID: doc.ID, Status: entity.ProblemDocumentResolved})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Document.Status != entity.ProblemDocumentResolved {
			t.Errorf("status = %q, want RESOLVED", out.Document.Status)
		}
		if store.docs[0].Status != entity.ProblemDocumentResolved {
			t.Errorf("persisted status = %q, want RESOLVED", store.docs[0].Status)
		}

		if _, err := uc.Execute(ctx, UpdateStatusInput{ID: doc.ID, Status: entity.ProblemDocumentPending}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if store.docs[0].Status != entity.ProblemDocumentPending {
			t.Errorf("persisted status = %q, want PENDING", store.docs[0].Status)
		}
	})

	t.Run("rejects values outside the enumeration", func(t *testing.T) {
		store, doc := seed(t)
		uc := NewUpdateStatusUseCase(store)

		_, err := uc.Execute(ctx, UpdateStatusInput{ID: doc.ID, Status: "DONE"})
		if !errors.Is(err, domainerror.ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
		if store.writes != 1 {
			t.Errorf("store written despite invalid status")
		}
	})

	t.Run("unknown identifier is not found", func(t *testing.T) {
		store, _ := seed(t)
		uc := NewUpdateStatusUseCase(store)

		_, err := uc.Execute(ctx, UpdateStatusInput{ID: uuid.New(), Status: entity.ProblemDocumentResolved})
		if !errors.Is(err, domainerror.ErrProblemDocumentNotFound) {
			t.Errorf("error = %v, want ErrProblemDocumentNotFound", err)
		}
	})
}

func TestDeleteProblemDocument(t *testing.T) {
	ctx := context.Background()

	seedThree := func(t *testing.T) (*fakeStore, []*entity.ProblemDocument) {
		t.Helper()
		store := &fakeStore{}
		uc := NewCreateProblemDocumentUseCase(store)
		var docs []*entity.ProblemDocument
		for _, num := range []string{"BKU-001", "BKU-002", "BKU-003"} {
			input := validInput()
			input.DocumentNumber = num
			out, err := uc.Execute(ctx, input)
			if err != nil {
				t.Fatalf("seed %s: %v", num, err)
			}
			docs = append(docs, out.Document)
		}
		return store, docs
	}

	t.Run("removes only the addressed record, order preserved", func(t *testing.T) {
		store, docs := seedThree(t)
		uc := NewDeleteProblemDocumentUseCase(store)

		if err := uc.Execute(ctx, DeleteProblemDocumentInput{ID: docs[1].ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(store.docs) != 2 {
			t.Fatalf("stored %d docs, want 2", len(store.docs))
		}
		if store.docs[0].ID != docs[0].ID || store.docs[1].ID != docs[2].ID {
			t.Errorf("remaining records reordered or wrong record removed")
		}
	})

	t.Run("surviving identifiers still address their records after a delete", func(t *testing.T) {
		store, docs := seedThree(t)

		if err := NewDeleteProblemDocumentUseCase(store).Execute(ctx, DeleteProblemDocumentInput{ID: docs[0].ID}); err != nil {
			t.Fatalf("delete: %v", err)
		}

		out, err := NewUpdateStatusUseCase(store).Execute(ctx, UpdateStatusInput{
			ID:     docs[2].ID,
			Status: entity.ProblemDocumentResolved,
		})
		if err != nil {
			t.Fatalf("update after delete: %v", err)
		}
		if out.Document.DocumentNumber != "BKU-003" {
			t.Errorf("updated %q, want BKU-003", out.Document.DocumentNumber)
		}
	})

	t.Run("unknown identifier is not found and leaves the table intact", func(t *testing.T) {
		store, _ := seedThree(t)
		uc := NewDeleteProblemDocumentUseCase(store)

		err := uc.Execute(ctx, DeleteProblemDocumentInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrProblemDocumentNotFound) {
			t.Errorf("error = %v, want ErrProblemDocumentNotFound", err)
		}
		if len(store.docs) != 3 {
			t.Errorf("table size changed on failed delete")
		}
	})
}

func TestListProblemDocuments(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{}
	create := NewCreateProblemDocumentUseCase(store)
	entries := []struct {
		company string
		docNum  string
		date    time.Time
		status  bool
	}{
		{"PT MAJU JAYA", "BKU-001", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"CV SUMBER REZEKI", "BKU-002", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), true},
		{"PT MAJU JAYA", "INV-003", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), false},
	}
	for _, e := range entries {
		input := validInput()
		input.Company = e.company
		input.DocumentNumber = e.docNum
		input.VerificationDate = e.date
		input.Resolved = e.status
		if _, err := create.Execute(ctx, input); err != nil {
			t.Fatalf("seed %s: %v", e.docNum, err)
		}
	}

	uc := NewListProblemDocumentsUseCase(store)

	t.Run("no criteria returns everything in insertion order", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListProblemDocumentsInput{})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Documents) != 3 {
			t.Fatalf("len = %d, want 3", len(out.Documents))
		}
		if out.Documents[0].DocumentNumber != "BKU-001" || out.Documents[2].DocumentNumber != "INV-003" {
			t.Errorf("insertion order not preserved")
		}
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListProblemDocumentsInput{
			Companies:              []string{"PT MAJU JAYA"},
			DocumentNumberContains: "bku",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Documents) != 1 || out.Documents[0].DocumentNumber != "BKU-001" {
			t.Fatalf("got %d docs, want only BKU-001", len(out.Documents))
		}
	})

	t.Run("date range is inclusive on the verification date", func(t *testing.T) {
		from := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
		out, err := uc.Execute(ctx, ListProblemDocumentsInput{StartDate: &from, EndDate: &to})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Documents) != 2 {
			t.Fatalf("len = %d, want 2", len(out.Documents))
		}
	})

	t.Run("status filter", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListProblemDocumentsInput{
			Statuses: []entity.ProblemDocumentStatus{entity.ProblemDocumentResolved},
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Documents) != 1 || out.Documents[0].DocumentNumber != "BKU-002" {
			t.Fatalf("resolved filter returned %d docs", len(out.Documents))
		}
	})

	t.Run("read failure propagates", func(t *testing.T) {
		broken := &fakeStore{readErr: domainerror.NewProblemDocumentError(
			domainerror.ErrCodeStoreUnavailable,
			"store unreachable",
			domainerror.ErrStoreUnavailable,
		)}
		_, err := NewListProblemDocumentsUseCase(broken).Execute(ctx, ListProblemDocumentsInput{})
		if !errors.Is(err, domainerror.ErrStoreUnavailable) {
			t.Errorf("error = %v, want ErrStoreUnavailable", err)
		}
	})
}
