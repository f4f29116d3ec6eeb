// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
	"github.com/simrs-budget/backend/internal/integration/persistence/model"
)

// problemDocumentStore implements the adapter.ProblemDocumentStore interface
// on a relational database. The overwrite-only contract is kept deliberately:
// every write replaces the whole table inside one transaction, guarded by the
// version row.
type problemDocumentStore struct {
	db *gorm.DB
}

// NewProblemDocumentStore creates a new problem document store instance.
func NewProblemDocumentStore(db *gorm.DB) adapter.ProblemDocumentStore {
	return &problemDocumentStore{db: db}
}

// ReadAll returns the full table in stored order with the current version
// token. A missing version row means an empty table at version zero.
//
// Both reads happen inside one transaction, version row first. A writer
// committing in between can therefore only make the returned token older
// than the table, and a later OverwriteAll with that token fails the
// version check instead of silently discarding the concurrent write.
func (s *problemDocumentStore) ReadAll(ctx context.Context) ([]*entity.ProblemDocument, int64, error) {
	var models []model.ProblemDocumentModel
	var version int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.currentVersion(ctx, tx)
		if err != nil {
			return err
		}
		version = current

		if err := tx.Order("position asc").Find(&models).Error; err != nil {
			return storeUnavailable(err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	docs := make([]*entity.ProblemDocument, 0, len(models))
	for i := range models {
		docs = append(docs, models[i].ToEntity())
	}
	return docs, version, nil
}

// OverwriteAll replaces the persisted table. The version row is checked and
// bumped inside the same transaction, so a concurrent writer makes exactly
// one of the two sessions fail with ErrConcurrentModification.
func (s *problemDocumentStore) OverwriteAll(ctx context.Context, docs []*entity.ProblemDocument, version int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.currentVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return domainerror.NewProblemDocumentError(
				domainerror.ErrCodeConcurrentModification,
				"problem document table was modified by another session",
				domainerror.ErrConcurrentModification,
			)
		}

		if err := tx.Where("1 = 1").Delete(&model.ProblemDocumentModel{}).Error; err != nil {
			return storeUnavailable(err)
		}

		if len(docs) > 0 {
			models := make([]*model.ProblemDocumentModel, 0, len(docs))
			for i, doc := range docs {
				models = append(models, model.FromEntity(doc, i))
			}
			if err := tx.Create(models).Error; err != nil {
				return storeUnavailable(err)
			}
		}

		next := model.ProblemDocumentVersionModel{
			ID:        1,
			Version:   current + 1,
			UpdatedAt: time.Now().UTC(),
		}
		if err := tx.Save(&next).Error; err != nil {
			return storeUnavailable(err)
		}
		return nil
	})
	return err
}

// Healthy reports whether the store can currently be reached.
func (s *problemDocumentStore) Healthy(ctx context.Context) bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

func (s *problemDocumentStore) currentVersion(ctx context.Context, tx *gorm.DB) (int64, error) {
	var row model.ProblemDocumentVersionModel
	result := tx.WithContext(ctx).First(&row, "id = ?", 1)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, storeUnavailable(result.Error)
	}
	return row.Version, nil
}

func storeUnavailable(err error) error {
	return domainerror.NewProblemDocumentError(
		domainerror.ErrCodeStoreUnavailable,
		"problem document store query failed",
		err,
	)
}
