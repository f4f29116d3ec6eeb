package adapter

import (
	"context"

	"github.com/simrs-budget/backend/internal/domain/entity"
)

// ProblemDocumentStore persists the problem-document table as a whole. The
// backing system of record only supports read-all and overwrite-all, so there
// is no partial-update API: every mutation reads the full table, derives the
// new full table and writes it back.
//
// The version token returned by ReadAll must be passed to OverwriteAll; a
// stale token (another session wrote in between) fails the write with
// ErrConcurrentModification instead of silently discarding the other session's
// edits.
type ProblemDocumentStore interface {
	// ReadAll returns the full persisted table in stored order with the
	// current version token. An empty or malformed backing table means
	// "no records yet", not an error.
	ReadAll(ctx context.Context) ([]*entity.ProblemDocument, int64, error)

	// OverwriteAll replaces the persisted table. version must be the token
	// from the preceding ReadAll.
	OverwriteAll(ctx context.Context, docs []*entity.ProblemDocument, version int64) error

	// Healthy reports whether the store can currently be reached.
	Healthy(ctx context.Context) bool
}
