// Package sheets implements the problem-document store on a Google Sheets
// worksheet. The sheet is the system of record the budget team already edits
// by hand, which is why the store contract is read-all/overwrite-all rather
// than row-level updates.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

const (
	// dataRange covers the record columns: id, verification date, company,
	// note, document number, amount, issue description, status, entry date.
	dataRange = "A2:I"
	// versionCell holds the version token for the optimistic overwrite check.
	versionCell = "K1"

	dateLayout = time.RFC3339
)

// ProblemDocumentStore implements adapter.ProblemDocumentStore on one
// worksheet of a Google Sheets spreadsheet.
type ProblemDocumentStore struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewProblemDocumentStore creates a new Sheets-backed store. credentialsFile
// points at a service-account key with edit access to the spreadsheet.
func NewProblemDocumentStore(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*ProblemDocumentStore, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &ProblemDocumentStore{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ReadAll returns the full worksheet in row order with the current version
// token. Rows that do not parse as records are skipped, matching the "empty
// or malformed means no records" contract: the sheet is hand-editable and a
// stray row must not take the whole log down.
//
// The version cell is read before the rows. Sheets offers no transaction,
// but with this ordering a write landing between the two reads leaves the
// session holding a token older than the rows it saw, so its own write
// fails the version check rather than overwriting the concurrent edit.
func (s *ProblemDocumentStore) ReadAll(ctx context.Context) ([]*entity.ProblemDocument, int64, error) {
	version, err := s.readVersion(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName+"!"+dataRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, 0, storeUnavailable("failed to read worksheet", err)
	}

	var docs []*entity.ProblemDocument
	for _, row := range resp.Values {
		doc, ok := parseRow(row)
		if !ok {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, version, nil
}

// OverwriteAll replaces the worksheet contents. The version cell is read
// back immediately before the write; Sheets offers no transaction, so the
// check narrows the race window rather than closing it, which the budget
// team's handful of concurrent editors tolerates.
func (s *ProblemDocumentStore) OverwriteAll(ctx context.Context, docs []*entity.ProblemDocument, version int64) error {
	current, err := s.readVersion(ctx)
	if err != nil {
		return err
	}
	if current != version {
		return domainerror.NewProblemDocumentError(
			domainerror.ErrCodeConcurrentModification,
			"problem document worksheet was modified by another session",
			domainerror.ErrConcurrentModification,
		)
	}

	_, err = s.service.Spreadsheets.Values.
		Clear(s.spreadsheetID, s.sheetName+"!"+dataRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return storeUnavailable("failed to clear worksheet", err)
	}

	values := make([][]interface{}, 0, len(docs))
	for _, doc := range docs {
		values = append(values, []interface{}{
			doc.ID.String(),
			doc.VerificationDate.Format(dateLayout),
			doc.Company,
			doc.Note,
			doc.DocumentNumber,
			doc.Amount.String(),
			doc.IssueDescription,
			string(doc.Status),
			doc.EntryDate.Format(dateLayout),
		})
	}

	if len(values) > 0 {
		_, err = s.service.Spreadsheets.Values.
			Update(s.spreadsheetID, s.sheetName+"!A2", &sheets.ValueRange{Values: values}).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return storeUnavailable("failed to write worksheet", err)
		}
	}

	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, s.sheetName+"!"+versionCell, &sheets.ValueRange{
			Values: [][]interface{}{{strconv.FormatInt(current+1, 10)}},
		}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return storeUnavailable("failed to bump version cell", err)
	}
	return nil
}

// Healthy reports whether the spreadsheet can currently be reached.
func (s *ProblemDocumentStore) Healthy(ctx context.Context) bool {
	_, err := s.service.Spreadsheets.
		Get(s.spreadsheetID).
		Fields("spreadsheetId").
		Context(ctx).
		Do()
	return err == nil
}

func (s *ProblemDocumentStore) readVersion(ctx context.Context) (int64, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName+"!"+versionCell).
		Context(ctx).
		Do()
	if err != nil {
		return 0, storeUnavailable("failed to read version cell", err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return 0, nil
	}
	raw, _ := resp.Values[0][0].(string)
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A hand-edited version cell resets the token rather than
		// locking everyone out.
		return 0, nil
	}
	return version, nil
}

func parseRow(row []interface{}) (*entity.ProblemDocument, bool) {
	if len(row) < 9 {
		return nil, false
	}

	str := func(i int) string {
		s, _ := row[i].(string)
		return s
	}

	id, err := uuid.Parse(str(0))
	if err != nil {
		return nil, false
	}
	verificationDate, err := time.Parse(dateLayout, str(1))
	if err != nil {
		return nil, false
	}
	amount, err := decimal.NewFromString(str(5))
	if err != nil {
		return nil, false
	}
	status := entity.ProblemDocumentStatus(str(7))
	if !status.Valid() {
		return nil, false
	}
	entryDate, err := time.Parse(dateLayout, str(8))
	if err != nil {
		return nil, false
	}

	return &entity.ProblemDocument{
		ID:               id,
		VerificationDate: verificationDate,
		Company:          str(2),
		Note:             str(3),
		DocumentNumber:   str(4),
		Amount:           amount,
		IssueDescription: str(6),
		Status:           status,
		EntryDate:        entryDate,
	}, true
}

func storeUnavailable(message string, err error) error {
	return domainerror.NewProblemDocumentError(
		domainerror.ErrCodeStoreUnavailable,
		message,
		err,
	)
}

var _ adapter.ProblemDocumentStore = (*ProblemDocumentStore)(nil)
