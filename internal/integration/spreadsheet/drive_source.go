package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simrs-budget/backend/internal/application/adapter"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// maxWorkbookBytes caps how much of a remote export is read into memory. The
// real exports are a few hundred kilobytes.
const maxWorkbookBytes = 64 << 20

// DriveSource implements adapter.SpreadsheetSource by downloading the
// published xlsx export URLs over HTTP. Both exports live on a shared drive
// with direct-download links.
type DriveSource struct {
	client *http.Client
	urls   map[adapter.SourceID]string
}

// NewDriveSource creates a new DriveSource instance. timeout bounds each
// download end to end.
func NewDriveSource(urls map[adapter.SourceID]string, timeout time.Duration) *DriveSource {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	copied := make(map[adapter.SourceID]string, len(urls))
	for id, url := range urls {
		copied[id] = url
	}
	return &DriveSource{
		client: &http.Client{Timeout: timeout},
		urls:   copied,
	}
}

// Fetch downloads and decodes the export for the given source.
func (s *DriveSource) Fetch(ctx context.Context, id adapter.SourceID) (adapter.RawTable, error) {
	url, ok := s.urls[id]
	if !ok || url == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeUnknownSource,
			"no URL configured for source "+string(id),
			domainerror.ErrUnknownSource,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for source %s: %w", id, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSourceUnavailable,
			"failed to download source "+string(id),
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSourceUnavailable,
			fmt.Sprintf("source %s returned status %d", id, resp.StatusCode),
			domainerror.ErrSourceUnavailable,
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWorkbookBytes))
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSourceUnavailable,
			"failed to read source "+string(id),
			err,
		)
	}

	return DecodeWorkbook(bytes.NewReader(body))
}

var _ adapter.SpreadsheetSource = (*DriveSource)(nil)
