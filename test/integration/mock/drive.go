package mock

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Drive serves xlsx workbooks over HTTP the way the shared drive exports do.
// Each registered path returns a single-sheet workbook built from the rows
// set for it; unregistered paths return 404 so source failures can be staged.
type Drive struct {
	mu     sync.Mutex
	tables map[string][][]string
	server *httptest.Server
}

// NewDrive starts the stub server.
func NewDrive() *Drive {
	d := &Drive{tables: map[string][][]string{}}
	d.server = httptest.NewServer(http.HandlerFunc(d.handle))
	return d
}

// SetTable registers the rows served at a path.
func (d *Drive) SetTable(path string, rows [][]string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[path] = rows
}

// URL returns the absolute download URL for a path.
func (d *Drive) URL(path string) string {
	return d.server.URL + path
}

// Close shuts the stub server down.
func (d *Drive) Close() {
	d.server.Close()
}

func (d *Drive) handle(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	rows, ok := d.tables[r.URL.Path]
	d.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	data, err := encodeWorkbook(rows)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	_, _ = w.Write(data)
}

func encodeWorkbook(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, value := range row {
			cells[j] = value
		}
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow("Sheet1", ref, &cells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
