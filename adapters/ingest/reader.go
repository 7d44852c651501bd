// Package ingest loads tabular files into typed tables. It handles CSV,
// Excel, and JSON sources, infers a numeric-or-categorical type for every
// column at load time, and offers missing-value imputation as an
// independent preprocessing step.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"datareport/domain/core"
	"datareport/domain/table"
	"datareport/internal"

	"github.com/xuri/excelize/v2"
)

// RawData is a dataset before type coercion: a header row plus string rows.
type RawData struct {
	Headers []string
	Rows    [][]string
}

// Reader loads a tabular data source, dispatching on the file extension.
type Reader struct {
	name string
	log  *internal.Logger
}

// NewReader creates a reader for the named source. The name's extension
// selects the format: .csv, .xlsx, .xls, or .json.
func NewReader(name string) *Reader {
	return &Reader{name: name, log: internal.NewComponentLogger("ingest")}
}

// ReadTable reads the source and coerces it into a typed table.
func (r *Reader) ReadTable(src io.Reader) (*table.Table, error) {
	raw, err := r.ReadRaw(src)
	if err != nil {
		return nil, err
	}
	return BuildTable(raw)
}

// ReadRaw reads the source into headers and string rows without coercion.
func (r *Reader) ReadRaw(src io.Reader) (*RawData, error) {
	ext := strings.ToLower(filepath.Ext(r.name))
	switch ext {
	case ".csv":
		return r.readCSV(src)
	case ".xlsx", ".xls":
		return r.readExcel(src)
	case ".json":
		return r.readJSON(src)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, ext)
	}
}

func (r *Reader) readCSV(src io.Reader) (*RawData, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedInput, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrMalformedInput)
	}
	r.log.Debug("CSV source read (%d rows)", len(rows))
	return r.processRows(rows)
}

func (r *Reader) readExcel(src io.Reader) (*RawData, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", core.ErrMalformedInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedInput, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrMalformedInput)
	}
	r.log.Debug("Excel sheet %q read (%d rows)", sheets[0], len(rows))
	return r.processRows(rows)
}

// readJSON reads an array of flat objects. Column order follows the sorted
// union of keys, since JSON objects carry no field order.
func (r *Reader) readJSON(src io.Reader) (*RawData, error) {
	var records []map[string]any
	if err := json.NewDecoder(src).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: need at least one record", core.ErrMalformedInput)
	}

	keySet := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			keySet[k] = true
		}
	}
	headers := make([]string, 0, len(keySet))
	for k := range keySet {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(headers))
		for i, key := range headers {
			if v, ok := rec[key]; ok && v != nil {
				row[i] = jsonCell(v)
			}
		}
		rows = append(rows, row)
	}
	r.log.Debug("JSON source read (%d records, %d fields)", len(records), len(headers))
	return &RawData{Headers: headers, Rows: rows}, nil
}

func jsonCell(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Render integral floats without a trailing ".0" so numeric
		// coercion sees the same text a CSV would carry.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// processRows splits raw rows into trimmed headers and data rows, padding
// short rows so every column has uniform length.
func (r *Reader) processRows(rows [][]string) (*RawData, error) {
	headers := make([]string, len(rows[0]))
	seen := make(map[string]bool, len(rows[0]))
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column name %q", core.ErrMalformedInput, name)
		}
		seen[name] = true
		headers[i] = name
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(headers))
		for j := range headers {
			if j < len(row) {
				cells[j] = strings.TrimSpace(row[j])
			}
		}
		data = append(data, cells)
	}
	return &RawData{Headers: headers, Rows: data}, nil
}
