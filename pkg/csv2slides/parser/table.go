package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyTable indicates an input without a header row.
var ErrEmptyTable = errors.New("table has no header row")

// LoadTable reads a table from path.
// Files ending in .xlsx are read from their first sheet; anything else is parsed as CSV.
func LoadTable(path string) (*models.Table, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readWorkbookRows(path)
	} else {
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}
	return &models.Table{Rows: rows}, nil
}

// ParseCSV parses CSV content into rows.
// Rows may have differing cell counts.
func ParseCSV(content []byte) ([][]string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := ParseCSV(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// readWorkbookRows extracts the rows of the first sheet of a workbook.
// Trailing empty cells are omitted by excelize, which yields short rows.
func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", path, sheets[0], err)
	}
	return rows, nil
}
