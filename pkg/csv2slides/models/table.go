// Package models defines data structures shared by the slide build pipeline.
package models

// Table represents tabular survey data.
// Rows[0] is the header holding field titles; Rows[1:] are records.
// Records may be shorter than the header; missing trailing cells are empty.
type Table struct {
	// Rows contains the header followed by the data records.
	Rows [][]string `json:"rows"`
}

// FieldCount returns the number of fields declared by the header.
func (t *Table) FieldCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// RecordCount returns the number of data records (header excluded).
func (t *Table) RecordCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows) - 1
}

// FieldTitle returns the header title of the field at pos.
func (t *Table) FieldTitle(pos int) string {
	if pos < 0 || pos >= t.FieldCount() {
		return ""
	}
	return t.Rows[0][pos]
}

// Cell returns the value of field pos in record rec (0-based, header excluded).
// Cells beyond the end of a short row are empty.
func (t *Table) Cell(rec, pos int) string {
	row := t.Rows[rec+1]
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}
