package roster

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names recognized in uploaded rosters
const (
	ColEmployeeID     = "employee_id"
	ColName           = "name"
	ColRole           = "role"
	ColTargetRole     = "target_role"
	ColExperience     = "experience"
	ColSkills         = "skills"
	ColCertifications = "certifications"
)

// Record is one roster row as a column-name to value mapping.
// Column names are normalized to lower case with surrounding space trimmed.
type Record map[string]string

// Roster is an uploaded employee table. Rows keep file order.
type Roster struct {
	Columns []string
	Rows    []Record
}

// LoadCSV reads a delimited roster from r. The first row is the header and
// is required; an empty file is a parse error.
func LoadCSV(r io.Reader) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Message: "invalid CSV", Cause: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Message: "roster file is empty"}
	}

	return fromRows(records), nil
}

// LoadXLSX reads a roster from the first sheet of an XLSX workbook.
// The first row is the header and is required.
func LoadXLSX(r io.Reader) (*Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Message: "invalid XLSX", Cause: err}
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &ParseError{Message: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Message: "failed to read sheet", Cause: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Message: "roster sheet is empty"}
	}

	return fromRows(rows), nil
}

func fromRows(rows [][]string) *Roster {
	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = normalizeColumn(col)
	}

	roster := &Roster{Columns: header}
	for _, row := range rows[1:] {
		record := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = strings.TrimSpace(row[i])
			} else {
				record[col] = ""
			}
		}
		roster.Rows = append(roster.Rows, record)
	}
	return roster
}

func normalizeColumn(col string) string {
	return strings.ToLower(strings.TrimSpace(col))
}

// HasColumn reports whether the roster header contains the column
func (r *Roster) HasColumn(col string) bool {
	for _, c := range r.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// EmployeeIDs returns the employee_id value of every row, in file order.
// Rows with an empty ID are skipped.
func (r *Roster) EmployeeIDs() []string {
	ids := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		if id := row[ColEmployeeID]; id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// FindByID selects the first row whose employee_id matches id.
// Returns MissingColumnError if the roster has no employee_id column.
func (r *Roster) FindByID(id string) (Record, error) {
	if !r.HasColumn(ColEmployeeID) {
		return nil, &MissingColumnError{Column: ColEmployeeID}
	}
	for _, row := range r.Rows {
		if row[ColEmployeeID] == id {
			return row, nil
		}
	}
	return nil, &NotFoundError{Key: id}
}

// FindByName selects the first row whose name matches name, compared
// case-insensitively. Returns MissingColumnError if the roster has no name
// column.
func (r *Roster) FindByName(name string) (Record, error) {
	if !r.HasColumn(ColName) {
		return nil, &MissingColumnError{Column: ColName}
	}
	for _, row := range r.Rows {
		if strings.EqualFold(row[ColName], name) {
			return row, nil
		}
	}
	return nil, &NotFoundError{Key: name}
}
