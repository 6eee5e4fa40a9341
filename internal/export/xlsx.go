// Package export renders audit trails as downloadable spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"mattervault/internal/domain"
)

const auditSheet = "Audit Trail"

var auditHeader = []string{
	"Record ID", "Subject Kind", "Subject ID", "Activity", "Performed By", "Recorded At",
}

// AuditWorkbook renders the entries as a single-sheet xlsx workbook with
// a frozen header row. Entries are written in the order given.
func AuditWorkbook(entries []domain.AuditEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(auditSheet)
	if err != nil {
		return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
	}

	for col, title := range auditHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
		}
		if err := f.SetCellValue(auditSheet, cell, title); err != nil {
			return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
		}
		if err := f.SetCellStyle(auditSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
		}
	}
	if err := f.SetPanes(auditSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
	}

	for i, e := range entries {
		row := []any{
			e.ID.String(),
			string(e.SubjectKind),
			e.SubjectID.String(),
			e.ActivityName,
			e.UserFirstName + " " + e.UserLastName,
			e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
		}
		if err := f.SetSheetRow(auditSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.AuditWorkbook: %w", err)
	}
	return buf.Bytes(), nil
}
