package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("write row %d: %v", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func TestRowsKeyedByHeader(t *testing.T) {
	content := workbookBytes(t, [][]any{
		{"code", "description", "qty"},
		{"C-100", "خرسانة عادية", 12.5},
		{"C-200", "حديد تسليح", 3},
	})

	rows, err := NewReader().Rows(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["code"] != "C-100" || rows[0]["description"] != "خرسانة عادية" || rows[0]["qty"] != "12.5" {
		t.Fatalf("unexpected first row %v", rows[0])
	}
	if rows[1]["code"] != "C-200" {
		t.Fatalf("unexpected second row %v", rows[1])
	}
}

func TestRowsShortRowLeavesCellsAbsent(t *testing.T) {
	content := workbookBytes(t, [][]any{
		{"code", "description", "qty"},
		{"C-100"},
	})

	rows, err := NewReader().Rows(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if _, ok := rows[0]["qty"]; ok {
		t.Fatalf("expected the qty cell to stay absent, got %v", rows[0])
	}
}

func TestRowsHeaderOnlyWorkbook(t *testing.T) {
	content := workbookBytes(t, [][]any{
		{"code", "description"},
	})

	rows, err := NewReader().Rows(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no data rows, got %d", len(rows))
	}
}

func TestRowsRejectsNonWorkbook(t *testing.T) {
	if _, err := NewReader().Rows([]byte("plain text, not a zip archive")); err == nil {
		t.Fatalf("expected an error for non-workbook content")
	}
}
