package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"contactbot/internal/storage"
)

const LeadsSheet = "Leads"

var leadColumns = []struct {
	title string
	width float64
}{
	{"№", 6},
	{"Дата", 18},
	{"Имя", 24},
	{"Юзернейм", 18},
	{"Telegram ID", 14},
	{"Контакт", 20},
	{"Источник", 10},
	{"Язык", 6},
}

func ddmmyyyyHHMM(d time.Time) string { return d.Format("02.01.2006 15:04") }

// LeadsXLSX builds a one-sheet workbook with a header row and one row per
// lead, in the order given.
func LeadsXLSX(leads []storage.Lead) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LeadsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, c := range leadColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetCellValue(LeadsSheet, col+"1", c.title)
		_ = f.SetColWidth(LeadsSheet, col, col, c.width)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(leadColumns))
	_ = f.SetCellStyle(LeadsSheet, "A1", lastCol+"1", bold)

	for i, l := range leads {
		row := i + 2
		username := ""
		if l.Username != nil {
			username = "@" + *l.Username
		}
		values := []any{
			l.Number,
			ddmmyyyyHHMM(l.CreatedAt),
			l.FullName,
			username,
			l.TelegramID,
			l.Contact,
			l.Source,
			l.Lang,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(LeadsSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf, nil
}
