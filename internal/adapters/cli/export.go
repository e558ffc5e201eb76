package cli

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

const (
	historySheet = "History"
	trendsSheet  = "Trends"
)

// writeWorkbook saves entries and their tally as a two-sheet spreadsheet.
func writeWorkbook(path string, entries []domain.MoodEntry, counts []domain.MoodCount) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing workbook: %w", closeErr)
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("naming history sheet: %w", err)
	}

	rows := make([][]any, 0, len(entries)+1)
	rows = append(rows, []any{"Date", "Mood", "Entry"})
	for _, e := range entries {
		rows = append(rows, []any{e.Date, e.Mood, e.Note})
	}

	if err := writeRows(f, historySheet, rows, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(historySheet, "C", "C", 60); err != nil {
		return fmt.Errorf("sizing history sheet: %w", err)
	}

	if _, err := f.NewSheet(trendsSheet); err != nil {
		return fmt.Errorf("adding trends sheet: %w", err)
	}

	rows = rows[:0]
	rows = append(rows, []any{"Mood", "Count"})
	for _, c := range counts {
		rows = append(rows, []any{c.Mood, c.Count})
	}

	if err := writeRows(f, trendsSheet, rows, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}

	return nil
}

// writeRows writes rows from A1 down and bolds the first one.
func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}

	return nil
}
