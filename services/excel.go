package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const MAX_COLUMN_WIDTH = 50

const (
	XLSX_CONTENT_TYPE = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDF_CONTENT_TYPE  = "application/pdf"
	ZIP_CONTENT_TYPE  = "application/zip"
)

func siNo(value bool) string {
	if value {
		return "Sí"
	}
	return "No"
}

func columnWidth(chars int) float64 {
	width := float64(chars + 2)
	if width > MAX_COLUMN_WIDTH {
		return MAX_COLUMN_WIDTH
	}
	return width
}

func newWorkbook(sheet string) *excelize.File {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheet)
	return file
}

func tableHeaderStyle(file *excelize.File) (int, error) {
	return file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"1F4E78"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

// Writes headers on row and values below it, columns sized to content
func writeTable(
	file *excelize.File,
	sheet string,
	row int,
	headers []string,
	rows [][]interface{},
) error {
	style, err := tableHeaderStyle(file)
	if err != nil {
		return err
	}
	widths := make([]int, len(headers))
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		widths[i] = utf8.RuneCountInString(header)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := file.SetCellStyle(sheet, first, last, style); err != nil {
		return err
	}

	for r, values := range rows {
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row+r+1)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if c < len(widths) {
				if width := utf8.RuneCountInString(fmt.Sprint(value)); width > widths[c] {
					widths[c] = width
				}
			}
		}
	}
	for i, width := range widths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := file.SetColWidth(sheet, column, column, columnWidth(width)); err != nil {
			return err
		}
	}
	return nil
}
