package workbook

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// isDateCell reports whether the cell at col (0-based) of sheet row line
// (1-based) is styled with a date or time number format
func (wb *Workbook) isDateCell(sheet string, col, line int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, line)
	if err != nil {
		return false
	}
	id, err := wb.file.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	if isDate, ok := wb.dateStyles[id]; ok {
		return isDate
	}

	isDate := false
	if style, err := wb.file.GetStyle(id); err == nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	wb.dateStyles[id] = isDate
	return isDate
}

// isDateNumFmt reports whether a built-in format id or a custom format
// code displays a date or time
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58,
		id >= 71 && id <= 81:
		return true
	}
	return false
}

// isDateFormatCode looks for date or time tokens outside of quoted
// literals, bracketed sections and escaped characters
func isDateFormatCode(code string) bool {
	runes := []rune(strings.ToLower(code))
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '"':
			for i++; i < len(runes) && runes[i] != '"'; i++ {
			}
		case '[':
			for i++; i < len(runes) && runes[i] != ']'; i++ {
			}
		case '\\', '_', '*':
			i++
		case 'y', 'm', 'd', 'h', 's':
			return true
		}
	}
	return false
}
