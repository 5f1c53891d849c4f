package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook from the given QuoteExportData
// and returns the file contents as a byte slice.
func GenerateQuoteExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are limited to 31 chars and may not contain []:*?/\.
	sheetName := excelSheetName(data.JobName)

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 24, 12, 40, 10, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	headerLines := []struct {
		text  string
		style int
	}{
		{data.Title(), titleStyle},
		{"Quote #: " + data.QuoteNumber, subtitleStyle},
		{"Date: " + data.CreatedDate, subtitleStyle},
		{fmt.Sprintf("Door Style: %s | Finish: %s", data.DoorStyle, data.Finish), subtitleStyle},
	}
	for i, h := range headerLines {
		r := fmt.Sprintf("%d", i+1)
		if err := f.MergeCell(sheetName, "A"+r, lastCol+r); err != nil {
			return nil, fmt.Errorf("merge header row %s: %w", r, err)
		}
		f.SetCellValue(sheetName, "A"+r, sanitizeExcelCell(h.text))
		f.SetCellStyle(sheetName, "A"+r, lastCol+r, h.style)
	}

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Category", "Height", "Widths", "Units", "Line Price"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"6", h)
	}
	f.SetCellStyle(sheetName, "A6", lastCol+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	row := 7
	for _, l := range data.Lines {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, l.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(l.Category))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(l.Height))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(l.Widths))
		f.SetCellValue(sheetName, "E"+rowStr, l.Units)
		f.SetCellValue(sheetName, "F"+rowStr, FormatUSD(l.LinePrice))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	type summaryLine struct {
		label string
		value string
	}

	p := data.Pricing
	summary := []summaryLine{
		{"Total Units:", formatQty(data.TotalUnits)},
		{"Subtotal:", FormatUSD(p.Subtotal)},
	}
	if p.DiscountAmount > 0 {
		summary = append(summary, summaryLine{
			fmt.Sprintf("Discount %s (%.0f%%):", data.DiscountCode, p.DiscountPercent),
			FormatUSD(p.DiscountAmount),
		})
	}
	if p.ReferralAmount > 0 {
		summary = append(summary, summaryLine{
			fmt.Sprintf("Referral %s (%.0f%%):", data.ReferralCode, p.ReferralPercent),
			FormatUSD(p.ReferralAmount),
		})
	}
	if p.HasSavings() {
		summary = append(summary, summaryLine{"Total Savings:", FormatUSD(p.TotalSavings)})
	}
	summary = append(summary, summaryLine{"Grand Total:", FormatUSD(p.GrandTotal)})

	for _, s := range summary {
		summaryRow := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+summaryRow, sanitizeExcelCell(s.label))
		f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "F"+summaryRow, sanitizeExcelCell(s.value))
		f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryValueStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// excelSheetName derives a valid sheet name from the job name.
func excelSheetName(jobName string) string {
	name := make([]rune, 0, len(jobName))
	for _, r := range jobName {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			continue
		}
		name = append(name, r)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if len(name) == 0 {
		return "Quote"
	}
	return string(name)
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
