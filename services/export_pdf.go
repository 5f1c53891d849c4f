package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 100, Green: 100, Blue: 100}
	darkColor   = &props.Color{Red: 33, Green: 37, Blue: 41}
	whiteColor  = &props.Color{Red: 255, Green: 255, Blue: 255}
	summaryGray = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// newPortraitMaroto returns the A4 portrait document used by both exports.
func newPortraitMaroto() core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	return maroto.New(cfg)
}

// GenerateQuotePDF creates the customer-facing quote using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	m := newPortraitMaroto()

	addDocumentHeader(m, "CABINET REFACING QUOTE", data)
	addCustomerBlock(m, data)
	addLinesTable(m, data)
	addPricingSummary(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addDocumentHeader adds the job title, document heading, quote number and date.
func addDocumentHeader(m core.Maroto, heading string, data QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Title(), props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(heading, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: darkColor,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote #: %s", data.QuoteNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addCustomerBlock adds the customer details on the left and the door
// selection on the right.
func addCustomerBlock(m core.Maroto, data QuoteExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: mutedColor,
	}
	rightLabelStyle := labelStyle
	rightLabelStyle.Align = align.Right
	valueStyle := props.Text{Size: 8, Align: align.Left}
	rightValueStyle := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("CUSTOMER", labelStyle)),
			col.New(6).Add(text.New("SELECTION", rightLabelStyle)),
		),
	)

	name := data.CustomerName
	if name == "" {
		name = "-"
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(name, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Door Style:", rightLabelStyle)),
			col.New(3).Add(text.New(data.DoorStyle, rightValueStyle)),
		),
	)

	contact := joinNonEmpty([]string{data.CustomerEmail, data.CustomerPhone}, " | ")
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(contact, valueStyle)),
			col.New(3).Add(text.New("Finish:", rightLabelStyle)),
			col.New(3).Add(text.New(data.Finish, rightValueStyle)),
		),
	)

	for _, line := range strings.Split(data.CustomerAddress, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(line, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addLinesTable adds the selection table with a header row.
func addLinesTable(m core.Maroto, data QuoteExportData) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: whiteColor,
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: darkColor}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("Category", headerTextLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New("Height", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("Widths", headerTextLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("Units", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Line Price", headerText)).WithStyle(headerCell),
		),
	)

	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	for i, l := range data.Lines {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: summaryGray}
		}

		cols := []core.Col{
			col.New(1).Add(text.New(l.Index, baseText)),
			col.New(3).Add(text.New(l.Category, leftText)),
			col.New(2).Add(text.New(l.Height, baseText)),
			col.New(3).Add(text.New(l.Widths, leftText)),
			col.New(1).Add(text.New(formatQty(l.Units), rightText)),
			col.New(2).Add(text.New(FormatUSD(l.LinePrice), rightText)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}

		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addPricingSummary adds right-aligned subtotal, savings and grand total rows.
func addPricingSummary(m core.Maroto, data QuoteExportData) {
	summaryCell := &props.Cell{BackgroundColor: summaryGray}
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	addLine := func(label, value string) {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	p := data.Pricing
	addLine(fmt.Sprintf("Subtotal (%s units)", formatQty(data.TotalUnits)), FormatUSD(p.Subtotal))
	if p.DiscountAmount > 0 {
		addLine(fmt.Sprintf("Discount %s (%.0f%%)", data.DiscountCode, p.DiscountPercent), "-"+FormatUSD(p.DiscountAmount))
	}
	if p.ReferralAmount > 0 {
		addLine(fmt.Sprintf("Referral %s (%.0f%%)", data.ReferralCode, p.ReferralPercent), "-"+FormatUSD(p.ReferralAmount))
	}
	if p.HasSavings() {
		addLine("Total Savings", FormatUSD(p.TotalSavings))
	}

	grandCell := &props.Cell{BackgroundColor: darkColor}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: whiteColor,
	}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatUSD(p.GrandTotal), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s. Prices are valid for 30 days.", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
