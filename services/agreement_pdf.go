package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// AgreementTerms are printed above the signature block.
var AgreementTerms = []string{
	"1. The work covers refacing of the cabinets listed in this agreement with the selected door style and finish.",
	"2. A deposit of 50% of the grand total is due on signing. The balance is due on completion.",
	"3. Installation is scheduled after final measurements are confirmed on site.",
	"4. Custom-made doors and panels cannot be returned once production has started.",
	"5. Workmanship is warranted for one year from the date of installation.",
}

// GenerateAgreementPDF creates the signed refacing agreement using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateAgreementPDF(data QuoteExportData) ([]byte, error) {
	m := newPortraitMaroto()

	addDocumentHeader(m, "REFACING AGREEMENT", data)
	addCustomerBlock(m, data)
	addLinesTable(m, data)
	addPricingSummary(m, data)
	addAmountInWords(m, data)
	addAgreementTerms(m)
	addSignatures(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agreement PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addAmountInWords adds the amount in words row.
func addAmountInWords(m core.Maroto, data QuoteExportData) {
	if data.AmountInWords == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addAgreementTerms adds the numbered terms section.
func addAgreementTerms(m core.Maroto) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("TERMS & CONDITIONS", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: mutedColor,
			})),
		),
	)

	for _, term := range AgreementTerms {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(term, props.Text{Size: 7, Align: align.Left})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addSignatures adds the typed signatures above the signature lines. An
// unsigned party gets a blank line.
func addSignatures(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(10))

	signatureStyle := props.Text{
		Size:  11,
		Style: fontstyle.Italic,
		Align: align.Center,
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New(data.CustomerSignature, signatureStyle)),
			col.New(6).Add(text.New(data.SalesRepSignature, signatureStyle)),
		),
	)

	lineStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: mutedColor,
	}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: mutedColor,
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Customer Signature", labelStyle)),
			col.New(6).Add(text.New(joinNonEmpty([]string{"Sales Representative", data.SalesRepName}, ": "), labelStyle)),
		),
	)

	if !data.AgreementSigned {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New("DRAFT - not yet signed by both parties", props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 180, Green: 40, Blue: 40},
				})),
			),
		)
	}
}
