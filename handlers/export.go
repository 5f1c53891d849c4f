package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/collections"
	"cabinetrefacing/services"
	"cabinetrefacing/store"
)

// buildQuoteExportData flattens a project snapshot into the rows and totals
// the quote and agreement documents print.
func buildQuoteExportData(state store.ProjectState, now time.Time) services.QuoteExportData {
	c := state.Customer
	data := services.QuoteExportData{
		QuoteNumber:     services.QuoteNumber(state.JobName, now),
		JobName:         state.JobName,
		CreatedDate:     now.Format("02 Jan 2006"),
		DoorStyle:       services.DoorStyleName(state.DoorStyle),
		Finish:          services.FinishName(state.Finish),
		CustomerName:    c.FullName(),
		CustomerEmail:   c.Email,
		CustomerPhone:   c.Phone,
		CustomerAddress: customerAddress(c),
		TotalUnits:      state.TotalUnits(),
		Pricing:         state.Breakdown(),
		DiscountCode:    state.DiscountCode,
		ReferralCode:    state.ReferralCode,

		CustomerSignature: state.CustomerSignature,
		SalesRepSignature: state.SalesRepSignature,
		SalesRepName:      state.SalesRepName,
		AgreementSigned:   state.AgreementSigned,
	}
	data.AmountInWords = services.AmountToWords(data.Pricing.GrandTotal)

	n := 0
	for _, cat := range services.CabinetCategories {
		for _, sel := range state.Selections(cat.Key) {
			n++
			data.Lines = append(data.Lines, services.NewQuoteLine(cat, n, sel.Height, sel.WidthQuantities))
		}
	}
	return data
}

// customerAddress renders the street line and "City, ST 12345" on two lines.
func customerAddress(c store.CustomerInfo) string {
	cityLine := c.City
	if c.State != "" {
		if cityLine != "" {
			cityLine += ", "
		}
		cityLine += c.State
	}
	if c.ZipCode != "" {
		cityLine = strings.TrimSpace(cityLine + " " + c.ZipCode)
	}

	var lines []string
	for _, l := range []string{c.Address, cityLine} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Quote"
	}
	r := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", `"`, "", "\n", "", "\r", "")
	return r.Replace(s)
}

// exportDoc describes one downloadable document.
type exportDoc struct {
	kind        string
	prefix      string
	ext         string
	contentType string
	generate    func(services.QuoteExportData) ([]byte, error)
}

var (
	quotePDFDoc = exportDoc{
		kind:        collections.ExportKindQuotePDF,
		prefix:      "Quote",
		ext:         "pdf",
		contentType: "application/pdf",
		generate:    services.GenerateQuotePDF,
	}
	quoteExcelDoc = exportDoc{
		kind:        collections.ExportKindQuoteExcel,
		prefix:      "Quote",
		ext:         "xlsx",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		generate:    services.GenerateQuoteExcel,
	}
	agreementPDFDoc = exportDoc{
		kind:        collections.ExportKindAgreementPDF,
		prefix:      "Agreement",
		ext:         "pdf",
		contentType: "application/pdf",
		generate:    services.GenerateAgreementPDF,
	}
)

func handleExport(app *pocketbase.PocketBase, st *store.Store, doc exportDoc) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildQuoteExportData(st.Snapshot(), time.Now())

		body, err := doc.generate(data)
		if err != nil {
			log.Printf("export_%s: failed to generate: %v", doc.kind, err)
			return e.String(http.StatusInternalServerError, "Failed to generate "+strings.ToUpper(doc.ext)+" file")
		}

		if err := collections.RecordExport(app, doc.kind, data.QuoteNumber, data.JobName, data.Pricing.GrandTotal); err != nil {
			log.Printf("export_%s: failed to record export: %v", doc.kind, err)
		}

		filename := fmt.Sprintf("%s_%s.%s", doc.prefix, sanitizeFilename(data.QuoteNumber), doc.ext)
		e.Response.Header().Set("Content-Type", doc.contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(body)
		return err
	}
}

// HandleQuotePDF downloads the quote as a PDF.
func HandleQuotePDF(app *pocketbase.PocketBase, st *store.Store) func(*core.RequestEvent) error {
	return handleExport(app, st, quotePDFDoc)
}

// HandleQuoteExcel downloads the quote as an Excel workbook.
func HandleQuoteExcel(app *pocketbase.PocketBase, st *store.Store) func(*core.RequestEvent) error {
	return handleExport(app, st, quoteExcelDoc)
}

// HandleAgreementPDF downloads the refacing agreement, marked as a draft
// until both parties have signed.
func HandleAgreementPDF(app *pocketbase.PocketBase, st *store.Store) func(*core.RequestEvent) error {
	return handleExport(app, st, agreementPDFDoc)
}
