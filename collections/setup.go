package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const (
	// WizardStatesCollection holds the persisted wizard state, one record per
	// storage name.
	WizardStatesCollection = "wizard_states"
	// QuoteExportsCollection logs every generated quote or agreement document.
	QuoteExportsCollection = "quote_exports"
)

// Export kinds stored in quote_exports.kind.
const (
	ExportKindQuotePDF     = "quote_pdf"
	ExportKindQuoteExcel   = "quote_excel"
	ExportKindAgreementPDF = "agreement_pdf"
)

// maxStateSize bounds the JSON data field of a wizard state record.
const maxStateSize = 1 << 20

// Setup programmatically creates/ensures the wizard_states and quote_exports
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, WizardStatesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "version", OnlyInt: true})
		c.Fields.Add(&core.JSONField{Name: "data", MaxSize: maxStateSize})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_wizard_states_name", true, "name", "")
	})

	ensureCollection(app, QuoteExportsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "kind",
			Required:  true,
			Values:    []string{ExportKindQuotePDF, ExportKindQuoteExcel, ExportKindAgreementPDF},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "job_name"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

// RecordExport appends an entry to the quote_exports log.
func RecordExport(app *pocketbase.PocketBase, kind, quoteNumber, jobName string, grandTotal float64) error {
	col, err := app.FindCollectionByNameOrId(QuoteExportsCollection)
	if err != nil {
		return fmt.Errorf("record export: could not find %s collection: %w", QuoteExportsCollection, err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", quoteNumber)
	record.Set("kind", kind)
	record.Set("job_name", jobName)
	record.Set("grand_total", grandTotal)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("record export: %w", err)
	}
	return nil
}
