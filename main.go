package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cabinetrefacing/collections"
	"cabinetrefacing/handlers"
	"cabinetrefacing/store"
)

func main() {
	app := pocketbase.New()

	var seedDemo bool
	app.RootCmd.PersistentFlags().BoolVar(&seedDemo, "seed-demo", false,
		"load a sample kitchen project when no saved wizard state exists")

	// Create collections, drop stale state records and optionally seed on startup
	var st *store.Store
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.PurgeStaleWizardStates(app); err != nil {
			log.Printf("Warning: stale wizard state cleanup failed: %v", err)
		}
		if seedDemo {
			if err := collections.SeedDemoState(app); err != nil {
				log.Printf("Warning: demo seed failed: %v", err)
			}
		}
		st = store.New(collections.NewRecordPersister(app))
		return se.Next()
	})

	// Runs after the hook above, so st is ready when routes are bound
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.BindFunc(handlers.WizardMiddleware())

		// ── Wizard ───────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleWizard(st))
		se.Router.POST("/steps/{step}/go", handlers.HandleStepGo(st))
		se.Router.POST("/reset", handlers.HandleReset(st))

		// ── Project setup, door style & finish ───────────────────
		se.Router.POST("/setup", handlers.HandleSetup(st))
		se.Router.POST("/door-style", handlers.HandleDoorStyle(st))
		se.Router.POST("/finish", handlers.HandleFinish(st))
		se.Router.POST("/door-style/complete", handlers.HandleDoorStyleComplete(st))

		// ── Cabinet selection ────────────────────────────────────
		se.Router.POST("/cabinets/complete", handlers.HandleCabinetsComplete(st))
		se.Router.POST("/cabinets/{category}/add", handlers.HandleCabinetAdd(st))
		se.Router.POST("/cabinets/{category}/{index}/remove", handlers.HandleCabinetRemove(st))
		se.Router.POST("/cabinets/{category}/{index}/quantity", handlers.HandleCabinetQuantity(st))

		// ── Pricing & discounts ──────────────────────────────────
		se.Router.POST("/pricing/discount", handlers.HandleDiscountApply(st))
		se.Router.DELETE("/pricing/discount", handlers.HandleDiscountRemove(st))
		se.Router.POST("/pricing/referral", handlers.HandleReferralApply(st))
		se.Router.DELETE("/pricing/referral", handlers.HandleReferralRemove(st))
		se.Router.POST("/pricing/complete", handlers.HandlePricingComplete(st))

		// ── Customer, agreement ──────────────────────────────────
		se.Router.POST("/customer", handlers.HandleCustomer(st))
		se.Router.POST("/agreement", handlers.HandleAgreement(st))

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/quote/pdf", handlers.HandleQuotePDF(app, st))
		se.Router.GET("/quote/excel", handlers.HandleQuoteExcel(app, st))
		se.Router.GET("/agreement/pdf", handlers.HandleAgreementPDF(app, st))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
