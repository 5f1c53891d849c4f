package templates

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"
)

func setupStep(d SetupData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="setup-form" hx-post="/setup">`)
		h.raw(`<label for="jobName">Job Name</label>`)
		h.open("input", attr("id", "jobName"), attr("name", "jobName"), attr("type", "text"), flag("required", true),
			attr("placeholder", "e.g. Smith Kitchen"), attr("value", d.JobName))
		h.fieldError(d.Error)
		h.raw(`<div class="step-actions"><button type="submit" class="btn btn-primary continue">Continue</button></div>`)
		h.raw(`</form>`)
	})
}

func doorStyleStep(d DoorStyleData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<h2>Door Style</h2><div class="option-grid door-styles">`)
		for _, s := range d.Styles {
			h.open("button", attr("type", "button"),
				attr("class", classes("option", map[string]bool{"selected": s.ID == d.DoorStyle})),
				attr("data-door-style", s.ID), attr("hx-post", "/door-style"), hxVals("doorStyle", s.ID))
			h.el("strong", s.Name)
			h.el("span", s.Description)
			h.el("em", s.PriceNote)
			h.close("button")
		}
		h.raw(`</div><h2>Finish</h2><div class="option-grid finishes">`)
		for _, f := range d.Finishes {
			h.open("button", attr("type", "button"),
				attr("class", classes("option", map[string]bool{"selected": f.ID == d.Finish})),
				attr("data-finish", f.ID), attr("hx-post", "/finish"), hxVals("finish", f.ID))
			h.el("span", "", attr("class", "swatch"), attr("style", "background: "+f.Color))
			h.el("strong", f.Name)
			h.el("span", f.Description)
			h.close("button")
		}
		h.raw(`</div>`)
		h.render(continueButton("/door-style/complete", d.CanContinue))
	})
}

func cabinetsStep(d CabinetsData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="summary-bar">`)
		h.el("span", fmt.Sprintf("%d units", d.TotalUnits), attr("class", "badge total-units"))
		h.raw(` `)
		h.el("span", "Subtotal: "+d.Subtotal, attr("class", "subtotal"))
		h.raw(`</div>`)
		for _, c := range d.Categories {
			h.render(categorySection(c))
		}
		h.render(continueButton("/cabinets/complete", true))
	})
}

func categorySection(c CategoryView) templ.Component {
	return component(func(h *htmlWriter) {
		base := "/cabinets/" + url.PathEscape(c.Key)
		h.open("section", attr("class", "category"), attr("data-category", c.Key))
		h.open("header")
		h.el("h2", c.Title)
		h.el("span", c.Price+" each", attr("class", "price"))
		h.el("span", fmt.Sprintf("%d %s", c.Units, c.UnitNoun), attr("class", "badge units"))
		h.close("header")

		if len(c.Rows) > 0 {
			h.raw(`<table class="selections"><thead><tr><th>Height</th>`)
			for _, w := range c.Widths {
				h.el("th", w)
			}
			h.raw(`<th>Units</th><th></th></tr></thead><tbody>`)
			for _, row := range c.Rows {
				h.open("tr", attrf("data-index", "%d", row.Index))
				h.el("td", row.Height)
				for _, q := range row.Quantities {
					h.raw(`<td>`)
					h.open("form", attrf("hx-post", "%s/%d/quantity", base, row.Index), attr("hx-trigger", "change"))
					h.open("input", attr("type", "hidden"), attr("name", "width"), attr("value", q.Width))
					h.open("input", attr("type", "number"), attr("name", "qty"), attr("min", "0"),
						attrf("value", "%d", q.Qty), attr("aria-label", q.Width))
					h.raw(`</form></td>`)
				}
				h.el("td", fmt.Sprint(row.Units), attr("class", "row-units"))
				h.raw(`<td>`)
				h.open("button", attr("type", "button"), attr("class", "btn btn-link remove"),
					attrf("hx-post", "%s/%d/remove", base, row.Index))
				h.raw(`Remove</button></td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}

		h.open("form", attr("class", "add-selection"), attr("hx-post", base+"/add"))
		h.raw(`<select name="height">`)
		for _, height := range c.Heights {
			h.el("option", height, attr("value", height))
		}
		h.raw(`</select><button type="submit" class="btn">Add</button></form>`)
		h.raw(`</section>`)
	})
}

func pricingStep(d PricingData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="codes">`)
		h.render(codeForm("discount", "Discount Code", d.DiscountCode, d.DiscountFeedback))
		h.render(codeForm("referral", "Referral Code", d.ReferralCode, d.ReferralFeedback))
		h.raw(`</div>`)

		h.raw(`<table class="pricing-summary"><tbody>`)
		summaryRow(h, "units", "Total Units", fmt.Sprint(d.TotalUnits))
		summaryRow(h, "subtotal", "Subtotal", d.Subtotal)
		if d.DiscountLine != "" {
			summaryRow(h, "discount", fmt.Sprintf("Discount %s (%s)", d.DiscountCode, d.DiscountPercent), d.DiscountLine)
		}
		if d.ReferralLine != "" {
			summaryRow(h, "referral", fmt.Sprintf("Referral %s (%s)", d.ReferralCode, d.ReferralPercent), d.ReferralLine)
		}
		if d.HasSavings {
			summaryRow(h, "savings", "Total Savings", d.TotalSavings)
		}
		summaryRow(h, "grand-total", "Grand Total", d.GrandTotal)
		h.raw(`</tbody></table>`)

		h.raw(`<aside class="sample-codes"><h3>Available Codes</h3><ul>`)
		for _, c := range d.SampleDiscounts {
			sampleCode(h, "sample-discount", c.Code, c.Description)
		}
		for _, c := range d.SampleReferrals {
			sampleCode(h, "sample-referral", c.Code, c.Description)
		}
		h.raw(`</ul></aside>`)
		h.render(continueButton("/pricing/complete", true))
	})
}

func sampleCode(h *htmlWriter, class, code, description string) {
	h.open("li", attr("class", class))
	h.el("code", code)
	h.text(" " + description)
	h.close("li")
}

func summaryRow(h *htmlWriter, class, label, value string) {
	h.open("tr", attr("class", class))
	h.el("th", label)
	h.el("td", value)
	h.close("tr")
}

func codeForm(kind, label, applied string, fb *CodeFeedback) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("form", attr("class", "code-form"), attr("data-code", kind), attr("hx-post", "/pricing/"+kind))
		h.el("label", label, attr("for", kind+"-code"))
		h.open("input", attr("id", kind+"-code"), attr("name", "code"), attr("type", "text"), attr("value", applied))
		h.raw(`<button type="submit" class="btn">Apply</button>`)
		if applied != "" {
			h.open("button", attr("type", "button"), attr("class", "btn btn-link clear"), attr("hx-delete", "/pricing/"+kind))
			h.raw(`Remove</button>`)
		}
		if fb != nil {
			h.el("p", fb.Message, attr("class", classes("feedback", map[string]bool{"valid": fb.Valid, "invalid": !fb.Valid})))
		}
		h.raw(`</form>`)
	})
}

func customerStep(d CustomerData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="customer-form" hx-post="/customer">`)
		for _, f := range d.Fields {
			h.raw(`<div class="field">`)
			h.open("label", attr("for", f.Name))
			h.text(f.Label)
			if f.Required {
				h.raw(` <span class="required">*</span>`)
			}
			h.close("label")
			if f.Name == "state" {
				h.raw(`<select id="state" name="state"><option value="">--</option>`)
				for _, code := range d.States {
					h.el("option", code, attr("value", code), flag("selected", code == f.Value))
				}
				h.raw(`</select>`)
			} else {
				h.open("input", attr("id", f.Name), attr("name", f.Name), attr("type", inputType(f.Name)), attr("value", f.Value))
			}
			h.fieldError(f.Error)
			h.raw(`</div>`)
		}
		h.raw(`<div class="step-actions"><button type="submit" class="btn btn-primary continue">Continue</button></div>`)
		h.raw(`</form>`)
	})
}

func inputType(name string) string {
	switch name {
	case "email":
		return "email"
	case "phone":
		return "tel"
	}
	return "text"
}

func agreementStep(d AgreementData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="agreement-summary"><dl>`)
		for _, item := range []struct{ term, value string }{
			{"Job", d.JobName},
			{"Customer", d.CustomerName},
			{"Door Style", d.DoorStyle},
			{"Finish", d.Finish},
			{"Total Units", fmt.Sprint(d.TotalUnits)},
		} {
			h.el("dt", item.term)
			h.el("dd", item.value)
		}
		h.el("dt", "Grand Total")
		h.el("dd", d.GrandTotal, attr("class", "grand-total"))
		h.raw(`</dl>`)
		h.el("p", d.AmountInWords, attr("class", "amount-words"))
		h.raw(`</div>`)

		h.raw(`<div class="terms">`)
		for _, term := range d.Terms {
			h.el("p", term)
		}
		h.raw(`</div>`)

		h.raw(`<form class="signatures" hx-post="/agreement">`)
		signatureInput(h, "customerSignature", "Customer Signature", d.CustomerSignature)
		signatureInput(h, "salesRepSignature", "Sales Rep Signature", d.SalesRepSignature)
		signatureInput(h, "salesRepName", "Sales Rep Name", d.SalesRepName)
		h.fieldError(d.Error)
		status := "Awaiting signatures"
		if d.Signed {
			status = "Signed"
		}
		h.el("p", status, attr("class", "sign-status"))
		h.raw(`<div class="step-actions"><a class="btn" href="/agreement/pdf" hx-boost="false">Download Agreement PDF</a>`)
		h.raw(`<button type="submit" class="btn btn-primary continue">Sign &amp; Continue</button></div>`)
		h.raw(`</form>`)
	})
}

func signatureInput(h *htmlWriter, name, label, value string) {
	h.el("label", label, attr("for", name))
	h.open("input", attr("id", name), attr("name", name), attr("type", "text"), attr("value", value))
}

func completeStep(d CompleteData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="complete">`)
		h.el("p", "Quote "+d.QuoteNumber, attr("class", "quote-number"))
		h.el("p", d.JobName+" for "+d.CustomerName)
		if d.Email != "" {
			h.el("p", "A copy goes to "+d.Email, attr("class", "email"))
		}
		h.open("p")
		h.textf("%d units, ", d.TotalUnits)
		h.el("strong", d.GrandTotal, attr("class", "grand-total"))
		h.close("p")
		h.raw(`<div class="exports">`)
		h.raw(`<a class="btn" href="/quote/pdf">Quote PDF</a>`)
		h.raw(`<a class="btn" href="/quote/excel">Quote Excel</a>`)
		h.raw(`<a class="btn" href="/agreement/pdf">Agreement PDF</a>`)
		h.raw(`</div>`)
		h.raw(`<button type="button" class="btn btn-danger reset" hx-post="/reset" hx-confirm="Start a new project? All entered data will be cleared.">New Project</button>`)
		h.raw(`</div>`)
	})
}
