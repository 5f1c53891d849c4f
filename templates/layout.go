package templates

import (
	"fmt"

	"github.com/a-h/templ"
)

const toastScript = `function showToast(detail) {
  var box = document.getElementById("toasts");
  if (!box) { return; }
  var el = document.createElement("div");
  el.className = "toast toast-" + detail.type;
  el.textContent = detail.message;
  box.appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
}
document.body.addEventListener("showToast", function (evt) { showToast(evt.detail); });
(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) { return; }
  document.cookie = "flash_toast=; Max-Age=0; Path=/";
  try { showToast(JSON.parse(decodeURIComponent(m[1].replace(/\+/g, " ")))); } catch (e) {}
})();`

// WizardPage renders the full document around the wizard fragment.
func WizardPage(data WizardData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.el("title", pageTitle(data))
		h.raw(`<link rel="stylesheet" href="/static/css/wizard.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`</head><body>`)
		h.raw(`<header class="topbar"><span class="brand">Cabinet Refacing Pro</span></header>`)
		h.raw(`<main hx-target="#wizard" hx-swap="outerHTML">`)
		h.render(WizardContent(data))
		h.raw(`</main><div id="toasts" class="toasts"></div>`)
		h.raw(`<script>` + toastScript + `</script>`)
		h.raw(`</body></html>`)
	})
}

// WizardContent renders the swappable wizard root: progress, step navigation
// and the current step body.
func WizardContent(data WizardData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("div", attr("id", "wizard"), attrf("data-step", "%d", data.Step))
		h.render(progressBar(data.Nav))
		h.render(stepNav(data.Nav))
		h.open("section", attr("class", "step-body"))
		h.el("h1", data.StepTitle)
		h.render(stepBody(data))
		h.raw(`</section></div>`)
	})
}

func pageTitle(data WizardData) string {
	if data.JobName != "" {
		return data.JobName + " | Cabinet Refacing"
	}
	return "Cabinet Refacing"
}

func progressBar(nav StepNavData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="progress">`)
		h.el("div", fmt.Sprintf("%d of %d steps completed", nav.CompletedCount, nav.TotalSteps), attr("class", "progress-label"))
		h.raw(`<div class="progress-track">`)
		h.open("div", attr("class", "progress-fill"), attrf("style", "width: %.0f%%", nav.Progress))
		h.raw(`</div></div></div>`)
	})
}

func stepNav(nav StepNavData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<nav class="steps"><ol>`)
		for _, item := range nav.Items {
			h.open("li", attr("class", classes("step", map[string]bool{
				"current":   item.Current,
				"completed": item.Completed,
				"locked":    !item.Reachable,
			})))
			if item.Reachable && !item.Current {
				h.open("button", attr("type", "button"), attrf("hx-post", "/steps/%d/go", item.Step))
			} else {
				h.open("button", attr("type", "button"), flag("disabled", true))
			}
			h.el("span", fmt.Sprint(item.Step+1), attr("class", "step-num"))
			h.text(" " + item.Title)
			h.raw(`</button></li>`)
		}
		h.raw(`</ol></nav>`)
	})
}

func stepBody(data WizardData) templ.Component {
	switch data.Step {
	case 0:
		return setupStep(data.Setup)
	case 1:
		return doorStyleStep(data.DoorStyle)
	case 2:
		return cabinetsStep(data.Cabinets)
	case 3:
		return pricingStep(data.Pricing)
	case 4:
		return customerStep(data.Customer)
	case 5:
		return agreementStep(data.Agreement)
	}
	return completeStep(data.Complete)
}

// continueButton posts to action and carries the step's "Continue" label.
func continueButton(action string, enabled bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="step-actions">`)
		h.open("button", attr("type", "button"), attr("class", "btn btn-primary continue"),
			attr("hx-post", action), flag("disabled", !enabled))
		h.raw(`Continue</button></div>`)
	})
}
