package partials

import (
	"context"

	"nko_site_go/middleware"
	"nko_site_go/models"
	"nko_site_go/services"
	"nko_site_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LeadFormData is what the contact form needs to render
type LeadFormData struct {
	Snapshot  services.LeadSnapshot
	CSRFToken string
}

type leadInputDef struct {
	field        models.LeadField
	label        string
	placeholder  string
	inputType    string
	autocomplete string
}

var leadInputs = []leadInputDef{
	{models.LeadFieldName, "Ваше имя", "Иван Иванов", "text", "name"},
	{models.LeadFieldPhone, "Телефон", "+7 (999) 123-45-67", "tel", "tel"},
	{models.LeadFieldEmail, "Email", "example@mail.ru", "email", "email"},
}

// LeadForm renders the contact form. While a submission is running every
// control is disabled.
func LeadForm(data LeadFormData) g.Node {
	submitting := data.Snapshot.Submitting()

	return h.Form(
		h.ID("lead-form"),
		h.Class("lead-form"),
		h.Method("post"),
		h.Action("/lead"),
		g.Attr("hx-post", "/lead"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find input, find button"),
		g.Attr("data-state", data.Snapshot.State.String()),
		h.Input(h.Type("hidden"), h.Name(middleware.CSRFFormField), h.Value(data.CSRFToken)),
		g.Map(leadInputs, func(in leadInputDef) g.Node {
			return leadInput(in, data.Snapshot.Draft.Get(in.field), submitting)
		}),
		h.Button(
			h.Type("submit"),
			h.Class("btn btn-primary btn-block"),
			g.If(submitting, h.Disabled()),
			g.If(submitting, g.Text("Отправка...")),
			g.If(!submitting, g.Text("Отправить заявку")),
		),
		h.P(h.Class("form-note"), g.Text("Нажимая кнопку, вы соглашаетесь с политикой конфиденциальности")),
	)
}

func leadInput(in leadInputDef, value string, disabled bool) g.Node {
	id := "lead-" + string(in.field)
	return h.Div(
		h.Class("form-field"),
		g.El("label", g.Attr("for", id), h.Class("form-label"), g.Text(in.label)),
		h.Input(
			h.ID(id),
			h.Type(in.inputType),
			h.Name(string(in.field)),
			h.Value(value),
			h.Placeholder(in.placeholder),
			g.Attr("autocomplete", in.autocomplete),
			h.Class("form-input"),
			h.Required(),
			g.Attr("hx-post", "/lead/field"),
			g.Attr("hx-trigger", "change"),
			g.Attr("hx-swap", "none"),
			g.Attr("hx-vals", components.JSON(map[string]string{"field": string(in.field)})),
			g.If(disabled, h.Disabled()),
		),
	)
}

// Toasts renders pending notifications. With oob set the container replaces the
// page's #toasts element out of band of an htmx swap.
func Toasts(toasts []services.Toast, oob bool) g.Node {
	return h.Div(
		h.ID("toasts"),
		h.Class("toasts"),
		g.Attr("aria-live", "polite"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.Map(toasts, func(t services.Toast) g.Node {
			role := "status"
			if t.IsError() {
				role = "alert"
			}
			return h.Div(
				h.Class("toast toast-"+string(t.Kind)),
				g.Attr("role", role),
				h.Strong(g.Text(t.Title)),
				h.P(g.Text(t.Message)),
			)
		}),
	)
}

// LeadFormResponse is the htmx reply to a form submission: the re-rendered form
// plus the visitor's toasts
func LeadFormResponse(data LeadFormData, toasts []services.Toast) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return g.Group{LeadForm(data), Toasts(toasts, true)}
	})
}

// ToastsResponse is the htmx reply for requests that only surface notifications
func ToastsResponse(toasts []services.Toast) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return Toasts(toasts, true)
	})
}
