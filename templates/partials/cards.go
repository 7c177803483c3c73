package partials

import (
	"nko_site_go/models"
	"nko_site_go/services"
	"nko_site_go/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func ServiceCard(s models.Service) g.Node {
	return h.Article(
		h.Class("card card-hover"),
		h.Div(h.Class("card-icon"), components.Icon(s.Icon, "")),
		h.H3(h.Class("card-title"), g.Text(s.Title)),
		h.P(h.Class("card-text"), g.Text(s.Description)),
		h.Div(
			h.Class("card-footer"),
			h.Span(h.Class("price"), g.Text(s.Price)),
			h.A(h.Href("#contacts"), h.Class("btn btn-ghost"), g.Text("Подробнее")),
		),
	)
}

func ProcessStepCard(step models.ProcessStep, last bool) g.Node {
	return h.Div(
		h.Class("step"),
		h.Div(h.Class("step-number"), g.Text(step.Step)),
		g.If(!last, h.Div(h.Class("step-connector"), g.Attr("aria-hidden", "true"))),
		h.H3(g.Text(step.Title)),
		h.P(g.Text(step.Description)),
	)
}

func DocumentCard(doc models.SampleDocument) g.Node {
	return h.Article(
		h.Class("card card-hover"),
		h.Div(
			h.Class("card-header"),
			components.Icon(doc.Icon, ""),
			h.Span(h.Class("badge badge-outline"), g.Text(doc.Format)),
		),
		h.H3(h.Class("card-title"), g.Text(doc.Title)),
		h.P(h.Class("card-text"), g.Text(doc.Description)),
		h.A(
			h.Href("/documents/"+doc.Slug),
			h.Class("btn btn-outline btn-block"),
			g.Attr("download", doc.FileName),
			components.Icon("download", ""),
			g.Text("Скачать образец"),
		),
	)
}

func AdvantageItem(a models.Advantage) g.Node {
	return h.Div(
		h.Class("advantage"),
		components.Icon(a.Icon, "advantage-icon"),
		h.Div(
			h.H4(g.Text(a.Title)),
			h.P(g.Text(a.Description)),
		),
	)
}

func TestimonialCard(t models.Testimonial) g.Node {
	return h.Article(
		h.Class("card testimonial"),
		h.Div(h.Class("rating"), g.Attr("aria-label", "Оценка "+stars(t.Rating)), g.Text(stars(t.Rating))),
		h.P(h.Class("testimonial-text"), g.Text("«"+t.Text+"»")),
		h.Div(
			h.Class("testimonial-author"),
			h.Span(h.Class("avatar"), g.Text(initials(t.Name))),
			h.Div(
				h.Strong(g.Text(t.Name)),
				h.P(h.Class("muted"), g.Text(t.Organization)),
			),
		),
	)
}

// FAQEntry renders one question as a native disclosure widget. The answer
// markup is sanitized before it is emitted raw.
func FAQEntry(item models.FAQItem) g.Node {
	return h.Details(
		h.Class("faq-item"),
		h.Summary(g.Text(item.Question)),
		h.Div(h.Class("faq-answer"), g.Raw(services.SanitizeContent(item.Answer))),
	)
}

func PricingCard(tier models.PricingTier) g.Node {
	class := "card pricing"
	btnClass := "btn btn-outline btn-block"
	if tier.Highlighted {
		class += " pricing-highlighted"
		btnClass = "btn btn-primary btn-block"
	}

	return h.Article(
		h.Class(class),
		g.If(tier.Highlighted, h.Span(h.Class("badge badge-gradient pricing-ribbon"), g.Text("Популярный"))),
		h.Span(h.Class("badge badge-outline"), g.Text(tier.Badge)),
		h.H3(h.Class("card-title"), g.Text(tier.Name)),
		h.Div(h.Class("pricing-price"), g.Text(tier.Price)),
		h.P(h.Class("muted"), g.Text(tier.Description)),
		h.Ul(
			h.Class("pricing-features"),
			g.Map(tier.Features, func(f string) g.Node {
				return h.Li(components.Icon("check", ""), h.Span(g.Text(f)))
			}),
		),
		h.A(h.Href("#contacts"), h.Class(btnClass), g.Text(tier.CTA)),
	)
}

func ContactCard(ch models.ContactChannel) g.Node {
	value := g.Node(h.P(g.Text(ch.Value)))
	if ch.Href != "" {
		value = h.P(h.A(h.Href(ch.Href), g.Text(ch.Value)))
	}
	return h.Div(
		h.Class("contact"),
		components.Icon(ch.Icon, "contact-icon"),
		h.Div(
			h.H4(g.Text(ch.Title)),
			value,
			h.P(h.Class("muted small"), g.Text(ch.Note)),
		),
	)
}
