package pages

import (
	"context"
	"fmt"
	"time"

	"nko_site_go/models"
	"nko_site_go/services"
	"nko_site_go/templates/components"
	"nko_site_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LandingData is the view model of the single marketing page
type LandingData struct {
	SEO        *models.SEO
	Content    *models.SiteContent
	Form       partials.LeadFormData
	Toasts     []services.Toast
	StructData any
	Now        time.Time
}

// Landing renders the whole page: hero, offer sections, contact form and footer
func Landing(data LandingData) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		content := data.Content
		if content == nil {
			content = services.SiteContent()
		}
		now := data.Now
		if now.IsZero() {
			now = time.Now()
		}

		return layout(ctx, LayoutData{SEO: data.SEO, CSRFToken: data.Form.CSRFToken, StructData: data.StructData},
			siteHeader(content),
			h.Main(
				heroSection(content, now),
				servicesSection(content),
				processSection(content),
				documentsSection(content),
				aboutSection(content),
				testimonialsSection(content),
				faqSection(content),
				pricingSection(content),
				contactsSection(content, data.Form),
			),
			siteFooter(content, now),
			partials.Toasts(data.Toasts, false),
		)
	})
}

func siteHeader(content *models.SiteContent) g.Node {
	return h.Header(
		h.Class("site-header"),
		h.Div(
			h.Class("container header-inner"),
			h.A(h.Href("#home"), h.Class("brand"),
				h.Span(h.Class("brand-mark"), components.Icon("scale", "")),
				h.Span(g.Text(content.BrandName)),
			),
			h.Nav(
				h.Class("site-nav"),
				g.Attr("aria-label", "Разделы"),
				g.Map(content.Nav, func(item models.NavItem) g.Node {
					return h.A(h.Href("#"+item.Anchor), g.Text(item.Label))
				}),
			),
			h.A(h.Href("#contacts"), h.Class("btn btn-primary"), g.Text("Консультация")),
		),
	)
}

func sectionHeading(badge, title, accent, lead string) g.Node {
	return h.Div(
		h.Class("section-heading"),
		h.Span(h.Class("badge"), g.Text(badge)),
		h.H2(g.Text(title+" "), h.Span(h.Class("text-gradient"), g.Text(accent))),
		g.If(lead != "", h.P(h.Class("lead"), g.Text(lead))),
	)
}

func heroSection(content *models.SiteContent, now time.Time) g.Node {
	years := now.Year() - content.FoundedYear

	return h.Section(
		h.ID("home"),
		h.Class("hero"),
		h.Div(
			h.Class("container hero-grid"),
			h.Div(
				h.Span(h.Class("badge badge-gradient"), g.Text("⚡ Быстрая регистрация за 30 дней")),
				h.H1(g.Text("Регистрация НКО "), h.Span(h.Class("text-gradient"), g.Text("под ключ"))),
				h.P(h.Class("lead"), g.Text("Профессиональное юридическое сопровождение регистрации некоммерческих организаций. Гарантируем результат и полное соответствие законодательству.")),
				h.Div(
					h.Class("hero-actions"),
					h.A(h.Href("#contacts"), h.Class("btn btn-primary btn-lg"), components.Icon("rocket", ""), g.Text("Начать регистрацию")),
					h.A(h.Href("#services"), h.Class("btn btn-outline btn-lg"), components.Icon("info", ""), g.Text("Узнать подробнее")),
				),
				h.Div(
					h.Class("hero-stats"),
					heroStat("500+", "Зарегистрированных НКО"),
					heroStat("98%", "Одобренных заявок"),
					heroStat(fmt.Sprintf("%d лет", years), "Опыта работы"),
				),
			),
			h.Img(h.Src(content.HeroImage), h.Alt("Команда профессионалов"), h.Class("hero-image")),
		),
	)
}

func heroStat(value, label string) g.Node {
	return h.Div(
		h.Class("stat"),
		h.Div(h.Class("stat-value"), g.Text(value)),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

func servicesSection(content *models.SiteContent) g.Node {
	return h.Section(
		h.ID("services"),
		h.Class("section section-muted"),
		h.Div(
			h.Class("container"),
			sectionHeading("Наши услуги", "Полный спектр услуг по", "регистрации НКО",
				"Помогаем создать некоммерческую организацию любой формы с полным юридическим сопровождением"),
			h.Div(h.Class("grid grid-3"), g.Map(content.Services, partials.ServiceCard)),
		),
	)
}

func processSection(content *models.SiteContent) g.Node {
	steps := make([]g.Node, 0, len(content.Process))
	for i, step := range content.Process {
		steps = append(steps, partials.ProcessStepCard(step, i == len(content.Process)-1))
	}

	return h.Section(
		h.ID("process"),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			sectionHeading("Как мы работаем", "Простой процесс", "регистрации",
				"Четыре простых шага от консультации до получения свидетельства о регистрации"),
			h.Div(h.Class("grid grid-4 steps"), g.Group(steps)),
		),
	)
}

func documentsSection(content *models.SiteContent) g.Node {
	return h.Section(
		h.ID("documents"),
		h.Class("section section-muted"),
		h.Div(
			h.Class("container"),
			sectionHeading("Полезные материалы", "Образцы", "документов",
				"Скачайте готовые образцы документов для регистрации вашей НКО"),
			h.Div(h.Class("grid grid-4"), g.Map(content.Documents, partials.DocumentCard)),
		),
	)
}

func aboutSection(content *models.SiteContent) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("section"),
		h.Div(
			h.Class("container about-grid"),
			h.Div(
				h.Span(h.Class("badge"), g.Text("О нашей компании")),
				h.H2(g.Text("Эксперты в регистрации "),
					h.Span(h.Class("text-gradient"), g.Textf("НКО с %d года", content.FoundedYear))),
				h.P(h.Class("lead"), g.Text("Мы команда профессиональных юристов, специализирующихся на регистрации и правовом сопровождении некоммерческих организаций. За время работы помогли создать более 500 НКО различных форм и направлений деятельности.")),
				h.Div(h.Class("advantages"), g.Map(content.Advantages, partials.AdvantageItem)),
			),
			h.Img(h.Src(content.AboutImage), h.Alt("Регистрация документов"), h.Class("about-image"), g.Attr("loading", "lazy")),
		),
	)
}

func testimonialsSection(content *models.SiteContent) g.Node {
	return h.Section(
		h.ID("testimonials"),
		h.Class("section section-muted"),
		h.Div(
			h.Class("container"),
			sectionHeading("Отзывы клиентов", "Что говорят о нас", "наши клиенты", ""),
			h.Div(h.Class("grid grid-3"), g.Map(content.Testimonials, partials.TestimonialCard)),
		),
	)
}

func faqSection(content *models.SiteContent) g.Node {
	return h.Section(
		h.ID("faq"),
		h.Class("section"),
		h.Div(
			h.Class("container container-narrow"),
			sectionHeading("Вопросы и ответы", "Частые", "вопросы", ""),
			h.Div(h.Class("faq"), g.Map(content.FAQ, partials.FAQEntry)),
		),
	)
}

func pricingSection(content *models.SiteContent) g.Node {
	return h.Section(
		h.ID("pricing"),
		h.Class("section section-gradient"),
		h.Div(
			h.Class("container"),
			sectionHeading("Тарифы", "Прозрачные", "цены", "Выберите подходящий пакет услуг"),
			h.Div(h.Class("grid grid-3"), g.Map(content.Pricing, partials.PricingCard)),
		),
	)
}

func contactsSection(content *models.SiteContent, form partials.LeadFormData) g.Node {
	return h.Section(
		h.ID("contacts"),
		h.Class("section section-muted"),
		h.Div(
			h.Class("container container-narrow"),
			sectionHeading("Свяжитесь с нами", "Готовы начать", "регистрацию?",
				"Оставьте заявку, и мы свяжемся с вами в течение 15 минут"),
			h.Div(
				h.Class("card contacts-card"),
				h.Div(h.Class("contacts"), g.Map(content.Contacts, partials.ContactCard)),
				partials.LeadForm(form),
			),
		),
	)
}

func siteFooter(content *models.SiteContent, now time.Time) g.Node {
	serviceLinks := content.Services
	if len(serviceLinks) > 4 {
		serviceLinks = serviceLinks[:4]
	}

	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("container footer-grid"),
			h.Div(
				h.Div(h.Class("brand"),
					h.Span(h.Class("brand-mark"), components.Icon("scale", "")),
					h.Span(g.Text(content.BrandName)),
				),
				h.P(h.Class("muted small"), g.Text(content.Tagline)),
			),
			h.Div(
				h.H4(g.Text("Услуги")),
				h.Ul(g.Map(serviceLinks, func(s models.Service) g.Node {
					return h.Li(h.A(h.Href("#services"), g.Text(s.Title)))
				})),
			),
			h.Div(
				h.H4(g.Text("Компания")),
				h.Ul(
					h.Li(h.A(h.Href("#about"), g.Text("О нас"))),
					h.Li(h.A(h.Href("#testimonials"), g.Text("Отзывы"))),
					h.Li(h.A(h.Href("#faq"), g.Text("Вопросы и ответы"))),
					h.Li(h.A(h.Href("#contacts"), g.Text("Контакты"))),
				),
			),
			h.Div(
				h.H4(g.Text("Контакты")),
				h.Ul(g.Map(content.Contacts, func(ch models.ContactChannel) g.Node {
					return h.Li(g.Text(ch.Value))
				})),
			),
		),
		h.Div(
			h.Class("container footer-bottom"),
			h.P(h.Class("muted small"), g.Textf("© %d %s. Все права защищены.", now.Year(), content.BrandName)),
		),
	)
}
