package partials

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"nko_site_go/models"
	"nko_site_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func renderNode(t *testing.T, node g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func TestLeadFormIdle(t *testing.T) {
	html := renderNode(t, LeadForm(LeadFormData{
		Snapshot: services.LeadSnapshot{
			Draft: models.LeadSubmission{Name: "Иван", Phone: "+7 999", Email: "a@b.ru"},
		},
		CSRFToken: "tok123",
	}))

	assert.Contains(t, html, `id="lead-form"`)
	assert.Contains(t, html, `data-state="idle"`)
	assert.Contains(t, html, `name="_csrf" value="tok123"`)
	assert.Contains(t, html, `value="Иван"`)
	assert.Contains(t, html, `value="+7 999"`)
	assert.Contains(t, html, `value="a@b.ru"`)
	assert.Contains(t, html, "Отправить заявку")
	assert.NotContains(t, html, "Отправка...")
	assert.NotContains(t, html, " disabled")
	assert.Equal(t, 3, strings.Count(html, " required"))
}

func TestLeadFormSubmitting(t *testing.T) {
	html := renderNode(t, LeadForm(LeadFormData{
		Snapshot: services.LeadSnapshot{State: services.StateSubmitting},
	}))

	assert.Contains(t, html, `data-state="submitting"`)
	assert.Contains(t, html, "Отправка...")
	assert.NotContains(t, html, "Отправить заявку")
	// three inputs and the button
	assert.Equal(t, 4, strings.Count(html, " disabled"))
}

func TestToasts(t *testing.T) {
	toasts := []services.Toast{
		{Kind: services.NotifySuccess, Title: services.LeadSuccessTitle, Message: services.LeadSuccessMessage},
		{Kind: services.NotifyError, Title: services.LeadErrorTitle, Message: services.LeadValidationMessage},
	}

	html := renderNode(t, Toasts(toasts, true))
	assert.Contains(t, html, `id="toasts"`)
	assert.Contains(t, html, `hx-swap-oob="true"`)
	assert.Contains(t, html, `toast toast-success" role="status"`)
	assert.Contains(t, html, `toast toast-error" role="alert"`)
	assert.Contains(t, html, services.LeadSuccessMessage)

	html = renderNode(t, Toasts(nil, false))
	assert.NotContains(t, html, "hx-swap-oob")
	assert.NotContains(t, html, "toast-")
}

func TestLeadFormResponse(t *testing.T) {
	var buf bytes.Buffer
	err := LeadFormResponse(LeadFormData{}, []services.Toast{
		{Kind: services.NotifyError, Title: services.LeadErrorTitle, Message: services.LeadFailureMessage},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Less(t, strings.Index(html, `id="lead-form"`), strings.Index(html, `id="toasts"`))
	assert.Contains(t, html, services.LeadFailureMessage)
}

func TestToastsResponse(t *testing.T) {
	var buf bytes.Buffer
	err := ToastsResponse([]services.Toast{
		{Kind: services.NotifyError, Title: services.LeadErrorTitle, Message: "Слишком много заявок"},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, `<div id="toasts"`))
	assert.Contains(t, html, `hx-swap-oob="true"`)
	assert.Contains(t, html, "Слишком много заявок")
	assert.NotContains(t, html, `id="lead-form"`)
}

func TestFAQEntrySanitizesAnswer(t *testing.T) {
	html := renderNode(t, FAQEntry(models.FAQItem{
		Question: "Сколько стоит?",
		Answer:   `от <strong>45 000 ₽</strong><script>alert(1)</script>`,
	}))

	assert.Contains(t, html, "<strong>45 000 ₽</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestDocumentCardLinksDownload(t *testing.T) {
	html := renderNode(t, DocumentCard(models.SampleDocument{
		Slug: "ustav", Title: "Устав НКО", Format: "DOCX", FileName: "ustav-nko.docx",
	}))

	assert.Contains(t, html, `href="/documents/ustav"`)
	assert.Contains(t, html, `download="ustav-nko.docx"`)
}

func TestPricingCardHighlight(t *testing.T) {
	tier := models.PricingTier{Name: "Под ключ", Features: []string{"A", "B"}, CTA: "Выбрать"}

	html := renderNode(t, PricingCard(tier))
	assert.NotContains(t, html, "pricing-highlighted")
	assert.Equal(t, 2, strings.Count(html, "<li>"))

	tier.Highlighted = true
	html = renderNode(t, PricingCard(tier))
	assert.Contains(t, html, "pricing-highlighted")
	assert.Contains(t, html, "Популярный")
}

func TestContactCardHref(t *testing.T) {
	html := renderNode(t, ContactCard(models.ContactChannel{Title: "Телефон", Value: "+7", Href: "tel:+7"}))
	assert.Contains(t, html, `href="tel:+7"`)

	html = renderNode(t, ContactCard(models.ContactChannel{Title: "Офис", Value: "Москва"}))
	assert.NotContains(t, html, "href")
}
