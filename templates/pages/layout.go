package pages

import (
	"context"

	"nko_site_go/middleware"
	"nko_site_go/models"
	"nko_site_go/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// LayoutData carries everything the document shell needs besides the body
type LayoutData struct {
	SEO        *models.SEO
	CSRFToken  string
	StructData any // JSON-LD payload, omitted when nil
}

func layout(ctx context.Context, data LayoutData, body ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)
	seo := data.SEO
	if seo == nil {
		seo = models.DefaultSEO("", "")
	}

	return h.Doctype(
		h.HTML(
			h.Lang("ru"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(seo.Title)),
				h.Meta(h.Name("description"), h.Content(seo.Description)),
				g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
				h.Meta(h.Name("robots"), h.Content(seo.Robots())),
				g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
				ogMeta("og:type", seo.OGType),
				ogMeta("og:title", seo.GetOGTitle()),
				ogMeta("og:description", seo.GetOGDesc()),
				ogMeta("og:site_name", seo.SiteName),
				ogMeta("og:locale", seo.Locale),
				ogMeta("og:url", seo.Canonical),
				ogMeta("og:image", seo.OGImage),
				g.If(seo.TwitterCard != "", h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard))),
				h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL(ctx, "images/favicon.svg"))),
				h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(ctx, "css/site.css"))),
				g.If(data.StructData != nil,
					h.Script(h.Type("application/ld+json"), g.Attr("nonce", nonce), g.Raw(components.JSON(data.StructData))),
				),
				h.Script(h.Src(htmxSrc), g.Attr("nonce", nonce), h.Defer()),
				h.Script(h.Src(middleware.AssetURL(ctx, "js/site.js")), g.Attr("nonce", nonce), h.Defer()),
			),
			h.Body(
				g.Attr("hx-headers", components.JSON(map[string]string{"X-CSRF-Token": data.CSRFToken})),
				g.Group(body),
			),
		),
	)
}

func ogMeta(property, content string) g.Node {
	if content == "" {
		return nil
	}
	return h.Meta(g.Attr("property", property), h.Content(content))
}
