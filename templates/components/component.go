package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents tree to templ.Component so handlers render every
// page and partial the same way. The tree is built per render with the request
// context, which carries the CSP nonce.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Icon renders a decorative icon styled by the icon-<name> class
func Icon(name string, class string) g.Node {
	return g.El("span", g.Attr("class", "icon icon-"+name+" "+class), g.Attr("aria-hidden", "true"))
}
