package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mtlprog/hrsite/internal/content"
	"github.com/mtlprog/hrsite/internal/domain"
)

// ResourceTemplatesSection renders the grid of template categories, one card
// per category.
func ResourceTemplatesSection() g.Node {
	rt := content.ResourceTemplates()
	id := string(domain.SectionResourceTemplates)

	return h.Section(
		h.ID(id),
		h.Class("templates"),
		g.Attr("aria-labelledby", id+"-heading"),
		h.Div(
			h.Class("container"),
			h.Div(
				h.Class("templates__header"),
				h.H2(h.ID(id+"-heading"), h.Class("templates__heading"), g.Text(rt.Heading)),
				h.P(h.Class("templates__subheading"), g.Text(rt.Subheading)),
			),
			h.Ul(
				h.Class("templates__grid"),
				g.Attr("role", "list"),
				g.Group(g.Map(rt.Categories, categoryCard)),
			),
		),
	)
}

func categoryCard(c domain.TemplateCategory) g.Node {
	return h.Li(
		h.Class("templates__item"),
		Card(
			h.Div(h.Class("card__icon"), Icon(c.Icon, "")),
			h.H3(h.Class("card__title"), g.Text(c.Title)),
		),
	)
}
