package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mtlprog/hrsite/internal/content"
	"github.com/mtlprog/hrsite/internal/domain"
)

// CTASection renders the closing call-to-action block: heading, benefit
// list, trial and demo buttons, and the disclaimer line.
func CTASection() g.Node {
	cta := content.CTA()
	id := string(domain.SectionCTA)

	return h.Section(
		h.ID(id),
		h.Class("cta"),
		g.Attr("aria-labelledby", id+"-heading"),
		h.Div(
			h.Class("container cta__inner"),
			h.H2(h.ID(id+"-heading"), h.Class("cta__heading"), g.Text(cta.Heading)),
			h.P(h.Class("cta__subheading"), g.Text(cta.Subheading)),

			h.Ul(
				h.Class("cta__benefits"),
				g.Group(g.Map(cta.Benefits, func(benefit string) g.Node {
					return h.Li(
						h.Class("cta__benefit"),
						Icon(content.IconCheck, "icon--success"),
						h.Span(g.Text(benefit)),
					)
				})),
			),

			h.Div(
				h.Class("cta__actions"),
				Button(ButtonPrimary, cta.Primary),
				Button(ButtonOutline, cta.Secondary, Icon(content.IconArrow, "icon--sm")),
			),

			h.P(h.Class("cta__disclaimer"), g.Text(cta.Disclaimer)),
		),
	)
}
