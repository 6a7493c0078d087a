package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mtlprog/hrsite/internal/domain"
)

// StylesheetPath is where the handler serves the embedded stylesheet.
const StylesheetPath = "/static/site.css"

// sectionIDs lists the sections in page order.
var sectionIDs = [...]domain.SectionName{
	domain.SectionCTA,
	domain.SectionResourceTemplates,
}

var sectionRenderers = map[domain.SectionName]func() g.Node{
	domain.SectionCTA:               CTASection,
	domain.SectionResourceTemplates: ResourceTemplatesSection,
}

// Sections returns the section names in page order.
func Sections() []domain.SectionName {
	out := make([]domain.SectionName, len(sectionIDs))
	copy(out, sectionIDs[:])
	return out
}

// Section returns the named section.
func Section(name domain.SectionName) (g.Node, error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrSectionNotFound, name)
	}
	render, ok := sectionRenderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSectionNotFound, name)
	}
	return render(), nil
}

// Page renders a full HTML document containing every section in page order.
func Page(title string) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
			),
			h.Body(
				h.Main(
					g.Group(g.Map(Sections(), func(name domain.SectionName) g.Node {
						return sectionRenderers[name]()
					})),
				),
			),
		),
	)
}

// Render renders node to a string.
func Render(node g.Node) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return b.String(), nil
}
