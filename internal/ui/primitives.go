// Package ui renders the landing page with gomponents. Every component is a
// pure function of the package-level content, so rendering the same component
// twice yields byte-identical markup.
package ui

import (
	"log/slog"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/mtlprog/hrsite/internal/domain"
	"github.com/mtlprog/hrsite/internal/icon"
)

// ButtonVariant selects the visual style of a Button.
type ButtonVariant string

const (
	ButtonPrimary ButtonVariant = "primary"
	ButtonOutline ButtonVariant = "outline"
)

// Button renders an action as a link styled like a button.
func Button(variant ButtonVariant, action domain.Action, children ...g.Node) g.Node {
	return h.A(
		h.Href(action.Href),
		h.Class("btn btn--"+string(variant)),
		g.Text(action.Label),
		g.Group(children),
	)
}

// Card renders a bordered tile.
func Card(children ...g.Node) g.Node {
	return h.Div(
		h.Class("card"),
		g.Group(children),
	)
}

// Icon renders the named icon inline. Unknown icons render nothing.
func Icon(name domain.IconName, class string) g.Node {
	markup, err := icon.Lookup(name)
	if err != nil {
		slog.Warn("icon not rendered", "icon", string(name), "error", err)
		return nil
	}

	cls := "icon"
	if class != "" {
		cls += " " + class
	}

	return h.Span(
		h.Class(cls),
		g.Attr("data-icon", string(name)),
		g.Attr("aria-hidden", "true"),
		g.Raw(markup),
	)
}
