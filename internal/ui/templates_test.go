package ui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/hrsite/internal/content"
	"github.com/mtlprog/hrsite/internal/domain"
	"github.com/mtlprog/hrsite/internal/ui"
)

func TestResourceTemplatesSection_Categories(t *testing.T) {
	doc := parse(t, ui.ResourceTemplatesSection())

	cards := findAll(doc, byClass("card"))
	require.Len(t, cards, 8)

	got := make([]domain.TemplateCategory, 0, len(cards))
	for _, card := range cards {
		titles := findAll(card, byClass("card__title"))
		require.Len(t, titles, 1)

		icons := findAll(card, byClass("icon"))
		require.Len(t, icons, 1)
		assert.NotEmpty(t, findAll(icons[0], byTag("svg")))

		got = append(got, domain.TemplateCategory{
			Icon:  domain.IconName(attr(icons[0], "data-icon")),
			Title: text(titles[0]),
		})
	}

	if diff := cmp.Diff(content.TemplateCategories(), got); diff != "" {
		t.Errorf("category grid mismatch (-want +got):\n%s", diff)
	}
}

func TestResourceTemplatesSection_Copy(t *testing.T) {
	doc := parse(t, ui.ResourceTemplatesSection())
	rt := content.ResourceTemplates()

	sections := findAll(doc, byTag("section"))
	require.Len(t, sections, 1)
	assert.Equal(t, "resource-templates", attr(sections[0], "id"))

	headings := findAll(doc, byTag("h2"))
	require.Len(t, headings, 1)
	assert.Equal(t, rt.Heading, text(headings[0]))

	grid := findAll(doc, byClass("templates__grid"))
	require.Len(t, grid, 1)
	assert.Equal(t, "list", attr(grid[0], "role"))
	assert.Len(t, findAll(grid[0], byTag("li")), 8)
}

func TestResourceTemplatesSection_EscapesTitles(t *testing.T) {
	out, err := ui.Render(ui.ResourceTemplatesSection())
	require.NoError(t, err)

	assert.Contains(t, out, "Policies &amp; Handbooks")
	assert.NotContains(t, out, "Policies & Handbooks")
}

func TestResourceTemplatesSection_Deterministic(t *testing.T) {
	first, err := ui.Render(ui.ResourceTemplatesSection())
	require.NoError(t, err)
	second, err := ui.Render(ui.ResourceTemplatesSection())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-render differs (-first +second):\n%s", diff)
	}
}
