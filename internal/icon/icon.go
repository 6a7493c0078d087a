// Package icon is the site's inline SVG icon set. Markup is passed through an
// SVG allow-list when a Set is built, so only sanitized markup is ever
// rendered into pages.
package icon

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mtlprog/hrsite/internal/domain"
)

// Set maps icon names to sanitized SVG markup.
type Set struct {
	icons map[domain.IconName]string
}

// NewSet sanitizes every entry of raw and returns the resulting set.
func NewSet(raw map[domain.IconName]string) (*Set, error) {
	icons := make(map[domain.IconName]string, len(raw))
	for name, markup := range raw {
		cleaned := Sanitize(markup)
		if cleaned == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrIconEmpty, name)
		}
		icons[name] = cleaned
	}
	return &Set{icons: icons}, nil
}

// Lookup returns the sanitized markup for name.
func (s *Set) Lookup(name domain.IconName) (string, error) {
	markup, ok := s.icons[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrIconNotFound, name)
	}
	return markup, nil
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the built-in icon set.
func Default() *Set {
	defaultOnce.Do(func() {
		set, err := NewSet(builtin)
		if err != nil {
			panic(fmt.Sprintf("icon: built-in set: %v", err))
		}
		defaultSet = set
	})
	return defaultSet
}

// Lookup returns the sanitized markup for name from the built-in set.
func Lookup(name domain.IconName) (string, error) {
	return Default().Lookup(name)
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// bluemonday lowercases attribute names; SVG outside text/html needs viewBox.
var attrCase = strings.NewReplacer(` viewbox="`, ` viewBox="`)

// Sanitize strips everything outside the SVG allow-list from raw.
// It returns "" when nothing survives.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return attrCase.Replace(strings.TrimSpace(sanitizer().Sanitize(trimmed)))
}

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon")

		p.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon"} {
			p.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "width", "height",
			).OnElements(el)
		}

		policy = p
	})
	return policy
}
