package domain

// SectionName identifies a renderable block of the landing page.
type SectionName string

const (
	SectionCTA               SectionName = "cta"
	SectionResourceTemplates SectionName = "resource-templates"
)

// IsValid checks if the name is one of the known sections.
func (s SectionName) IsValid() bool {
	switch s {
	case SectionCTA, SectionResourceTemplates:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s SectionName) String() string {
	return string(s)
}
