package domain

// IconName identifies an icon in the site's icon set.
type IconName string

// Action is the target of a call-to-action button.
type Action struct {
	Label string
	Href  string
}

// CTA holds the copy of the call-to-action section.
type CTA struct {
	Heading    string
	Subheading string
	Benefits   []string
	Primary    Action
	Secondary  Action
	Disclaimer string
}

// TemplateCategory pairs a decorative icon with a category title.
type TemplateCategory struct {
	Icon  IconName
	Title string
}

// ResourceTemplates holds the copy of the template-category showcase.
type ResourceTemplates struct {
	Heading    string
	Subheading string
	Categories []TemplateCategory
}
