// Package content holds the display copy of the landing page. The lists are
// fixed at compile time and every accessor returns a fresh copy, so callers
// never see each other's modifications.
package content

import "github.com/mtlprog/hrsite/internal/domain"

// Icon names used by the content. Each must exist in the icon set.
const (
	IconCheck     domain.IconName = "check-circle"
	IconUserPlus  domain.IconName = "user-plus"
	IconTrending  domain.IconName = "trending-up"
	IconBook      domain.IconName = "book-open"
	IconWallet    domain.IconName = "wallet"
	IconBriefcase domain.IconName = "briefcase"
	IconCalendar  domain.IconName = "calendar"
	IconShield    domain.IconName = "shield-check"
	IconHeart     domain.IconName = "heart"
	IconArrow     domain.IconName = "arrow-right"
)

var ctaBenefits = [...]string{
	"14-day free trial",
	"No credit card required",
	"Cancel anytime",
	"Free onboarding support",
}

var templateCategories = [...]domain.TemplateCategory{
	{Icon: IconUserPlus, Title: "Onboarding"},
	{Icon: IconTrending, Title: "Performance Reviews"},
	{Icon: IconBook, Title: "Policies & Handbooks"},
	{Icon: IconWallet, Title: "Payroll & Compensation"},
	{Icon: IconBriefcase, Title: "Recruiting & Hiring"},
	{Icon: IconCalendar, Title: "Time Off & Leave"},
	{Icon: IconShield, Title: "Compliance"},
	{Icon: IconHeart, Title: "Employee Engagement"},
}

// CTABenefits returns the benefit phrases of the call-to-action section in
// display order.
func CTABenefits() []string {
	out := make([]string, len(ctaBenefits))
	copy(out, ctaBenefits[:])
	return out
}

// TemplateCategories returns the resource template categories in display order.
func TemplateCategories() []domain.TemplateCategory {
	out := make([]domain.TemplateCategory, len(templateCategories))
	copy(out, templateCategories[:])
	return out
}

// CTA returns the full copy of the call-to-action section.
func CTA() domain.CTA {
	return domain.CTA{
		Heading:    "Ready to transform your HR operations?",
		Subheading: "Join thousands of growing teams that run hiring, onboarding, reviews and payroll from one place.",
		Benefits:   CTABenefits(),
		Primary:    domain.Action{Label: "Start Free Trial", Href: "/signup"},
		Secondary:  domain.Action{Label: "Book a Demo", Href: "/demo"},
		Disclaimer: "Trusted by 2,000+ companies. Setup takes less than 5 minutes.",
	}
}

// ResourceTemplates returns the full copy of the template-category showcase.
func ResourceTemplates() domain.ResourceTemplates {
	return domain.ResourceTemplates{
		Heading:    "HR Templates & Resources",
		Subheading: "Ready-to-use templates for every stage of the employee lifecycle.",
		Categories: TemplateCategories(),
	}
}

// Icons returns every icon name referenced by the content, without duplicates.
func Icons() []domain.IconName {
	seen := make(map[domain.IconName]bool)
	out := []domain.IconName{IconCheck, IconArrow}
	seen[IconCheck], seen[IconArrow] = true, true
	for _, c := range templateCategories {
		if !seen[c.Icon] {
			seen[c.Icon] = true
			out = append(out, c.Icon)
		}
	}
	return out
}
