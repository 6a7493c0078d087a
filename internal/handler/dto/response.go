package dto

import "github.com/mtlprog/hrsite/internal/domain"

// SectionsResponse represents the response for GET /api/v1/sections.
type SectionsResponse struct {
	Sections []string `json:"sections"`
}

// NewSectionsResponse creates a SectionsResponse preserving page order.
func NewSectionsResponse(names []domain.SectionName) SectionsResponse {
	sections := make([]string, 0, len(names))
	for _, name := range names {
		sections = append(sections, string(name))
	}
	return SectionsResponse{Sections: sections}
}
