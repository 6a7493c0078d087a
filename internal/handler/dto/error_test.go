package dto_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/hrsite/internal/domain"
	"github.com/mtlprog/hrsite/internal/handler/dto"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"section", fmt.Errorf("%w: %q", domain.ErrSectionNotFound, "hero"), http.StatusNotFound, "SECTION_NOT_FOUND"},
		{"icon", fmt.Errorf("%w: rocket", domain.ErrIconNotFound), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unmapped", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, message := dto.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, message)
		})
	}
}

func TestMapDomainError_HidesInternalMessage(t *testing.T) {
	_, _, message := dto.MapDomainError(errors.New("template exploded at /srv/secret"))
	assert.Equal(t, "Internal server error", message)
}

func TestNewSectionsResponse(t *testing.T) {
	resp := dto.NewSectionsResponse([]domain.SectionName{domain.SectionCTA, domain.SectionResourceTemplates})
	assert.Equal(t, []string{"cta", "resource-templates"}, resp.Sections)
}
