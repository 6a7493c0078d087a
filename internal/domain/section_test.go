package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/hrsite/internal/domain"
)

func TestSectionName_IsValid(t *testing.T) {
	assert.True(t, domain.SectionCTA.IsValid())
	assert.True(t, domain.SectionResourceTemplates.IsValid())
	assert.False(t, domain.SectionName("").IsValid())
	assert.False(t, domain.SectionName("hero").IsValid())
	assert.False(t, domain.SectionName("CTA").IsValid())
}
