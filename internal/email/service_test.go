package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/catalog/internal/config"
)

func TestLoadsEmbeddedTemplates(t *testing.T) {
	svc, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	tmpl, ok := svc.Templates["catalog_change"]
	assert.True(t, ok)
	assert.NotNil(t, tmpl.HTML)
	assert.NotNil(t, tmpl.Plaintext)
}

func TestRenderTemplateBothParts(t *testing.T) {
	svc, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	html, text, err := svc.renderTemplate("catalog_change", struct {
		Action     string
		ConfigType string
		ItemName   string
	}{
		Action:     "item_add",
		ConfigType: "departments",
		ItemName:   "Quality Assurance",
	})
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "Quality Assurance"))
	assert.True(t, strings.Contains(text, "Quality Assurance"))
}

func TestRenderTemplateUnknownName(t *testing.T) {
	svc, err := NewEmailService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	_, _, err = svc.renderTemplate("welcome", nil)
	assert.Error(t, err)
}
