package designtokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCSS(t *testing.T) {
	css := RenderCSS(map[string]string{
		"color-primary": "#ff0000",
		"brand-glow":    "0 0 4px red; } body { display:none",
		"Bad Name":      "1px",
	})

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --color-primary: #ff0000;\n")
	assert.Contains(t, css, "  --radius-base: 0.5rem;\n")
	assert.Contains(t, css, "  --brand-glow: 0 0 4px red  body  display:none;\n")
	assert.NotContains(t, css, "Bad Name")

	// sorted output
	assert.Less(t, strings.Index(css, "--brand-glow"), strings.Index(css, "--color-primary"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(map[string]string{"color-primary": "#000"}))
	assert.Error(t, Validate(map[string]string{"ColorPrimary": "#000"}))
	assert.Error(t, Validate(map[string]string{"color-primary": "  "}))
}
