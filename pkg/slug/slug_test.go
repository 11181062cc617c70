package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"About Us", "about-us"},
		{"  Pricing & Plans  ", "pricing-and-plans"},
		{"Café Crème", "cafe-creme"},
		{"How do I reset my password?", "how-do-i-reset-my-password"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("home"))
	assert.True(t, IsValid("ai-automation-2"))
	assert.False(t, IsValid("About"))
	assert.False(t, IsValid("double--hyphen"))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("with/slash"))
}
