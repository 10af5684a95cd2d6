package avatars

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementForUserAssignsStableElements(t *testing.T) {
	tests := []struct {
		id       string
		expected Element
	}{
		{"d", ElementEarth},
		{"a", ElementWater},
		{"b", ElementFire},
		{"c", ElementAir},
		{"abc123", ElementEarth},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ElementForUser(tt.id))
		})
	}
}

func TestElementForUserEmptyFallsBackToEarth(t *testing.T) {
	assert.Equal(t, ElementEarth, ElementForUser(""))
}

func TestElementForUserDeterministicAndInDomain(t *testing.T) {
	valid := map[Element]bool{
		ElementEarth: true,
		ElementWater: true,
		ElementFire:  true,
		ElementAir:   true,
	}

	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("member-%d", i)
		el := ElementForUser(id)
		assert.True(t, valid[el], "element %q out of domain for %q", el, id)
		assert.Equal(t, el, ElementForUser(id))
	}
}

func TestValidElement(t *testing.T) {
	for _, el := range Elements {
		assert.True(t, ValidElement(string(el)))
	}
	assert.False(t, ValidElement("plasma"))
	assert.False(t, ValidElement(""))
	assert.False(t, ValidElement("Earth"))
}
