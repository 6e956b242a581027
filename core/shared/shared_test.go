package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Annoyed", Capitalize("ANNOYED"))
	assert.Equal(t, "Bonus", Capitalize("bONUS"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Émoji", Capitalize("éMOJI"))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("4"))
	assert.True(t, IsDigits("12"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("2a"))
	assert.False(t, IsDigits("(Static)"))
}
