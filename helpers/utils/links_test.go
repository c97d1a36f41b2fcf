package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapsSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=12%20Road%209%2C%20Maadi%20%26%20Co",
		MapsSearchURL("12 Road 9, Maadi & Co"))
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=%D8%B4%20%D9%81%D9%8A%D8%B5%D9%84",
		MapsSearchURL("ش فيصل"))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "Mall%20(A)%20*%20it's!", EncodeURIComponent("Mall (A) * it's!"))
	assert.Equal(t, "a-b_c.d~e", EncodeURIComponent("a-b_c.d~e"))
	assert.Equal(t, "%2B%2F%3F%23", EncodeURIComponent("+/?#"))
}

func TestMapsEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/embed/v1/place?key=KEY-1&q=Road%209",
		MapsEmbedURL("KEY-1", "Road 9"))
}

func TestDialURI(t *testing.T) {
	assert.Equal(t, "tel:0100123", DialURI("0100 123"))
	assert.Empty(t, DialURI(""))
	assert.Empty(t, DialURI("  "))
}

func TestGenerateShortID(t *testing.T) {
	a, b := GenerateShortID(), GenerateShortID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
	assert.Len(t, GenerateUUID(), 36)
}
