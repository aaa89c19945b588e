package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressRoundTrip(t *testing.T) {
	addr := Address{
		FirstName: "Maria",
		LastName:  "Lopez",
		Address1:  "Calle Mayor 12",
		City:      "Madrid",
		Zip:       "28013",
		Country:   "ES",
		Phone:     "+34 600 000 000",
	}

	parsed := ParseAddress(addr.Serialize())
	assert.Equal(t, addr, parsed)
}

func TestParseAddressLegacyPlainText(t *testing.T) {
	parsed := ParseAddress("12 Main St, Springfield")
	assert.Equal(t, "12 Main St, Springfield", parsed.Address1)
	assert.Empty(t, parsed.City)
}

func TestParseAddressEmpty(t *testing.T) {
	assert.Equal(t, Address{}, ParseAddress(""))
}

func TestAddressLines(t *testing.T) {
	addr := Address{
		FirstName: "Maria",
		LastName:  "Lopez",
		Address1:  "Calle Mayor 12",
		Address2:  "3B",
		City:      "Madrid",
		Zip:       "28013",
		Province:  "Madrid",
		Country:   "ES",
	}

	lines := addr.Lines()
	assert.Equal(t, []string{
		"Maria Lopez",
		"Calle Mayor 12, 3B",
		"Madrid 28013",
		"Madrid, ES",
	}, lines)
}
