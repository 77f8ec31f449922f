package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDonationProperty(t *testing.T) {
	// The donate property wins even when a price is present
	l := &Listing{
		Price:      "R$ 150",
		Properties: []Property{{Name: "donate", Label: "Doação", Value: "Sim"}},
	}
	assert.True(t, IsDonation(l))

	l.Properties[0].Value = "Não"
	assert.False(t, IsDonation(l))
}

func TestIsDonationAbsentPrice(t *testing.T) {
	// An absent price must classify as donation without any parsing
	assert.True(t, IsDonation(&Listing{Price: ""}))
	assert.True(t, IsDonation(&Listing{Price: "   "}))
}

func TestIsDonationZeroPrice(t *testing.T) {
	assert.True(t, IsDonation(&Listing{Price: "R$ 0"}))
	assert.True(t, IsDonation(&Listing{Price: "R$ 0,00"}))
}

func TestIsDonationPricedListing(t *testing.T) {
	assert.False(t, IsDonation(&Listing{Price: "R$ 50"}))
	// Unparseable non-empty price is not a donation; it is just unknown
	assert.False(t, IsDonation(&Listing{Price: "a combinar"}))
}
