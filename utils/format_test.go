package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp500.000", FormatIDR(500000))
	assert.Equal(t, "Rp1.500.000", FormatIDR(1500000))
	assert.Equal(t, "Rp0", FormatIDR(0))
	// Zero decimal places, rounded.
	assert.Equal(t, "Rp99.500", FormatIDR(99499.9))
}

func TestFormatRoomPrice(t *testing.T) {
	assert.Equal(t, "Rp500.000/malam", FormatRoomPrice(500000))
}

func TestFormatFacilityPrice(t *testing.T) {
	price := 25000.0
	assert.Equal(t, "Rp25.000", FormatFacilityPrice(&price))
	assert.Equal(t, "Gratis", FormatFacilityPrice(nil))
}
