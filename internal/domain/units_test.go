package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKmToMiles(t *testing.T) {
	assert.Equal(t, 62.1, KmToMiles(100))
	assert.Equal(t, 0.6, KmToMiles(1))
	assert.Equal(t, 0.0, KmToMiles(0))
}

func TestMetersToKm(t *testing.T) {
	assert.Equal(t, 100.0, MetersToKm(100000))
	assert.Equal(t, 1.5, MetersToKm(1549))
	assert.Equal(t, 1.6, MetersToKm(1551))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "0m", FormatDuration(59))
	assert.Equal(t, "1m", FormatDuration(60))
	assert.Equal(t, "59m", FormatDuration(3599))
	assert.Equal(t, "1h 0m", FormatDuration(3600))
	assert.Equal(t, "1h 1m", FormatDuration(3661))
	assert.Equal(t, "27h 46m", FormatDuration(99999))
}
