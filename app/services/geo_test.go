package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Kolkata to New Delhi is roughly 1300 km.
	d := haversineKm(22.5726, 88.3639, 28.6139, 77.2090)
	assert.InDelta(t, 1300, d, 30)

	// Zero distance.
	assert.InDelta(t, 0, haversineKm(22.57, 88.36, 22.57, 88.36), 0.001)

	// Order of the points does not matter.
	assert.InDelta(t,
		haversineKm(22.57, 88.36, 28.61, 77.21),
		haversineKm(28.61, 77.21, 22.57, 88.36),
		0.001)
}
