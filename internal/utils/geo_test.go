package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swiftcab/backend/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	bangalore := models.Location{Latitude: 12.9716, Longitude: 77.5946}
	mysore := models.Location{Latitude: 12.2958, Longitude: 76.6394}

	// Roughly 128km apart
	distance := CalculateDistance(bangalore, mysore)
	assert.InDelta(t, 128, distance, 5)

	assert.Zero(t, CalculateDistance(bangalore, bangalore))
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: 12.9716, Longitude: 77.5946}

	hash := EncodeLocation(loc, 6)
	assert.Len(t, hash, 6)

	// Nearby points share a coarse cell
	near := models.Location{Latitude: 12.9717, Longitude: 77.5947}
	assert.Equal(t, EncodeLocation(loc, 5), EncodeLocation(near, 5))
}
