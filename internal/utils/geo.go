package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// CellPrecision is the geohash precision used for ride origin cells.
// Five characters is roughly a 5km x 5km cell, campus scale.
const CellPrecision = 5

// EncodeCell converts coordinates to the origin-cell geohash stored on a ride
func EncodeCell(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, CellPrecision)
}

// CellNeighbors returns a cell together with its eight neighbors, covering
// searches near a cell boundary.
func CellNeighbors(cell string) []string {
	return append(geohash.Neighbors(cell), cell)
}

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula.
func CalculateDistance(p1, p2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
