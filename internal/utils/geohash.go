package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/twpayne/go-polyline"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// DefaultGeohashPrecision gives cells of roughly 150m
const DefaultGeohashPrecision = 7

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.DecodeCenter(hash)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TrackDistance sums the great-circle distance between consecutive samples, in kilometers
func TrackDistance(track []models.Location) float64 {
	var total float64
	for i := 1; i < len(track); i++ {
		total += CalculateDistance(track[i-1], track[i])
	}
	return total
}

// EncodePolyline encodes samples in the Google encoded polyline format
func EncodePolyline(track []models.Location) string {
	coords := make([][]float64, len(track))
	for i, l := range track {
		coords[i] = []float64{l.Latitude, l.Longitude}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline decodes an encoded polyline into coordinates
func DecodePolyline(encoded string) ([]models.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	out := make([]models.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = models.Coordinate{Latitude: c[0], Longitude: c[1]}
	}
	return out, nil
}
