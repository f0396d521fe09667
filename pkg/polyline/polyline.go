// Package polyline encodes and decodes Google encoded polylines at 1e5
// precision.
package polyline

import (
	"fmt"

	gopolyline "github.com/twpayne/go-polyline"
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Encode returns the encoded polyline for points.
func Encode(points []Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Latitude, p.Longitude}
	}
	return string(gopolyline.EncodeCoords(coords))
}

// Decode parses an encoded polyline. An empty string decodes to no points.
func Decode(encoded string) ([]Point, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, rest, err := gopolyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("polyline: decode: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("polyline: %d trailing bytes", len(rest))
	}

	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{Latitude: c[0], Longitude: c[1]}
	}
	return points, nil
}
