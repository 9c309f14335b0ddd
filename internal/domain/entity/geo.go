// Package entity contains the core business objects of the project.
package entity

// GeoPoint is a WGS84 coordinate expressed in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`  // Degrees north, within [-90, 90].
	Longitude float64 `json:"longitude"` // Degrees east, within [-180, 180].
}

// IsValid reports whether both coordinates are inside their ranges. NaN is never valid.
func (p GeoPoint) IsValid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// BoundingBox is an axis-aligned latitude/longitude rectangle used as a broad-phase filter.
// It is derived from a center and radius and never persisted.
type BoundingBox struct {
	SouthwestCorner GeoPoint `json:"southwest_corner"`
	NortheastCorner GeoPoint `json:"northeast_corner"`
}

// CrossesAntimeridian reports whether the box wraps around longitude ±180.
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.SouthwestCorner.Longitude > b.NortheastCorner.Longitude
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p GeoPoint) bool {
	if p.Latitude < b.SouthwestCorner.Latitude || p.Latitude > b.NortheastCorner.Latitude {
		return false
	}

	if b.CrossesAntimeridian() {
		return p.Longitude >= b.SouthwestCorner.Longitude || p.Longitude <= b.NortheastCorner.Longitude
	}

	return p.Longitude >= b.SouthwestCorner.Longitude && p.Longitude <= b.NortheastCorner.Longitude
}

// LongitudeRanges splits the box into at most two non-wrapping [min, max] longitude ranges,
// which is what range queries against a store need.
func (b BoundingBox) LongitudeRanges() [][2]float64 {
	if b.CrossesAntimeridian() {
		return [][2]float64{
			{b.SouthwestCorner.Longitude, 180},
			{-180, b.NortheastCorner.Longitude},
		}
	}

	return [][2]float64{{b.SouthwestCorner.Longitude, b.NortheastCorner.Longitude}}
}
