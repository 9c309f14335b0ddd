// Package geo provides the spherical geometry used to narrow and confirm proximity matches.
package geo

import (
	"localdrop/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the spherical radius every distance and bound is computed with.
const EarthRadiusMeters = orb.EarthRadius

// BoundingBox returns the axis-aligned box containing every point within radiusMeters of center.
// Latitude extends along the meridian; the longitude half-width is widened for meridian convergence at
// the center's latitude. Boxes reaching a pole span all longitudes. A radius of zero or less collapses
// the box onto center.
func BoundingBox(center entity.GeoPoint, radiusMeters float64) entity.BoundingBox {
	if radiusMeters <= 0 {
		return entity.BoundingBox{SouthwestCorner: center, NortheastCorner: center}
	}

	bound := orbgeo.NewBoundAroundPoint(toPoint(center), radiusMeters)

	return entity.BoundingBox{
		SouthwestCorner: fromPoint(bound.Min),
		NortheastCorner: fromPoint(bound.Max),
	}
}

// Distance returns the great-circle distance between a and b in meters, using the haversine formula.
func Distance(a, b entity.GeoPoint) float64 {
	return orbgeo.DistanceHaversine(toPoint(a), toPoint(b))
}

// toPoint converts to orb's [lon, lat] ordering.
func toPoint(p entity.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

func fromPoint(p orb.Point) entity.GeoPoint {
	return entity.GeoPoint{Latitude: p.Lat(), Longitude: p.Lon()}
}
