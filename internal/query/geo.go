package query

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// metersPerDegree is the length of one degree of latitude. Longitude
// degrees shrink by cos(latitude).
const metersPerDegree = 111320.0

// Proximity constrains results to a radius around a point. The radius is
// carried in the store's canonical unit, meters. Applying the predicate
// implies nearest-first ordering unless an explicit sort overrides it.
type Proximity struct {
	Lat          float64
	Lng          float64
	RadiusMeters float64
}

// NewProximity builds a proximity predicate from a coordinate pair and a
// radius in kilometers. The kilometer to meter conversion happens here and
// nowhere else.
func NewProximity(coords Coordinates, radiusKm float64) Proximity {
	return Proximity{
		Lat:          coords.Lat,
		Lng:          coords.Lng,
		RadiusMeters: radiusKm * 1000,
	}
}

// Apply adds the bounding-box constraint for the radius. Rows with no
// coordinates are excluded: an item that never declared a location cannot
// be "within 5km" of anything.
func (p Proximity) Apply(tx *gorm.DB) *gorm.DB {
	latDelta := p.RadiusMeters / metersPerDegree
	tx = tx.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", p.Lat-latDelta, p.Lat+latDelta)

	// Near the poles cos(lat) collapses and the longitude band covers the
	// whole globe, so the bound is dropped rather than divided by ~zero.
	cosLat := math.Cos(p.Lat * math.Pi / 180)
	if cosLat > 1e-6 {
		lngDelta := p.RadiusMeters / (metersPerDegree * cosLat)
		tx = tx.Where("longitude BETWEEN ? AND ?", p.Lng-lngDelta, p.Lng+lngDelta)
	}
	return tx
}

// OrderClause returns the nearest-first ordering expression implied by the
// predicate: an equirectangular squared distance, monotonic in true
// distance at city scale, built from plain arithmetic so it runs on any
// SQLite build. The operands are parsed floats, so inlining them is safe.
func (p Proximity) OrderClause() string {
	cosLat := math.Cos(p.Lat * math.Pi / 180)
	return fmt.Sprintf(
		"((latitude - %[1]g) * (latitude - %[1]g) + (longitude - %[2]g) * (longitude - %[2]g) * %[3]g) ASC",
		p.Lat, p.Lng, cosLat*cosLat,
	)
}

// GeoPredicate resolves coordinates and radius against the collection's
// capabilities. Without a geo index, or without a full coordinate pair,
// the result is nil and the search silently proceeds unfiltered.
func GeoPredicate(coords *Coordinates, radiusKm float64, caps Capabilities) *Proximity {
	if coords == nil || !caps.HasGeoIndex {
		return nil
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	p := NewProximity(*coords, radiusKm)
	return &p
}
