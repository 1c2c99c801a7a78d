package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Reserved query keys that control the shape of a listing rather than
// filtering entities. The compiler strips these before interpretation.
const (
	KeySelect = "select"
	KeySort   = "sort"
	KeyPage   = "page"
	KeyLimit  = "limit"
)

// Defaults used when a caller supplies nothing, or garbage. Parameter
// coercion is deliberately permissive: bad input falls back to these
// instead of surfacing a validation error.
const (
	DefaultPage           = 1
	DefaultListPageSize   = 25
	DefaultSearchPageSize = 12
	DefaultRadiusKm       = 10
)

// Coordinates is a latitude/longitude pair. A pair is only considered
// present when both halves parse; a lone lat or lng is ignored.
type Coordinates struct {
	Lat float64
	Lng float64
}

// PageRequest is the coerced page/limit pair. Page and Limit are always
// positive after parsing.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SearchParams is the typed, defaulted form of the item discovery query
// string. Construct it with ParseSearchParams; zero values mean "absent".
type SearchParams struct {
	Query     string
	Category  string
	Condition string
	Location  string
	Coords    *Coordinates
	RadiusKm  float64
	Sort      SortKey
	Page      PageRequest
}

// PositiveInt parses raw as a positive integer, falling back to def when
// raw is empty, non-numeric, or < 1. This is the single coercion rule for
// page/limit style parameters.
func PositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// PositiveFloat parses raw as a positive float, falling back to def.
func PositiveFloat(raw string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

// ParsePageRequest coerces page/limit query values. maxLimit caps the page
// size; a requested limit above the cap is clamped, not rejected.
func ParsePageRequest(values url.Values, defaultLimit, maxLimit int) PageRequest {
	req := PageRequest{
		Page:  PositiveInt(values.Get(KeyPage), DefaultPage),
		Limit: PositiveInt(values.Get(KeyLimit), defaultLimit),
	}
	if maxLimit > 0 && req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	return req
}

// ParseCoordinates returns a coordinate pair only when both lat and lng
// parse as floats. Partial pairs are treated as absent rather than guessed
// at, so geo filtering silently stays off.
func ParseCoordinates(values url.Values) *Coordinates {
	latRaw := strings.TrimSpace(values.Get("lat"))
	lngRaw := strings.TrimSpace(values.Get("lng"))
	if latRaw == "" || lngRaw == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil
	}
	return &Coordinates{Lat: lat, Lng: lng}
}

// ParseSearchParams turns the raw item search query string into a typed,
// fully defaulted SearchParams. It never fails; anything unparseable takes
// its default.
func ParseSearchParams(values url.Values, maxLimit int) SearchParams {
	return SearchParams{
		Query:     strings.TrimSpace(values.Get("q")),
		Category:  strings.TrimSpace(values.Get("category")),
		Condition: strings.TrimSpace(values.Get("condition")),
		Location:  strings.TrimSpace(values.Get("location")),
		Coords:    ParseCoordinates(values),
		RadiusKm:  PositiveFloat(values.Get("distance"), DefaultRadiusKm),
		Sort:      ParseSortKey(values.Get(KeySort)),
		Page:      ParsePageRequest(values, DefaultSearchPageSize, maxLimit),
	}
}
