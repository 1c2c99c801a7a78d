package query

// Capabilities describes which indexed features a collection's schema
// declares. Strategies branch on these flags up front instead of probing
// the store and recovering from failures, so the degradation path is
// inspectable and testable on its own.
type Capabilities struct {
	// HasGeoIndex is true when the collection declares an indexed
	// latitude/longitude pair that proximity filtering may use.
	HasGeoIndex bool

	// HasTextIndex is true when the collection has a full-text index.
	// TextIndexTable names it; with SQLite this is an FTS5 shadow table.
	HasTextIndex   bool
	TextIndexTable string

	// TextFields are the columns substring search falls back to when no
	// text index is available.
	TextFields []string
}
