package shared

// Filter carries the listing options repositories understand. Zero values
// mean "no constraint"; pagination applies only when both Page and
// PageSize are positive.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}
