package model

// Resource represents a stored color resource record, the "unknown"
// entity of the public reqres API.
type Resource struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// Year bounds accepted at the API boundary. The store itself does not
// enforce them.
const (
	MinResourceYear = 1900
	MaxResourceYear = 2100
)

// ValidYear reports whether year falls within the accepted range.
func ValidYear(year int) bool {
	return year >= MinResourceYear && year <= MaxResourceYear
}

// ResourcePatch carries a partial update for a resource.
// Nil fields are left untouched by the store.
type ResourcePatch struct {
	Name         *string
	Year         *int
	Color        *string
	PantoneValue *string
}

// IsEmpty reports whether the patch carries no changes.
func (p ResourcePatch) IsEmpty() bool {
	return p.Name == nil && p.Year == nil && p.Color == nil && p.PantoneValue == nil
}
