package service

// Pagination bounds for list endpoints. Size outside the bounds is a caller
// error rejected before the store is touched.
const (
	DefaultPage     = 1
	DefaultPageSize = 6
	MaxPageSize     = 50
)

// Page is the envelope returned by every list operation. Items holds at
// most Size entities in ascending id order; Total is the full unfiltered
// count.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// PageCount is the single source of truth for page-count arithmetic:
// ceil(total/size), with a minimum of one page for an empty collection.
// Both users and resources must agree on this.
func PageCount(total int64, size int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}

// NewPage assembles a Page envelope. A page beyond the last yields an
// empty Items slice with Total and Pages unchanged; it is not an error.
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: PageCount(total, size),
	}
}
