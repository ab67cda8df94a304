package entity

// Page is one offset-based page of a listing.
type Page[T any] struct {
	Items   []T
	Page    int
	PerPage int
	Total   int64
}

// TotalPages returns the number of pages needed to cover Total records.
func (p Page[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}
