package pagination

// PaginationInformation carries the page arithmetic shared by every listing
// view. It is built fresh per request and never persisted.
type PaginationInformation struct {
	CurrentPage  int    `json:"currentPage"`
	TotalPages   int    `json:"totalPages"`
	Offset       int    `json:"offset"`
	CurrentQuery string `json:"currentQuery"`
}

// Paginate computes the offset and total page count for a listing request.
// Zero items yields zero pages. Out-of-range pages are not clamped: the
// repository simply returns an empty result set for an offset past the end.
func Paginate(currentPage, totalItems, pageSize int, currentQuery string) PaginationInformation {
	return PaginationInformation{
		CurrentPage:  currentPage,
		TotalPages:   (totalItems + pageSize - 1) / pageSize,
		Offset:       (currentPage - 1) * pageSize,
		CurrentQuery: currentQuery,
	}
}
