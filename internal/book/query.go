package book

// Sort modes accepted by the list endpoint. Anything else falls back to
// SortDefault (newest created first).
const (
	SortDefault = ""
	SortRating  = "rating"
	SortNewest  = "newest"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Query defines search, sort, and pagination for listing books. Build it with
// NewQuery so defaults are always applied; the zero value is not a valid query.
type Query struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

// NewQuery normalizes raw request parameters into a Query. Non-positive page
// and limit values take their defaults; unknown sort modes fall back to the
// default ordering.
func NewQuery(search, sort string, page, limit int) Query {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if sort != SortRating && sort != SortNewest {
		sort = SortDefault
	}
	return Query{Search: search, Sort: sort, Page: page, Limit: limit}
}

// Skip returns the number of documents to skip for the requested page.
func (q Query) Skip() int {
	return (q.Page - 1) * q.Limit
}

// TotalPages returns the page count for a total match count. Zero matches
// yield zero pages; a request for a page past the end returns an empty slice,
// never an error.
func (q Query) TotalPages(total int) int {
	return (total + q.Limit - 1) / q.Limit
}
