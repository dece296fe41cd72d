package listview

// Rules declare how a view filters its records.
type Rules[T any, C comparable] struct {
	// Search is applied when the search text is non-empty.
	// A nil Search makes every non-empty text match nothing.
	Search SearchFunc[T]

	// Category extracts the value compared against the category filter.
	// A nil Category makes every concrete filter match nothing.
	Category func(T) C
}

// FilterState is the search text, category and scope currently applied.
type FilterState[T any, C comparable] struct {
	SearchText string
	Category   Filter[C]
	Scope      Scope[T]
}

// PaginationState is the page size and the 1-indexed current page.
type PaginationState struct {
	PageSize    int
	CurrentPage int
}

// Result is the filtered, paginated slice ready for display.
type Result[T any] struct {
	Records      []T `json:"records"`
	TotalMatches int `json:"total_matches"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
	PageSize     int `json:"page_size"`
}

// Empty reports whether the page has no records to show.
func (r Result[T]) Empty() bool {
	return len(r.Records) == 0
}

// HasPrevious reports whether the previous-page control is enabled.
func (r Result[T]) HasPrevious() bool {
	return r.CurrentPage > 1
}

// HasNext reports whether the next-page control is enabled.
func (r Result[T]) HasNext() bool {
	return r.CurrentPage < r.TotalPages
}

// ShowPagination reports whether the pagination control is rendered at all.
func (r Result[T]) ShowPagination() bool {
	return r.TotalPages > 1
}

// Pages returns the page numbers 1..TotalPages.
func (r Result[T]) Pages() []int {
	pages := make([]int, r.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Compute filters records and slices out the current page.
//
// The stored CurrentPage is used as-is: a page beyond TotalPages yields an
// empty Records slice while TotalMatches still reports the match count.
func Compute[T any, C comparable](records []T, rules Rules[T, C], f FilterState[T, C], p PaginationState) Result[T] {
	return Paginate(Match(records, rules, f), p)
}

// Match returns the records passing f, in their original order.
func Match[T any, C comparable](records []T, rules Rules[T, C], f FilterState[T, C]) []T {
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if !f.Category.IsAny() {
			if rules.Category == nil || !f.Category.Matches(rules.Category(r)) {
				continue
			}
		}
		if f.SearchText != "" {
			if rules.Search == nil || !rules.Search(r, f.SearchText) {
				continue
			}
		}
		if !f.Scope.matches(r) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// Paginate slices one page out of an already filtered list.
// A non-positive PageSize puts every match on a single page.
func Paginate[T any](matched []T, p PaginationState) Result[T] {
	res := Result[T]{
		Records:      []T{},
		TotalMatches: len(matched),
		TotalPages:   TotalPages(len(matched), p.PageSize),
		CurrentPage:  p.CurrentPage,
		PageSize:     p.PageSize,
	}

	size := p.PageSize
	if size <= 0 {
		size = len(matched)
	}
	// Compare page numbers before multiplying so a huge stored page cannot overflow.
	if p.CurrentPage < 1 || size == 0 || p.CurrentPage > TotalPages(len(matched), size) {
		return res
	}

	start := (p.CurrentPage - 1) * size
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	res.Records = matched[start:end]
	return res
}

// TotalPages returns ceil(total / pageSize), and 0 when there is nothing to show.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	if pageSize <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// ClampPage limits page to [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	if page < 1 {
		return 1
	}
	if page > upper {
		return upper
	}
	return page
}
