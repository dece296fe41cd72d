package listview

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 5

// Option configures an Engine.
type Option func(*PaginationState)

// WithPageSize sets the fixed page size. Non-positive sizes are ignored.
func WithPageSize(size int) Option {
	return func(p *PaginationState) {
		if size > 0 {
			p.PageSize = size
		}
	}
}

// Engine holds one list view's filter and pagination state over a read-only
// record collection. It is not safe for concurrent use; each view owns its own.
type Engine[T any, C comparable] struct {
	records []T
	rules   Rules[T, C]
	filter  FilterState[T, C]
	page    PaginationState
}

// New creates an engine in its mounted state: empty search, no category
// filter, no scope, page 1.
func New[T any, C comparable](records []T, rules Rules[T, C], opts ...Option) *Engine[T, C] {
	page := PaginationState{PageSize: DefaultPageSize, CurrentPage: 1}
	for _, opt := range opts {
		opt(&page)
	}
	return &Engine[T, C]{
		records: records,
		rules:   rules,
		filter:  FilterState[T, C]{Category: Any[C]()},
		page:    page,
	}
}

// SetSearchText replaces the search text. The current page is left alone.
func (e *Engine[T, C]) SetSearchText(text string) {
	e.filter.SearchText = text
}

// SetCategoryFilter replaces the category filter. The current page is left alone.
func (e *Engine[T, C]) SetCategoryFilter(f Filter[C]) {
	e.filter.Category = f
}

// SetScope replaces the scope predicate; nil clears it.
func (e *Engine[T, C]) SetScope(s Scope[T]) {
	e.filter.Scope = s
}

// SetCurrentPage moves to page, clamped to [1, max(1, TotalPages())].
// It returns the page actually stored.
func (e *Engine[T, C]) SetCurrentPage(page int) int {
	e.page.CurrentPage = ClampPage(page, e.TotalPages())
	return e.page.CurrentPage
}

// PrevPage moves one page back, never below 1.
func (e *Engine[T, C]) PrevPage() int {
	return e.SetCurrentPage(e.page.CurrentPage - 1)
}

// NextPage moves one page forward, never past the last page.
func (e *Engine[T, C]) NextPage() int {
	if e.page.CurrentPage >= e.TotalPages() {
		return e.SetCurrentPage(e.page.CurrentPage)
	}
	return e.SetCurrentPage(e.page.CurrentPage + 1)
}

// RestorePage rehydrates a current page carried over from a previous render
// without clamping it against the current filter. Values below 1 become 1.
func (e *Engine[T, C]) RestorePage(page int) {
	if page < 1 {
		page = 1
	}
	e.page.CurrentPage = page
}

// TotalPages is the page count for the current filter.
func (e *Engine[T, C]) TotalPages() int {
	return TotalPages(len(Match(e.records, e.rules, e.filter)), e.page.PageSize)
}

// Filter returns the current filter state.
func (e *Engine[T, C]) Filter() FilterState[T, C] {
	return e.filter
}

// Pagination returns the current pagination state.
func (e *Engine[T, C]) Pagination() PaginationState {
	return e.page
}

// Result computes the visible page for the current state.
func (e *Engine[T, C]) Result() Result[T] {
	return Compute(e.records, e.rules, e.filter, e.page)
}
