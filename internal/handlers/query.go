package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/text/unicode/norm"

	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/listview"
	"github.com/vangoframework/wms/internal/views"
)

// errBadQuery marks list queries that cannot be decoded or name unknown filters.
var errBadQuery = errors.New("invalid query parameters")

// listQuery is the list view state carried in the URL.
// Page is the page the view was on and is restored without clamping;
// Goto is an explicit navigation and goes through the clamp.
type listQuery struct {
	Search string `schema:"q"`
	Status string `schema:"status"`
	Type   string `schema:"type"`
	Tab    string `schema:"tab"`
	Page   int    `schema:"page"`
	Goto   *int   `schema:"goto"`
}

func (h *Handlers) decodeListQuery(r *http.Request) (listQuery, error) {
	var q listQuery
	if err := h.decoder.Decode(&q, r.URL.Query()); err != nil {
		return listQuery{}, fmt.Errorf("%w: %v", errBadQuery, err)
	}
	// Input methods may deliver decomposed Hangul.
	q.Search = norm.NFC.String(q.Search)
	return q, nil
}

func (h *Handlers) employeePage(r *http.Request) (listQuery, listview.Result[domain.Employee], error) {
	q, err := h.decodeListQuery(r)
	if err != nil {
		return q, listview.Result[domain.Employee]{}, err
	}
	status, err := domain.ParseEmployeeStatusFilter(q.Status)
	if err != nil {
		return q, listview.Result[domain.Employee]{}, fmt.Errorf("%w: %v", errBadQuery, err)
	}

	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		return q, listview.Result[domain.Employee]{}, fmt.Errorf("list employees: %w", err)
	}

	list := domain.NewEmployeeList(employees, h.config.PageSize)
	list.RestorePage(q.Page)
	list.SetSearchText(q.Search)
	list.SetCategoryFilter(status)
	if q.Goto != nil {
		list.SetCurrentPage(*q.Goto)
	}
	return q, list.Result(), nil
}

func (h *Handlers) workPage(r *http.Request) (listQuery, listview.Result[domain.WorkItem], domain.WorkSummary, error) {
	var (
		res     listview.Result[domain.WorkItem]
		summary domain.WorkSummary
	)
	q, err := h.decodeListQuery(r)
	if err != nil {
		return q, res, summary, err
	}
	workType, err := domain.ParseWorkTypeFilter(q.Type)
	if err != nil {
		return q, res, summary, fmt.Errorf("%w: %v", errBadQuery, err)
	}
	tab, err := domain.ParseWorkTab(q.Tab)
	if err != nil {
		return q, res, summary, fmt.Errorf("%w: %v", errBadQuery, err)
	}

	items, err := h.repo.ListWorkItems(r.Context())
	if err != nil {
		return q, res, summary, fmt.Errorf("list work items: %w", err)
	}

	list := domain.NewWorkList(items, h.config.WorkPageSize)
	list.RestorePage(q.Page)
	list.SetSearchText(q.Search)
	list.SetCategoryFilter(workType)
	list.SetScope(tab.Scope())
	if q.Goto != nil {
		list.SetCurrentPage(*q.Goto)
	}
	return q, list.Result(), domain.SummarizeWork(items), nil
}

func (q listQuery) view(path, category string, page int) views.ListQuery {
	return views.ListQuery{
		Path:     path,
		Search:   q.Search,
		Category: category,
		Tab:      q.Tab,
		Page:     page,
	}
}

// listError answers a failed list request.
func (h *Handlers) listError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadQuery) {
		http.Error(w, "Invalid query parameters", http.StatusBadRequest)
		return
	}
	h.logger.Error("failed to load list", "error", err)
	http.Error(w, "Failed to load list", http.StatusInternalServerError)
}
