package domain

import "math"

// TypeStat is the count and total cost of one work type.
type TypeStat struct {
	Type  WorkType `json:"type"`
	Count int      `json:"count"`
	Total Won      `json:"total"`
}

// WorkSummary holds the work screen's headline numbers.
// It is always derived from the full collection, never a filtered page.
type WorkSummary struct {
	Total        int                `json:"total"`
	Budget       Won                `json:"budget"`
	ByType       []TypeStat         `json:"by_type"`
	StatusCounts map[WorkStatus]int `json:"status_counts"`
}

// SummarizeWork aggregates items. ByType keeps first-appearance order.
func SummarizeWork(items []WorkItem) WorkSummary {
	s := WorkSummary{
		Total:        len(items),
		StatusCounts: make(map[WorkStatus]int),
	}

	index := make(map[WorkType]int)
	for _, item := range items {
		cost := item.TotalCost()
		s.Budget += cost
		s.StatusCounts[item.Status]++

		i, ok := index[item.Type]
		if !ok {
			i = len(s.ByType)
			index[item.Type] = i
			s.ByType = append(s.ByType, TypeStat{Type: item.Type})
		}
		s.ByType[i].Count++
		s.ByType[i].Total += cost
	}
	return s
}

// Count returns how many items have status.
func (s WorkSummary) Count(status WorkStatus) int {
	return s.StatusCounts[status]
}

// Percent returns the rounded share of items with status, 0 for an empty set.
func (s WorkSummary) Percent(status WorkStatus) int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Floor(float64(s.Count(status))*100/float64(s.Total) + 0.5))
}
