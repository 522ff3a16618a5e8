package studylog

import (
	"sort"
	"strings"

	"github.com/simp-lee/studylog/internal/domain"
)

// sortLogs orders logs in place by the requested sort key and direction.
// Ties always break on ascending id so pagination is stable across calls
// regardless of the order the store produced.
func sortLogs(logs []domain.StudyLog, req domain.PageRequest) {
	less := comparatorFor(req.SortBy)
	desc := req.SortDirection == domain.SortDesc

	sort.Slice(logs, func(i, j int) bool {
		a, b := &logs[i], &logs[j]
		if desc {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		default:
			return logs[i].ID < logs[j].ID
		}
	})
}

// comparatorFor selects the strict-less comparator for a normalized sort key.
func comparatorFor(sortBy string) func(a, b *domain.StudyLog) bool {
	switch sortBy {
	case domain.SortByTitle:
		return func(a, b *domain.StudyLog) bool { return a.Title < b.Title }
	case domain.SortByStudyTime:
		return func(a, b *domain.StudyLog) bool { return a.StudyTime < b.StudyTime }
	case domain.SortByStudyDate:
		return func(a, b *domain.StudyLog) bool { return a.StudyDate.Before(b.StudyDate) }
	default:
		return func(a, b *domain.StudyLog) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

// paginate validates the page request against the filtered total and slices
// out the requested page. logs must already be sorted.
func paginate(logs []domain.StudyLog, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	total := int64(len(logs))
	if err := domain.ValidatePage(req.Page, req.Size, total); err != nil {
		return nil, err
	}

	start := req.Offset()
	end := start + req.Size
	if start > len(logs) {
		start = len(logs)
	}
	if end > len(logs) {
		end = len(logs)
	}

	content := make([]domain.StudyLog, end-start)
	copy(content, logs[start:end])

	return domain.NewPageResponse(content, req.Page, req.Size, total), nil
}

// matchesFilter reports whether a record satisfies every present criterion:
// case-insensitive title substring, category equality, and inclusive
// study-date bounds.
func matchesFilter(log *domain.StudyLog, filter domain.SearchFilter) bool {
	if keyword := strings.TrimSpace(filter.TitleKeyword); keyword != "" {
		if !strings.Contains(strings.ToLower(log.Title), strings.ToLower(keyword)) {
			return false
		}
	}
	if filter.Category != nil && log.Category != *filter.Category {
		return false
	}
	if filter.StartDate != nil && log.StudyDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && log.StudyDate.After(*filter.EndDate) {
		return false
	}
	return true
}

// filterLogs returns the subset of logs matching the filter.
func filterLogs(logs []domain.StudyLog, filter domain.SearchFilter) []domain.StudyLog {
	matched := make([]domain.StudyLog, 0, len(logs))
	for i := range logs {
		if matchesFilter(&logs[i], filter) {
			matched = append(matched, logs[i])
		}
	}
	return matched
}
