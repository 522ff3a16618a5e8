package domain

import "math"

// Pagination bounds and defaults.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultSortBy        = SortByCreatedAt
	DefaultSortDirection = SortDesc
)

// Sort keys accepted by paginated listings. Unknown keys fall back to
// SortByCreatedAt when normalized.
const (
	SortByTitle     = "title"
	SortByStudyTime = "studyTime"
	SortByStudyDate = "studyDate"
	SortByCreatedAt = "createdAt"
)

// Sort directions.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageRequest holds pagination and sorting parameters for listings.
// Call Normalized before use; handlers pass requests through as parsed.
type PageRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

// Normalized returns a copy with defaults applied and out-of-range values
// clamped: page >= 0, size in [1, MaxPageSize] (default 10), sortBy one of
// the accepted keys (default createdAt), direction ASC or DESC (default DESC).
func (r PageRequest) Normalized() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	switch r.SortBy {
	case SortByTitle, SortByStudyTime, SortByStudyDate, SortByCreatedAt:
	default:
		r.SortBy = DefaultSortBy
	}
	switch r.SortDirection {
	case SortAsc, SortDesc:
	default:
		r.SortDirection = DefaultSortDirection
	}
	return r
}

// Offset returns the index of the first element on the requested page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// PageResponse is the slice-plus-metadata envelope for a single page.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPageResponse builds a PageResponse with computed metadata. A nil content
// slice is replaced with an empty one so it marshals as [].
func NewPageResponse[T any](content []T, pageNumber, pageSize int, totalElements int64) *PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := TotalPages(totalElements, pageSize)
	first := pageNumber == 0
	last := pageNumber >= totalPages-1
	return &PageResponse[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		First:         first,
		Last:          last,
		HasNext:       !last,
		HasPrevious:   !first,
	}
}

// TotalPages computes ceil(totalElements / pageSize); 0 when there are no elements.
func TotalPages(totalElements int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalElements) / float64(pageSize)))
}

// ValidatePage enforces the strict page-request policy shared by every store:
// a negative page, or a page at or past the end of a non-empty result, fails
// with an invalid-page error carrying the requested page and the total page
// count. Page 0 over an empty result is valid and yields an empty page.
func ValidatePage(requestedPage, pageSize int, totalElements int64) error {
	totalPages := TotalPages(totalElements, pageSize)
	if requestedPage < 0 {
		return NewInvalidPageError(requestedPage, totalPages)
	}
	if totalElements > 0 && requestedPage >= totalPages {
		return NewInvalidPageError(requestedPage, totalPages)
	}
	return nil
}

// MapPage converts the content of a page while preserving its metadata.
func MapPage[T, U any](p *PageResponse[T], fn func(T) U) *PageResponse[U] {
	if p == nil {
		return nil
	}
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return &PageResponse[U]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
		HasNext:       p.HasNext,
		HasPrevious:   p.HasPrevious,
	}
}
