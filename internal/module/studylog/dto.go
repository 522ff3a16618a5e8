package studylog

import (
	"time"

	"github.com/simp-lee/studylog/internal/domain"
)

// CreateStudyLogRequest is the input for creating a study log. studyDate is
// optional and defaults to today.
type CreateStudyLogRequest struct {
	Title         string       `json:"title" binding:"required"`
	Content       string       `json:"content" binding:"required"`
	Category      string       `json:"category" binding:"required"`
	Understanding string       `json:"understanding" binding:"required"`
	StudyTime     int          `json:"studyTime" binding:"required"`
	StudyDate     *domain.Date `json:"studyDate"`
}

// UpdateStudyLogRequest is the input for a partial update. Absent fields keep
// their current value; a request with every field absent is rejected.
type UpdateStudyLogRequest struct {
	Title         *string      `json:"title"`
	Content       *string      `json:"content"`
	Category      *string      `json:"category"`
	Understanding *string      `json:"understanding"`
	StudyTime     *int         `json:"studyTime"`
	StudyDate     *domain.Date `json:"studyDate"`
}

// IsEmpty reports whether every updatable field is absent.
func (r UpdateStudyLogRequest) IsEmpty() bool {
	return r.Title == nil &&
		r.Content == nil &&
		r.Category == nil &&
		r.Understanding == nil &&
		r.StudyTime == nil &&
		r.StudyDate == nil
}

// SearchStudyLogsRequest holds the query parameters of the search endpoint.
// All criteria are optional and compose conjunctively.
type SearchStudyLogsRequest struct {
	Title     string `form:"title"`
	Category  string `form:"category"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// StudyLogResponse is the outward projection of a study log, including the
// display icon and emoji of its enum fields.
type StudyLogResponse struct {
	ID                 int64       `json:"id"`
	Title              string      `json:"title"`
	Content            string      `json:"content"`
	Category           string      `json:"category"`
	CategoryIcon       string      `json:"categoryIcon"`
	Understanding      string      `json:"understanding"`
	UnderstandingEmoji string      `json:"understandingEmoji"`
	StudyTime          int         `json:"studyTime"`
	StudyDate          domain.Date `json:"studyDate"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
	Deleted            bool        `json:"deleted"`
	DeletedAt          *time.Time  `json:"deletedAt,omitempty"`
}

// toResponse projects a study log entity into its response shape.
func toResponse(log domain.StudyLog) StudyLogResponse {
	return StudyLogResponse{
		ID:                 log.ID,
		Title:              log.Title,
		Content:            log.Content,
		Category:           string(log.Category),
		CategoryIcon:       log.Category.Icon(),
		Understanding:      string(log.Understanding),
		UnderstandingEmoji: log.Understanding.Emoji(),
		StudyTime:          log.StudyTime,
		StudyDate:          log.StudyDate,
		CreatedAt:          log.CreatedAt,
		UpdatedAt:          log.UpdatedAt,
		Deleted:            log.Deleted,
		DeletedAt:          log.DeletedAt,
	}
}

// toResponses projects a slice of entities.
func toResponses(logs []domain.StudyLog) []StudyLogResponse {
	responses := make([]StudyLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, toResponse(log))
	}
	return responses
}

// DeleteStudyLogResponse confirms a single hard delete.
type DeleteStudyLogResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// DeleteAllResponse confirms a delete-all with the number of removed records.
type DeleteAllResponse struct {
	DeletedCount int64  `json:"deletedCount"`
	Message      string `json:"message"`
}

// CountResponse carries the total record count.
type CountResponse struct {
	Count int64 `json:"count"`
}
