package domain

import (
	"context"
	"time"
)

// StudyLog is a single study-session record.
//
// The ID is assigned once by the backing store and never reused or mutated.
// Soft-deleted records keep their entry (Deleted set, DeletedAt stamped) and
// stay retrievable by id until hard-deleted.
type StudyLog struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	Title         string        `gorm:"size:100;not null" json:"title"`
	Content       string        `gorm:"size:1000;not null" json:"content"`
	Category      Category      `gorm:"size:32;not null;index" json:"category"`
	Understanding Understanding `gorm:"size:32;not null" json:"understanding"`
	StudyTime     int           `gorm:"not null" json:"studyTime"`
	StudyDate     Date          `gorm:"index" json:"studyDate"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Deleted       bool          `gorm:"not null;default:false" json:"deleted"`
	DeletedAt     *time.Time    `json:"deletedAt,omitempty"`
}

// StudyLogUpdate is a partial-update payload. A nil field means "leave
// unchanged"; clearing a field to empty is not supported.
type StudyLogUpdate struct {
	Title         *string
	Content       *string
	Category      *Category
	Understanding *Understanding
	StudyTime     *int
	StudyDate     *Date
}

// IsEmpty reports whether every field is absent.
func (u StudyLogUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Content == nil &&
		u.Category == nil &&
		u.Understanding == nil &&
		u.StudyTime == nil &&
		u.StudyDate == nil
}

// Apply copies the present fields onto the record and refreshes UpdatedAt.
func (s *StudyLog) Apply(u StudyLogUpdate, now time.Time) {
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Content != nil {
		s.Content = *u.Content
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Understanding != nil {
		s.Understanding = *u.Understanding
	}
	if u.StudyTime != nil {
		s.StudyTime = *u.StudyTime
	}
	if u.StudyDate != nil {
		s.StudyDate = *u.StudyDate
	}
	s.UpdatedAt = now
}

// SearchFilter holds the conjunctive criteria for a paginated search.
// Nil/empty fields are not applied; the date range bounds are inclusive.
type SearchFilter struct {
	TitleKeyword string
	Category     *Category
	StartDate    *Date
	EndDate      *Date
}

// StudyLogRepository is the data access contract shared by the in-memory
// store and the database-backed store.
//
// Point lookups return ErrNotFound when the id does not exist. Listing
// methods that do not take a PageRequest return records in unspecified
// order; callers sort explicitly. Paginated methods sort, validate the page
// strictly (ValidatePage), and slice.
type StudyLogRepository interface {
	Save(ctx context.Context, log *StudyLog) (*StudyLog, error)
	FindByID(ctx context.Context, id int64) (*StudyLog, error)
	FindAll(ctx context.Context) ([]StudyLog, error)
	FindByCategory(ctx context.Context, category Category) ([]StudyLog, error)
	FindByStudyDate(ctx context.Context, date Date) ([]StudyLog, error)
	FindPage(ctx context.Context, req PageRequest) (*PageResponse[StudyLog], error)
	FindPageByCategory(ctx context.Context, category Category, req PageRequest) (*PageResponse[StudyLog], error)
	Search(ctx context.Context, filter SearchFilter, req PageRequest) (*PageResponse[StudyLog], error)
	Update(ctx context.Context, log *StudyLog) (*StudyLog, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	SoftDeleteByID(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	FindAllActive(ctx context.Context) ([]StudyLog, error)
}
