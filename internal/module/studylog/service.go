package studylog

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/simp-lee/studylog/internal/domain"
)

// Field length caps.
const (
	maxTitleLen   = 100
	maxContentLen = 1000
)

// Service defines the business operations over study logs.
type Service interface {
	Create(ctx context.Context, req CreateStudyLogRequest) (*domain.StudyLog, error)
	GetByID(ctx context.Context, id int64) (*domain.StudyLog, error)
	List(ctx context.Context) ([]domain.StudyLog, error)
	ListActive(ctx context.Context) ([]domain.StudyLog, error)
	ListByDate(ctx context.Context, date domain.Date) ([]domain.StudyLog, error)
	ListByCategory(ctx context.Context, category string) ([]domain.StudyLog, error)
	ListPage(ctx context.Context, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error)
	ListPageByCategory(ctx context.Context, category string, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error)
	Search(ctx context.Context, req SearchStudyLogsRequest, page domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error)
	Update(ctx context.Context, id int64, req UpdateStudyLogRequest) (*domain.StudyLog, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// service implements Service on top of a StudyLogRepository.
type service struct {
	repo domain.StudyLogRepository
}

// NewService creates a Service with the given repository.
func NewService(repo domain.StudyLogRepository) Service {
	return &service{repo: repo}
}

// Create validates the request, resolves the enum tokens, and persists a new
// study log. An omitted studyDate defaults to today.
func (s *service) Create(ctx context.Context, req CreateStudyLogRequest) (*domain.StudyLog, error) {
	if err := validateTitle(req.Title, true); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content, true); err != nil {
		return nil, err
	}
	if req.StudyTime < 1 {
		return nil, domain.NewAppError(domain.CodeValidation, "studyTime must be at least 1 minute", nil)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	understanding, err := domain.ParseUnderstanding(req.Understanding)
	if err != nil {
		return nil, err
	}

	studyDate := domain.Today()
	if req.StudyDate != nil && !req.StudyDate.IsZero() {
		studyDate = *req.StudyDate
	}

	now := time.Now()
	log := &domain.StudyLog{
		Title:         strings.TrimSpace(req.Title),
		Content:       strings.TrimSpace(req.Content),
		Category:      category,
		Understanding: understanding,
		StudyTime:     req.StudyTime,
		StudyDate:     studyDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Save(ctx, log)
}

// GetByID returns a single study log, soft-deleted or not.
func (s *service) GetByID(ctx context.Context, id int64) (*domain.StudyLog, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every study log, newest first.
func (s *service) List(ctx context.Context) ([]domain.StudyLog, error) {
	logs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(logs)
	return logs, nil
}

// ListActive returns the study logs not soft-deleted, newest first.
func (s *service) ListActive(ctx context.Context) ([]domain.StudyLog, error) {
	logs, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(logs)
	return logs, nil
}

// ListByDate returns the study logs for an exact date, newest first.
func (s *service) ListByDate(ctx context.Context, date domain.Date) ([]domain.StudyLog, error) {
	logs, err := s.repo.FindByStudyDate(ctx, date)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(logs)
	return logs, nil
}

// ListByCategory resolves the category token and returns its study logs, newest first.
func (s *service) ListByCategory(ctx context.Context, category string) ([]domain.StudyLog, error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	logs, err := s.repo.FindByCategory(ctx, cat)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(logs)
	return logs, nil
}

// ListPage returns one page over all study logs.
func (s *service) ListPage(ctx context.Context, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	return s.repo.FindPage(ctx, req)
}

// ListPageByCategory resolves the category token and returns one page of its study logs.
func (s *service) ListPageByCategory(ctx context.Context, category string, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.repo.FindPageByCategory(ctx, cat, req)
}

// Search builds the conjunctive filter from the request and returns one page
// of matches. An invalid category token or date fails with a typed error.
func (s *service) Search(ctx context.Context, req SearchStudyLogsRequest, page domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	filter := domain.SearchFilter{
		TitleKeyword: strings.TrimSpace(req.Title),
	}

	if token := strings.TrimSpace(req.Category); token != "" {
		cat, err := domain.ParseCategory(token)
		if err != nil {
			return nil, err
		}
		filter.Category = &cat
	}

	startDate, err := parseOptionalDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	filter.StartDate = startDate

	endDate, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	filter.EndDate = endDate

	return s.repo.Search(ctx, filter, page)
}

// Update loads the record, rejects empty requests, validates the present
// fields, applies them, and persists the result.
func (s *service) Update(ctx context.Context, id int64, req UpdateStudyLogRequest) (*domain.StudyLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, domain.ErrNoUpdates
	}

	update, err := buildUpdate(req)
	if err != nil {
		return nil, err
	}

	log.Apply(update, time.Now())
	return s.repo.Update(ctx, log)
}

// Delete hard-removes a study log; absent ids fail with ErrNotFound.
func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll removes every study log and returns how many were removed.
func (s *service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

// Count returns the total number of stored study logs.
func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// SoftDelete marks a study log deleted; absent or already-deleted ids fail
// with ErrNotFound.
func (s *service) SoftDelete(ctx context.Context, id int64) error {
	ok, err := s.repo.SoftDeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Restore clears the deleted flag; absent or not-deleted ids fail with ErrNotFound.
func (s *service) Restore(ctx context.Context, id int64) error {
	ok, err := s.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// buildUpdate validates each present field and converts the request into a
// domain update payload. studyDate must not be in the future.
func buildUpdate(req UpdateStudyLogRequest) (domain.StudyLogUpdate, error) {
	var update domain.StudyLogUpdate

	if req.Title != nil {
		if err := validateTitle(*req.Title, false); err != nil {
			return update, err
		}
		title := strings.TrimSpace(*req.Title)
		update.Title = &title
	}

	if req.Content != nil {
		if err := validateContent(*req.Content, false); err != nil {
			return update, err
		}
		content := strings.TrimSpace(*req.Content)
		update.Content = &content
	}

	if req.Category != nil {
		category, err := domain.ParseCategory(*req.Category)
		if err != nil {
			return update, err
		}
		update.Category = &category
	}

	if req.Understanding != nil {
		understanding, err := domain.ParseUnderstanding(*req.Understanding)
		if err != nil {
			return update, err
		}
		update.Understanding = &understanding
	}

	if req.StudyTime != nil {
		if *req.StudyTime < 1 {
			return update, domain.NewAppError(domain.CodeValidation, "studyTime must be at least 1 minute", nil)
		}
		update.StudyTime = req.StudyTime
	}

	if req.StudyDate != nil {
		if req.StudyDate.After(domain.Today()) {
			return update, domain.NewAppError(domain.CodeValidation, "studyDate must not be in the future", nil)
		}
		update.StudyDate = req.StudyDate
	}

	return update, nil
}

// validateTitle checks the title constraints: non-blank after trimming and at
// most 100 characters.
func validateTitle(title string, required bool) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		if required {
			return domain.NewAppError(domain.CodeValidation, "title is required", nil)
		}
		return domain.NewAppError(domain.CodeValidation, "title must not be blank", nil)
	}
	if utf8.RuneCountInString(trimmed) > maxTitleLen {
		return domain.NewAppError(domain.CodeValidation, "title must be at most 100 characters", nil)
	}
	return nil
}

// validateContent checks the content constraints: non-blank after trimming
// and at most 1000 characters.
func validateContent(content string, required bool) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		if required {
			return domain.NewAppError(domain.CodeValidation, "content is required", nil)
		}
		return domain.NewAppError(domain.CodeValidation, "content must not be blank", nil)
	}
	if utf8.RuneCountInString(trimmed) > maxContentLen {
		return domain.NewAppError(domain.CodeValidation, "content must be at most 1000 characters", nil)
	}
	return nil
}

// parseOptionalDate parses an optional yyyy-mm-dd query value.
func parseOptionalDate(field, value string) (*domain.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeValidation, field+" must be a yyyy-mm-dd date", err)
	}
	return &date, nil
}

// sortNewestFirst orders logs by creation time descending with an ascending
// id tie-break, the default listing order.
func sortNewestFirst(logs []domain.StudyLog) {
	sortLogs(logs, domain.PageRequest{
		SortBy:        domain.SortByCreatedAt,
		SortDirection: domain.SortDesc,
	})
}
