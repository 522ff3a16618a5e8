package studylog

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/simp-lee/studylog/internal/domain"
	"github.com/simp-lee/studylog/internal/pkg"
)

// sortColumns maps the accepted sort keys to database columns.
var sortColumns = map[string]string{
	domain.SortByTitle:     "title",
	domain.SortByStudyTime: "study_time",
	domain.SortByStudyDate: "study_date",
	domain.SortByCreatedAt: "created_at",
}

// gormRepository backs domain.StudyLogRepository with a relational database.
// It preserves the in-memory store's contract: strict page validation,
// ascending-id tie-break, ids assigned once by the auto-increment key.
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a StudyLogRepository backed by the given GORM database.
func NewGormRepository(db *gorm.DB) domain.StudyLogRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Save(ctx context.Context, log *domain.StudyLog) (*domain.StudyLog, error) {
	if err := r.db.WithContext(ctx).Save(log).Error; err != nil {
		return nil, mapError(err)
	}
	return log, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*domain.StudyLog, error) {
	var log domain.StudyLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &log, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]domain.StudyLog, error) {
	var logs []domain.StudyLog
	if err := r.db.WithContext(ctx).Find(&logs).Error; err != nil {
		return nil, mapError(err)
	}
	return logs, nil
}

func (r *gormRepository) FindByCategory(ctx context.Context, category domain.Category) ([]domain.StudyLog, error) {
	var logs []domain.StudyLog
	if err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Find(&logs).Error; err != nil {
		return nil, mapError(err)
	}
	return logs, nil
}

func (r *gormRepository) FindByStudyDate(ctx context.Context, date domain.Date) ([]domain.StudyLog, error) {
	var logs []domain.StudyLog
	if err := r.db.WithContext(ctx).
		Where("study_date = ?", date).
		Find(&logs).Error; err != nil {
		return nil, mapError(err)
	}
	return logs, nil
}

func (r *gormRepository) FindPage(ctx context.Context, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	return r.page(ctx, req, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *gormRepository) FindPageByCategory(ctx context.Context, category domain.Category, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	return r.page(ctx, req, func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", string(category))
	})
}

func (r *gormRepository) Search(ctx context.Context, filter domain.SearchFilter, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	return r.page(ctx, req, func(db *gorm.DB) *gorm.DB {
		if keyword := strings.TrimSpace(filter.TitleKeyword); keyword != "" {
			db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(keyword)+"%")
		}
		if filter.Category != nil {
			db = db.Where("category = ?", string(*filter.Category))
		}
		if filter.StartDate != nil {
			db = db.Where("study_date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			db = db.Where("study_date <= ?", *filter.EndDate)
		}
		return db
	})
}

// page counts the filtered set, validates the page strictly, and fetches the
// requested slice with the sort order plus the ascending-id tie-break.
func (r *gormRepository) page(ctx context.Context, req domain.PageRequest, scope func(*gorm.DB) *gorm.DB) (*domain.PageResponse[domain.StudyLog], error) {
	req = req.Normalized()

	var total int64
	base := scope(r.db.WithContext(ctx).Model(&domain.StudyLog{}))
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	if err := domain.ValidatePage(req.Page, req.Size, total); err != nil {
		return nil, err
	}

	column := sortColumns[req.SortBy]
	direction := "ASC"
	if req.SortDirection == domain.SortDesc {
		direction = "DESC"
	}

	var logs []domain.StudyLog
	if err := base.
		Order(column + " " + direction).
		Order("id ASC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&logs).Error; err != nil {
		return nil, mapError(err)
	}

	return domain.NewPageResponse(logs, req.Page, req.Size, total), nil
}

func (r *gormRepository) Update(ctx context.Context, log *domain.StudyLog) (*domain.StudyLog, error) {
	if log.ID == 0 {
		return nil, domain.ErrNotFound
	}

	var exists int64
	if err := r.db.WithContext(ctx).Model(&domain.StudyLog{}).
		Where("id = ?", log.ID).
		Count(&exists).Error; err != nil {
		return nil, mapError(err)
	}
	if exists == 0 {
		return nil, domain.ErrNotFound
	}

	if err := r.db.WithContext(ctx).Save(log).Error; err != nil {
		return nil, mapError(err)
	}
	return log, nil
}

func (r *gormRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.StudyLog{}, id)
	if result.Error != nil {
		return false, mapError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll counts and removes every record inside a transaction so the
// returned count matches what was deleted.
func (r *gormRepository) DeleteAll(ctx context.Context) (int64, error) {
	var count int64
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Model(&domain.StudyLog{}).Count(&count).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&domain.StudyLog{}).Error
	})
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *gormRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.StudyLog{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.StudyLog{}).Count(&count).Error; err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *gormRepository) SoftDeleteByID(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&domain.StudyLog{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]any{"deleted": true, "deleted_at": now})
	if result.Error != nil {
		return false, mapError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository) Restore(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.StudyLog{}).
		Where("id = ? AND deleted = ?", id, true).
		Updates(map[string]any{"deleted": false, "deleted_at": nil})
	if result.Error != nil {
		return false, mapError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository) FindAllActive(ctx context.Context) ([]domain.StudyLog, error) {
	var logs []domain.StudyLog
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Find(&logs).Error; err != nil {
		return nil, mapError(err)
	}
	return logs, nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
