package studylog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/simp-lee/studylog/internal/domain"
)

// memoryRepository implements domain.StudyLogRepository with a map guarded by
// a reader-writer lock. Scans take the read lock; every structural mutation
// takes the write lock, so concurrent requests never observe torn records.
//
// Records are copied on the way in and on the way out: callers never hold a
// pointer into the store, so a record returned from one operation cannot be
// mutated under a concurrent scan.
type memoryRepository struct {
	mu   sync.RWMutex
	logs map[int64]*domain.StudyLog
	seq  atomic.Int64
}

// NewMemoryRepository creates an empty in-memory StudyLogRepository. The
// identity sequence starts at 1 and ids are never reused, even after deletes.
func NewMemoryRepository() domain.StudyLogRepository {
	return &memoryRepository{
		logs: make(map[int64]*domain.StudyLog),
	}
}

// Save inserts or overwrites the entry keyed by id. A record without an id
// gets the next sequence value; assignment is atomic, so concurrent saves
// each observe a distinct id.
func (r *memoryRepository) Save(_ context.Context, log *domain.StudyLog) (*domain.StudyLog, error) {
	if log.ID == 0 {
		log.ID = r.seq.Add(1)
	}

	stored := *log
	r.mu.Lock()
	r.logs[stored.ID] = &stored
	r.mu.Unlock()

	result := stored
	return &result, nil
}

// FindByID returns the record with the given id, soft-deleted or not.
func (r *memoryRepository) FindByID(_ context.Context, id int64) (*domain.StudyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.logs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	result := *log
	return &result, nil
}

// FindAll returns every record, including soft-deleted ones, in unspecified order.
func (r *memoryRepository) FindAll(_ context.Context) ([]domain.StudyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(), nil
}

// FindByCategory returns the records with the given category, in unspecified order.
func (r *memoryRepository) FindByCategory(_ context.Context, category domain.Category) ([]domain.StudyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.StudyLog, 0)
	for _, log := range r.logs {
		if log.Category == category {
			matched = append(matched, *log)
		}
	}
	return matched, nil
}

// FindByStudyDate returns the records with the exact study date, in unspecified order.
func (r *memoryRepository) FindByStudyDate(_ context.Context, date domain.Date) ([]domain.StudyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.StudyLog, 0)
	for _, log := range r.logs {
		if log.StudyDate.Equal(date) {
			matched = append(matched, *log)
		}
	}
	return matched, nil
}

// FindPage returns one sorted page over all records.
func (r *memoryRepository) FindPage(_ context.Context, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	req = req.Normalized()

	r.mu.RLock()
	logs := r.snapshotLocked()
	r.mu.RUnlock()

	sortLogs(logs, req)
	return paginate(logs, req)
}

// FindPageByCategory returns one sorted page over the records of a category.
func (r *memoryRepository) FindPageByCategory(_ context.Context, category domain.Category, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	req = req.Normalized()

	r.mu.RLock()
	logs := r.snapshotLocked()
	r.mu.RUnlock()

	logs = filterLogs(logs, domain.SearchFilter{Category: &category})
	sortLogs(logs, req)
	return paginate(logs, req)
}

// Search applies the conjunctive filter, sorts, and returns one page.
func (r *memoryRepository) Search(_ context.Context, filter domain.SearchFilter, req domain.PageRequest) (*domain.PageResponse[domain.StudyLog], error) {
	req = req.Normalized()

	r.mu.RLock()
	logs := r.snapshotLocked()
	r.mu.RUnlock()

	logs = filterLogs(logs, filter)
	sortLogs(logs, req)
	return paginate(logs, req)
}

// Update replaces the stored entry. It fails with ErrNotFound when the id is
// unset or has no entry.
func (r *memoryRepository) Update(_ context.Context, log *domain.StudyLog) (*domain.StudyLog, error) {
	if log.ID == 0 {
		return nil, domain.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.logs[log.ID]; !ok {
		return nil, domain.ErrNotFound
	}

	stored := *log
	r.logs[stored.ID] = &stored

	result := stored
	return &result, nil
}

// DeleteByID hard-removes the entry and reports whether one existed.
func (r *memoryRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.logs[id]; !ok {
		return false, nil
	}
	delete(r.logs, id)
	return true, nil
}

// DeleteAll removes every record and returns the count removed. The identity
// sequence is not reset; ids are never reused.
func (r *memoryRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.logs))
	r.logs = make(map[int64]*domain.StudyLog)
	return count, nil
}

// ExistsByID reports whether an entry with the given id exists.
func (r *memoryRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.logs[id]
	return ok, nil
}

// Count returns the number of stored records, soft-deleted included.
func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.logs)), nil
}

// SoftDeleteByID marks the record deleted and stamps DeletedAt. It reports
// false when the record is absent or already soft-deleted.
func (r *memoryRepository) SoftDeleteByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.logs[id]
	if !ok || log.Deleted {
		return false, nil
	}

	now := time.Now()
	log.Deleted = true
	log.DeletedAt = &now
	return true, nil
}

// Restore clears the deleted flag and timestamp. It reports false when the
// record is absent or not soft-deleted.
func (r *memoryRepository) Restore(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.logs[id]
	if !ok || !log.Deleted {
		return false, nil
	}

	log.Deleted = false
	log.DeletedAt = nil
	return true, nil
}

// FindAllActive returns the records not marked deleted, in unspecified order.
func (r *memoryRepository) FindAllActive(_ context.Context) ([]domain.StudyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]domain.StudyLog, 0, len(r.logs))
	for _, log := range r.logs {
		if !log.Deleted {
			active = append(active, *log)
		}
	}
	return active, nil
}

// snapshotLocked copies every record. Callers must hold at least the read lock.
func (r *memoryRepository) snapshotLocked() []domain.StudyLog {
	logs := make([]domain.StudyLog, 0, len(r.logs))
	for _, log := range r.logs {
		logs = append(logs, *log)
	}
	return logs
}
