package studylog

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/studylog/internal/domain"
	"github.com/simp-lee/studylog/internal/pkg"
)

// Handler handles REST API requests for the study-log resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/logs.
func (h *Handler) Create(c *gin.Context) {
	var req CreateStudyLogRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	log, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, toResponse(*log))
}

// List handles GET /api/v1/logs.
func (h *Handler) List(c *gin.Context) {
	logs, err := h.svc.List(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponses(logs))
}

// ListActive handles GET /api/v1/logs/active.
func (h *Handler) ListActive(c *gin.Context) {
	logs, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponses(logs))
}

// Get handles GET /api/v1/logs/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	log, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponse(*log))
}

// GetByDate handles GET /api/v1/logs/date/:date.
func (h *Handler) GetByDate(c *gin.Context) {
	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "date must be a yyyy-mm-dd date", err))
		return
	}

	logs, err := h.svc.ListByDate(c.Request.Context(), date)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponses(logs))
}

// GetByCategory handles GET /api/v1/logs/category/:category.
func (h *Handler) GetByCategory(c *gin.Context) {
	logs, err := h.svc.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, toResponses(logs))
}

// ListPage handles GET /api/v1/logs/page.
func (h *Handler) ListPage(c *gin.Context) {
	page, err := h.svc.ListPage(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, domain.MapPage(page, toResponse))
}

// ListPageByCategory handles GET /api/v1/logs/category/:category/page.
func (h *Handler) ListPageByCategory(c *gin.Context) {
	page, err := h.svc.ListPageByCategory(c.Request.Context(), c.Param("category"), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, domain.MapPage(page, toResponse))
}

// Search handles GET /api/v1/logs/search.
func (h *Handler) Search(c *gin.Context) {
	req := SearchStudyLogsRequest{
		Title:     c.Query("title"),
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	page, err := h.svc.Search(c.Request.Context(), req, pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, domain.MapPage(page, toResponse))
}

// Update handles PUT /api/v1/logs/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateStudyLogRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	log, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, toResponse(*log))
}

// Delete handles DELETE /api/v1/logs/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, DeleteStudyLogResponse{ID: id, Message: "study log deleted"})
}

// DeleteAll handles DELETE /api/v1/logs.
func (h *Handler) DeleteAll(c *gin.Context) {
	count, err := h.svc.DeleteAll(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, DeleteAllResponse{DeletedCount: count, Message: "all study logs deleted"})
}

// Count handles GET /api/v1/logs/count.
func (h *Handler) Count(c *gin.Context) {
	count, err := h.svc.Count(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, CountResponse{Count: count})
}

// SoftDelete handles POST /api/v1/logs/:id/soft-delete.
func (h *Handler) SoftDelete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.SoftDelete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, DeleteStudyLogResponse{ID: id, Message: "study log soft-deleted"})
}

// Restore handles POST /api/v1/logs/:id/restore.
func (h *Handler) Restore(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Restore(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, DeleteStudyLogResponse{ID: id, Message: "study log restored"})
}

// parseID extracts and validates the :id path parameter.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewAppError(domain.CodeValidation, "id must be a positive integer", nil)
	}
	return id, nil
}
