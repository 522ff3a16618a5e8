package studylog

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the study-log domain.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("studylog.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the study-log API routes. Static segments
// (/page, /count, ...) are registered alongside /:id; gin resolves static
// routes before the parameter route.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")

	logs.POST("", m.handler.Create)
	logs.GET("", m.handler.List)
	logs.GET("/active", m.handler.ListActive)
	logs.GET("/count", m.handler.Count)
	logs.GET("/page", m.handler.ListPage)
	logs.GET("/search", m.handler.Search)
	logs.GET("/date/:date", m.handler.GetByDate)
	logs.GET("/category/:category", m.handler.GetByCategory)
	logs.GET("/category/:category/page", m.handler.ListPageByCategory)
	logs.GET("/:id", m.handler.Get)
	logs.PUT("/:id", m.handler.Update)
	logs.DELETE("/:id", m.handler.Delete)
	logs.DELETE("", m.handler.DeleteAll)
	logs.POST("/:id/soft-delete", m.handler.SoftDelete)
	logs.POST("/:id/restore", m.handler.Restore)
}
