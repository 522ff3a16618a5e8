package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/studylog/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	DB      *gorm.DB // nil for the memory driver
	Driver  string   // "memory", "sqlite" or "postgres"
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}
	if deps.Driver != "memory" && deps.DB == nil {
		return fmt.Errorf("driver %q requires a database connection", deps.Driver)
	}

	// Health check.
	r.GET("/health", healthHandler(deps.Driver, deps.DB))

	// API routes.
	api := r.Group("/api/v1")

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler returns a handler that reports the record store status.
// The memory driver has no connection to check and always reports ok;
// database drivers are pinged with a one-second deadline.
func healthHandler(driver string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeStatus := "ok"
		status := "ok"
		code := http.StatusOK

		if driver != "memory" {
			sqlDB, err := db.DB()
			if err != nil {
				storeStatus = "error"
			} else {
				ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
				defer cancel()
				if err := sqlDB.PingContext(ctx); err != nil {
					storeStatus = "error"
				}
			}
			if storeStatus != "ok" {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"store": gin.H{
					"driver": driver,
					"status": storeStatus,
				},
			},
		})
	}
}

// noRouteHandler returns a JSON 404 in the standard error envelope.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{
			Success: false,
			Error: &pkg.ErrorInfo{
				Code:    pkg.ErrCodeNotFound,
				Message: "not found",
			},
		})
	}
}
