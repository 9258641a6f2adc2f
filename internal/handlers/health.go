package handlers

import (
	"net/http"
	"quillblog/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(database *gorm.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

func (h *HealthHandler) Check(c *gin.Context) {
	stats := db.Health(c.Request.Context(), h.db)
	code := http.StatusOK
	if stats["status"] != "up" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, stats)
}
