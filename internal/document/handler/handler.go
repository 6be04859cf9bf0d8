package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SehajBehl/docvault/internal/document/repository"
	"github.com/SehajBehl/docvault/internal/document/service"
)

// RegisterDocumentRoutes wires the metadata endpoints. The version API owns
// /api/documents/:id/{save,rollback,versions,current}; these routes only
// decorate documents with names and owners.
func RegisterDocumentRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/documents", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/api/documents", func(c *gin.Context) {
		var req struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			OwnerID string `json:"ownerId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		meta, err := svc.Register(c.Request.Context(), req.ID, req.Name, req.OwnerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			return
		}
		c.JSON(http.StatusCreated, meta)
	})

	r.GET("/api/documents/:id/meta", func(c *gin.Context) {
		meta, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "document not registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
			return
		}
		c.JSON(http.StatusOK, meta)
	})
}
