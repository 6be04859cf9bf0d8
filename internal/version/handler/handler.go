package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SehajBehl/docvault/internal/version"
	"github.com/SehajBehl/docvault/internal/version/service"
	"github.com/SehajBehl/docvault/pkg/logger"
)

// MetaRecorder is notified after a successful write so document metadata can
// follow the log. May be nil when metadata is not wired.
type MetaRecorder interface {
	RecordWrite(ctx context.Context, documentID string) error
}

type saveRequest struct {
	// Content is deliberately not required: saving an empty document is legal.
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
}

type rollbackRequest struct {
	VersionID string `json:"versionId"`
	AuthorID  string `json:"authorId"`
}

// RegisterVersionRoutes wires the version store to its HTTP surface.
func RegisterVersionRoutes(r *gin.Engine, svc service.Service, meta MetaRecorder) {
	r.POST("/api/documents/:id/save", func(c *gin.Context) {
		var req saveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v, err := svc.Save(c.Request.Context(), c.Param("id"), req.Content, req.AuthorID)
		if err != nil {
			abortWith(c, err)
			return
		}
		recordWrite(c, meta, v.DocumentID)
		c.JSON(http.StatusCreated, gin.H{
			"versionId":     v.VersionID,
			"versionNumber": v.Number,
			"createdAt":     v.CreatedAt,
		})
	})

	r.POST("/api/documents/:id/rollback", func(c *gin.Context) {
		var req rollbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v, err := svc.Rollback(c.Request.Context(), c.Param("id"), req.VersionID, req.AuthorID)
		if err != nil {
			abortWith(c, err)
			return
		}
		recordWrite(c, meta, v.DocumentID)
		c.JSON(http.StatusCreated, gin.H{
			"versionId":     v.VersionID,
			"versionNumber": v.Number,
			"createdAt":     v.CreatedAt,
		})
	})

	r.GET("/api/documents/:id/versions", func(c *gin.Context) {
		list, err := svc.History(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/documents/:id/current", func(c *gin.Context) {
		v, err := svc.Current(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		if v == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "document has no versions"})
			return
		}
		c.JSON(http.StatusOK, v)
	})
}

// abortWith maps the store's error taxonomy onto HTTP statuses. A NotFound is
// reported distinctly so a bad version reference is never mistaken for an
// outage.
func abortWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, version.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, version.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no such version for this document"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
	}
}

func recordWrite(c *gin.Context, meta MetaRecorder, documentID string) {
	if meta == nil {
		return
	}
	if err := meta.RecordWrite(c.Request.Context(), documentID); err != nil {
		// metadata is decoration; a failed touch never fails the save
		logger.Debugf("record write for %s: %v", documentID, err)
	}
}
