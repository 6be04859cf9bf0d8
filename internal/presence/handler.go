package presence

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the active-editor endpoints. Clients PUT periodically
// while a document is open and DELETE on close; GET answers who else is
// editing right now.
func RegisterRoutes(r *gin.Engine, svc *Service) {
	r.PUT("/api/documents/:id/editors", func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Join(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
			abortWith(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/api/documents/:id/editors/:userId", func(c *gin.Context) {
		if err := svc.Leave(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
			abortWith(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.GET("/api/documents/:id/editors", func(c *gin.Context) {
		users, err := svc.Active(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"editors": users})
	})
}

func abortWith(c *gin.Context, err error) {
	if errors.Is(err, ErrBadRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "presence store unavailable"})
}
