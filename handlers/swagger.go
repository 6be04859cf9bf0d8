package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the version API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>docvault — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the version store endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "docvault", "version": "v0.1.0" },
  "paths": {
    "/api/documents/{id}/save": {
      "post": {
        "summary": "Append a new version with the given content",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"content":{"type":"string"},"authorId":{"type":"string"}},"required":["authorId"]}}}},
        "responses": { "201": { "description": "new versionId and versionNumber" }, "400": { "description": "missing required field" } }
      }
    },
    "/api/documents/{id}/rollback": {
      "post": {
        "summary": "Append a new version copying an earlier version's content",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"versionId":{"type":"string"},"authorId":{"type":"string"}},"required":["versionId","authorId"]}}}},
        "responses": { "201": { "description": "new versionId and versionNumber" }, "404": { "description": "no such version for this document" } }
      }
    },
    "/api/documents/{id}/versions": {
      "get": { "summary": "Full version history, newest first", "responses": { "200": { "description": "list of versions (empty when never saved)" } } }
    },
    "/api/documents/{id}/current": {
      "get": { "summary": "Current version (highest versionNumber)", "responses": { "200": { "description": "current version" }, "404": { "description": "document has no versions" } } }
    },
    "/api/documents": {
      "get": { "summary": "List registered document metadata", "responses": { "200": { "description": "metadata list" } } },
      "post": { "summary": "Register document metadata (name, owner)", "responses": { "201": { "description": "stored metadata" } } }
    },
    "/api/documents/{id}/editors": {
      "get": { "summary": "Users with this document open right now", "responses": { "200": { "description": "active editors" } } },
      "put": { "summary": "Heartbeat: mark a user as editing", "responses": { "204": { "description": "recorded" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
