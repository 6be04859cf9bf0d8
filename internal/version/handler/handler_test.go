package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/SehajBehl/docvault/internal/version"
	"github.com/SehajBehl/docvault/internal/version/service"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	RegisterVersionRoutes(g, service.NewMemoryStore(), nil)
	return g
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func getJSON(g *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	g.ServeHTTP(w, req)
	return w
}

func TestSaveRollbackHistoryFlow(t *testing.T) {
	g := newTestRouter()

	// v1
	w := postJSON(g, "/api/documents/doc1/save", `{"content":"hello","authorId":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		VersionID     string `json:"versionId"`
		VersionNumber int    `json:"versionNumber"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, 1, created.VersionNumber)
	v1ID := created.VersionID

	// v2
	w = postJSON(g, "/api/documents/doc1/save", `{"content":"hello world","authorId":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// rollback to v1 as bob
	w = postJSON(g, "/api/documents/doc1/rollback", fmt.Sprintf(`{"versionId":%q,"authorId":"bob"}`, v1ID))
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, 3, created.VersionNumber)

	// history newest first
	w = getJSON(g, "/api/documents/doc1/versions")
	require.Equal(t, http.StatusOK, w.Code)
	var hist []version.Version
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hist))
	require.Len(t, hist, 3)
	require.Equal(t, "hello", hist[0].Content)
	require.Equal(t, "bob", hist[0].AuthorID)
	require.Equal(t, "hello world", hist[1].Content)
	require.Equal(t, "hello", hist[2].Content)

	// current reflects the rollback
	w = getJSON(g, "/api/documents/doc1/current")
	require.Equal(t, http.StatusOK, w.Code)
	var cur version.Version
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cur))
	require.Equal(t, 3, cur.Number)
	require.Equal(t, "hello", cur.Content)
}

func TestSaveMissingAuthor(t *testing.T) {
	g := newTestRouter()
	w := postJSON(g, "/api/documents/doc1/save", `{"content":"hello"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveEmptyContentAllowed(t *testing.T) {
	g := newTestRouter()
	w := postJSON(g, "/api/documents/doc1/save", `{"content":"","authorId":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestRollbackUnknownVersion(t *testing.T) {
	g := newTestRouter()
	w := postJSON(g, "/api/documents/doc1/save", `{"content":"hello","authorId":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(g, "/api/documents/doc1/rollback", `{"versionId":"not-a-version","authorId":"alice"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "no such version for this document")
}

func TestHistoryUnknownDocumentIsEmptyList(t *testing.T) {
	g := newTestRouter()
	w := getJSON(g, "/api/documents/never-saved/versions")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestCurrentUnknownDocument(t *testing.T) {
	g := newTestRouter()
	w := getJSON(g, "/api/documents/never-saved/current")
	require.Equal(t, http.StatusNotFound, w.Code)
}
