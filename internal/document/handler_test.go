package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"docstore/internal/document/model"
	"docstore/internal/document/service"
	"docstore/internal/document/store"
	"docstore/middleware"
	"docstore/pkg/logger"
	"docstore/socket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("info")
	os.Exit(m.Run())
}

func newTestHandler() *DocumentHandler {
	hub := socket.NewHub()
	go hub.Run()
	return NewDocumentHandler(service.NewDocumentService(store.NewDocumentStore(), hub))
}

// newRequest builds a request carrying the user id the auth middleware would
// have injected.
func newRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "user1")
	return req.WithContext(ctx)
}

func TestSaveDocument(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.SaveDocument(rec, newRequest(http.MethodPost, "/api/documents/save",
		`{"title":"hello","content":"some words","author":{"id":"a1","name":"Alice"}}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc model.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "hello", *doc.Title)
	assert.Equal(t, "a1", doc.Author.ID)
	assert.NotNil(t, doc.Created)
}

func TestSaveDocumentUpsertsExplicitID(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.SaveDocument(rec, newRequest(http.MethodPost, "/api/documents/save", `{"id":"doc-1","title":"v1"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.SaveDocument(rec, newRequest(http.MethodPost, "/api/documents/save", `{"id":"doc-1","title":"v2"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetDocument(rec, newRequest(http.MethodGet, "/api/documents?id=doc-1", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc model.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "v2", *doc.Title)
}

func TestSaveDocumentRejectsBadInput(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.SaveDocument(rec, newRequest(http.MethodPost, "/api/documents/save", `{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.SaveDocument(rec, newRequest(http.MethodGet, "/api/documents/save", ""))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGetDocument(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.SaveDocument(rec, newRequest(http.MethodPost, "/api/documents/save", `{"id":"doc-1","title":"stored"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetDocument(rec, newRequest(http.MethodGet, "/api/documents?id=doc-1", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetDocument(rec, newRequest(http.MethodGet, "/api/documents?id=missing", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.GetDocument(rec, newRequest(http.MethodGet, "/api/documents", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchDocuments(t *testing.T) {
	h := newTestHandler()

	for _, body := range []string{
		`{"title":"Title One","content":"Important content"}`,
		`{"title":"Title Two","content":"Random content"}`,
		`{"title":"Different Title"}`,
	} {
		rec := httptest.NewRecorder()
		h.SaveDocument(rec, newRequest(http.MethodPost, "/api/documents/save", body))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Empty body means match-all.
	rec := httptest.NewRecorder()
	h.SearchDocuments(rec, newRequest(http.MethodPost, "/api/documents/search", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []model.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.Len(t, docs, 3)

	rec = httptest.NewRecorder()
	h.SearchDocuments(rec, newRequest(http.MethodPost, "/api/documents/search",
		`{"title_prefixes":["Title"],"contains_contents":["important"]}`))
	require.Equal(t, http.StatusOK, rec.Code)

	docs = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Title One", *docs[0].Title)
}

func TestSearchDocumentsNoMatchesReturnsEmptyArray(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.SearchDocuments(rec, newRequest(http.MethodPost, "/api/documents/search",
		`{"author_ids":["nobody"]}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
