package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/mocks"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
)

func TestAdminHandlerListNews(t *testing.T) {
	mockService := mocks.NewMockNewsServiceInterface(t)
	handler := NewAdminHandler(mockService)

	// The back-office listing may ask for drafts, unlike public routes.
	mockService.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.NewsFilter) bool {
			return f.Status == domain.StatusDraft && f.Query == "bridge"
		})).
		Return(&service.NewsPage{Items: []domain.News{}, Page: 1, PerPage: 10}, nil).
		Once()

	router := gin.New()
	router.GET("/api/v1/admin/news", handler.ListNews)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/news?status=draft&q=bridge", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminHandlerSetStatus(t *testing.T) {
	t.Run("updates status", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		handler := NewAdminHandler(mockService)

		id := uuid.NewString()
		mockService.EXPECT().SetStatus(mock.Anything, id, domain.StatusPublished).Return(nil).Once()

		router := gin.New()
		router.PUT("/api/v1/admin/news/:id/status", handler.SetStatus)

		body := []byte(`{"status":"published"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/news/"+id+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "published")
	})

	t.Run("invalid status name", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		handler := NewAdminHandler(mockService)

		id := uuid.NewString()
		mockService.EXPECT().SetStatus(mock.Anything, id, "deleted").Return(domain.ErrInvalidStatus).Once()

		router := gin.New()
		router.PUT("/api/v1/admin/news/:id/status", handler.SetStatus)

		body := []byte(`{"status":"deleted"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/news/"+id+"/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "draft, published, archived")
	})

	t.Run("malformed id", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		handler := NewAdminHandler(mockService)

		router := gin.New()
		router.PUT("/api/v1/admin/news/:id/status", handler.SetStatus)

		body := []byte(`{"status":"published"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/news/nope/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandlerBulkSetStatus(t *testing.T) {
	t.Run("reports the changed count", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		handler := NewAdminHandler(mockService)

		ids := []string{uuid.NewString(), uuid.NewString()}
		mockService.EXPECT().
			BulkSetStatus(mock.Anything, ids, domain.StatusArchived).
			Return(int64(2), nil).
			Once()

		router := gin.New()
		router.POST("/api/v1/admin/news/status", handler.BulkSetStatus)

		payload, _ := json.Marshal(BulkStatusRequest{IDs: ids, Status: domain.StatusArchived})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/news/status", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, float64(2), resp["changed"])
	})

	t.Run("rejects malformed ids before the service", func(t *testing.T) {
		mockService := mocks.NewMockNewsServiceInterface(t)
		handler := NewAdminHandler(mockService)

		router := gin.New()
		router.POST("/api/v1/admin/news/status", handler.BulkSetStatus)

		payload, _ := json.Marshal(BulkStatusRequest{IDs: []string{uuid.NewString(), "nope"}, Status: domain.StatusArchived})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/news/status", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "valid UUIDs")
	})
}

func TestAdminHandlerPreview(t *testing.T) {
	mockService := mocks.NewMockNewsServiceInterface(t)
	handler := NewAdminHandler(mockService)

	id := uuid.NewString()
	draft := sampleNews(id)
	draft.Status = domain.StatusDraft
	draft.Notified = true
	mockService.EXPECT().Get(mock.Anything, id, false).Return(draft, nil).Once()

	router := gin.New()
	router.GET("/api/v1/admin/news/:id/preview", handler.Preview)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/news/"+id+"/preview", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		News     NewsResponse `json:"news"`
		Notified bool         `json:"notified"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, id, resp.News.ID)
	require.Equal(t, domain.StatusDraft, resp.News.Status)
	require.True(t, resp.Notified)
}

func TestAdminHandlerExportNews(t *testing.T) {
	mockService := mocks.NewMockNewsServiceInterface(t)
	handler := NewAdminHandler(mockService)

	mockService.EXPECT().
		Export(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w io.Writer) (int, error) {
			_, _ = w.Write([]byte(`{"id":"n1"}` + "\n"))
			_, _ = w.Write([]byte(`{"id":"n2"}` + "\n"))
			return 2, nil
		}).
		Once()

	router := gin.New()
	router.GET("/api/v1/admin/export/news", handler.ExportNews)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/export/news", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "news.ndjson")

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"id":"n1"}`, lines[0])
	require.JSONEq(t, `{"id":"n2"}`, lines[1])
}
