package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/middleware"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
)

// AdminHandler handles the moderation back-office HTTP requests. All
// routes are mounted behind RequireModerator.
type AdminHandler struct {
	newsService service.NewsServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(newsService service.NewsServiceInterface) *AdminHandler {
	return &AdminHandler{newsService: newsService}
}

// ListNews handles GET /api/v1/admin/news. Unlike the public listings
// it can filter by any status, drafts included.
func (h *AdminHandler) ListNews(c *gin.Context) {
	page, perPage := pageParams(c)
	newsPage, err := h.newsService.List(c.Request.Context(), domain.NewsFilter{
		Status:  c.Query("status"),
		Query:   c.Query("q"),
		SortBy:  c.DefaultQuery("sort_by", "pub_date"),
		Order:   c.DefaultQuery("order", "desc"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNewsPageResponse(newsPage))
}

// SetStatusRequest represents a single status change.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PUT /api/v1/admin/news/:id/status
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.newsService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// BulkStatusRequest represents a bulk "mark as" action over selected
// articles.
type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required"`
	Status string   `json:"status" binding:"required"`
}

// BulkSetStatus handles POST /api/v1/admin/news/status
func (h *AdminHandler) BulkSetStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, id := range req.IDs {
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ids must be valid UUIDs"})
			return
		}
	}

	changed, err := h.newsService.BulkSetStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status, "changed": changed})
}

// Preview handles GET /api/v1/admin/news/:id/preview. It resolves any
// article regardless of status and does not record a view.
func (h *AdminHandler) Preview(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	news, err := h.newsService.Get(c.Request.Context(), id, false)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := toNewsResponse(news)
	c.JSON(http.StatusOK, gin.H{"news": resp, "notified": news.Notified})
}

// ExportNews handles GET /api/v1/admin/export/news, streaming every
// article as NDJSON.
func (h *AdminHandler) ExportNews(c *gin.Context) {
	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Content-Disposition", `attachment; filename="news.ndjson"`)

	count, err := h.newsService.Export(c.Request.Context(), c.Writer)
	if err != nil {
		// Headers may already be on the wire; log and cut the stream.
		log.Printf("[request_id=%s] News export failed after %d records: %v",
			middleware.GetRequestID(c), count, err)
		c.Abort()
		return
	}
}
