package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/middleware"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// NewsHandler handles public news HTTP requests.
type NewsHandler struct {
	newsService service.NewsServiceInterface
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// NewsResponse represents a news article in the API response.
type NewsResponse struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Brief     string       `json:"brief"`
	Content   string       `json:"content"`
	PubDate   string       `json:"pub_date"`
	Views     int          `json:"views"`
	Tags      []domain.Tag `json:"tags"`
	Status    string       `json:"status"`
	ImagePath *string      `json:"image_path,omitempty"`
	AuthorID  string       `json:"author_id"`
}

// NewsPageResponse represents one page of news in the API response.
type NewsPageResponse struct {
	Items   []NewsResponse `json:"items"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// toNewsResponse converts a domain.News to a NewsResponse.
func toNewsResponse(n *domain.News) NewsResponse {
	tags := n.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}
	return NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Brief:     n.Brief,
		Content:   n.Content,
		PubDate:   n.PubDate.Format(TimeFormat),
		Views:     n.Views,
		Tags:      tags,
		Status:    n.Status,
		ImagePath: n.ImagePath,
		AuthorID:  n.AuthorID,
	}
}

func toNewsPageResponse(page *service.NewsPage) NewsPageResponse {
	items := make([]NewsResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toNewsResponse(&page.Items[i]))
	}
	return NewsPageResponse{Items: items, Total: page.Total, Page: page.Page, PerPage: page.PerPage}
}

// pageParams reads page/per_page query parameters.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "0"))
	return page, perPage
}

// listFilter builds the filter shared by the public listing routes.
func listFilter(c *gin.Context, status string) domain.NewsFilter {
	page, perPage := pageParams(c)
	return domain.NewsFilter{
		Status:  status,
		Query:   c.Query("q"),
		SortBy:  c.DefaultQuery("sort_by", "pub_date"),
		Order:   c.DefaultQuery("order", "desc"),
		Page:    page,
		PerPage: perPage,
	}
}

func (h *NewsHandler) list(c *gin.Context, filter domain.NewsFilter) {
	page, err := h.newsService.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list news: %v", middleware.GetRequestID(c), err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNewsPageResponse(page))
}

// ListPublished handles GET /api/v1/news
func (h *NewsHandler) ListPublished(c *gin.Context) {
	h.list(c, listFilter(c, domain.StatusPublished))
}

// ListArchived handles GET /api/v1/news/archived
func (h *NewsHandler) ListArchived(c *gin.Context) {
	h.list(c, listFilter(c, domain.StatusArchived))
}

// Search handles GET /api/v1/news/search over published articles.
func (h *NewsHandler) Search(c *gin.Context) {
	h.list(c, listFilter(c, domain.StatusPublished))
}

// SearchArchived handles GET /api/v1/news/search/archived.
func (h *NewsHandler) SearchArchived(c *gin.Context) {
	h.list(c, listFilter(c, domain.StatusArchived))
}

// ListByTag handles GET /api/v1/news/tag/:slug with an optional status
// query. Only the published and archived subsets are public.
func (h *NewsHandler) ListByTag(c *gin.Context) {
	status := c.DefaultQuery("status", domain.StatusPublished)
	if status != domain.StatusPublished && status != domain.StatusArchived {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be published or archived"})
		return
	}

	filter := listFilter(c, status)
	filter.TagSlug = c.Param("slug")
	h.list(c, filter)
}

// Detail handles GET /api/v1/news/:id and records the view.
func (h *NewsHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	news, err := h.newsService.Get(c.Request.Context(), id, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNewsResponse(news))
}

// Propose handles POST /api/v1/news/propose. Anonymous submissions are
// credited to the configured fallback account.
func (h *NewsHandler) Propose(c *gin.Context) {
	var form validator.ProposalForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorID := ""
	if user := middleware.GetUser(c); user != nil {
		authorID = user.ID
	}

	news, err := h.newsService.Propose(c.Request.Context(), &form, authorID)
	if err != nil {
		log.Printf("[request_id=%s] Failed to propose news: %v", middleware.GetRequestID(c), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toNewsResponse(news))
}
