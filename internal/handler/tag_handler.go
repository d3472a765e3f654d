package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// TagHandler handles tag registry HTTP requests.
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List handles GET /api/v1/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	c.JSON(http.StatusOK, gin.H{"items": tags})
}

// Get handles GET /api/v1/tags/:slug
func (h *TagHandler) Get(c *gin.Context) {
	tag, err := h.tagService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Create handles POST /api/v1/admin/tags
func (h *TagHandler) Create(c *gin.Context) {
	var form validator.TagForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}
