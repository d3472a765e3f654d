package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/middleware"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// CommentHandler handles comment and like HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        string `json:"id"`
	NewsID    string `json:"news_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	LikeCount int    `json:"like_count"`
}

// toCommentResponse converts a domain.Comment to a CommentResponse.
func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		NewsID:    c.NewsID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(TimeFormat),
		LikeCount: c.LikeCount,
	}
}

func toCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	return out
}

// List handles GET /api/v1/news/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	newsID := c.Param("id")
	if _, err := uuid.Parse(newsID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	comments, err := h.commentService.ListByNews(c.Request.Context(), newsID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": toCommentResponses(comments)})
}

// Create handles POST /api/v1/news/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	newsID := c.Param("id")
	if _, err := uuid.Parse(newsID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var form validator.CommentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.GetUser(c)
	comment, err := h.commentService.Add(c.Request.Context(), newsID, user.ID, &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID := c.Param("id")
	if _, err := uuid.Parse(commentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	user := middleware.GetUser(c)
	if err := h.commentService.Delete(c.Request.Context(), commentID, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike handles POST /api/v1/comments/:id/like
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	commentID := c.Param("id")
	if _, err := uuid.Parse(commentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	user := middleware.GetUser(c)
	result, err := h.commentService.ToggleLike(c.Request.Context(), commentID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Activity handles GET /api/v1/me/activity
func (h *CommentHandler) Activity(c *gin.Context) {
	user := middleware.GetUser(c)
	activity, err := h.commentService.Activity(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authored": toCommentResponses(activity.Authored),
		"liked":    toCommentResponses(activity.Liked),
	})
}
