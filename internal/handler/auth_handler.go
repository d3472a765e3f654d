package handler

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/middleware"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// AuthHandler handles account, session and profile HTTP requests.
type AuthHandler struct {
	authService service.AuthServiceInterface
	newsService service.NewsServiceInterface
	sessions    *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthServiceInterface, newsService service.NewsServiceInterface, sessions *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		newsService: newsService,
		sessions:    sessions,
	}
}

// UserResponse represents an account in the API response.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// toUserResponse converts a domain.User to a UserResponse.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(TimeFormat),
	}
}

// Register handles POST /api/v1/auth/register and logs the new
// account in.
func (h *AuthHandler) Register(c *gin.Context) {
	var form validator.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &form)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessions.RenewToken(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	h.sessions.Put(c.Request.Context(), middleware.SessionUserKey, user.ID)

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// A fresh token on privilege change prevents session fixation.
	if err := h.sessions.RenewToken(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	h.sessions.Put(c.Request.Context(), middleware.SessionUserKey, user.ID)

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// ProfileRequest represents the profile edit form.
type ProfileRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	MiddleName  string  `json:"middle_name"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	PhotoPath   *string `json:"photo_path"`
}

// GetProfile handles GET /api/v1/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.GetUser(c)
	profile, err := h.authService.GetOrCreateProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
			return
		}
		dateOfBirth = &parsed
	}

	user := middleware.GetUser(c)
	if _, err := h.authService.GetOrCreateProfile(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	profile := &domain.Profile{
		UserID:      user.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		MiddleName:  req.MiddleName,
		DateOfBirth: dateOfBirth,
		PhotoPath:   req.PhotoPath,
	}
	if err := h.authService.UpdateProfile(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// PasswordResetRequest represents the reset request form.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset handles POST /api/v1/auth/password-reset.
// The response does not reveal whether the email is registered.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset link sent if the email is registered"})
}

// PasswordResetConfirmRequest represents the reset confirmation form.
type PasswordResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ConfirmPasswordReset handles POST /api/v1/auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ConfirmPasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

// AuthorNews handles GET /api/v1/users/:id/news, the per-author
// listing of published articles.
func (h *AuthHandler) AuthorNews(c *gin.Context) {
	authorID := c.Param("id")
	if _, err := uuid.Parse(authorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	page, perPage := pageParams(c)
	newsPage, err := h.newsService.List(c.Request.Context(), domain.NewsFilter{
		Status:   domain.StatusPublished,
		AuthorID: authorID,
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNewsPageResponse(newsPage))
}
