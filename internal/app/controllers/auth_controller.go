package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/services"
	"github.com/jdelacruz/ssis-backend/internal/middleware"
	"github.com/jdelacruz/ssis-backend/internal/pkg/auth"
)

// AuthController handles signup, login and session endpoints
type AuthController struct {
	authService *services.AuthService
	jwtService  *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
	}
}

func userToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

// setAccessCookie issues the token as an HttpOnly cookie scoped to the whole
// site. Secure is left to the proxy in front of the app.
func (c *AuthController) setAccessCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.AccessTokenCookie, token, maxAge, "/", "", false, true)
}

// Signup registers a new account and starts a session
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid signup data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.authService.Signup(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setAccessCookie(ctx, result.Token, result.ExpiresIn)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Account created", userToResponse(result.User)))
}

// Login verifies credentials and starts a session
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setAccessCookie(ctx, result.Token, result.ExpiresIn)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged in", userToResponse(result.User)))
}

// Logout clears the session cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setAccessCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out", nil))
}

// Me returns the account behind the current token
func (c *AuthController) Me(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)

	user, err := c.authService.GetCurrentUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", userToResponse(user)))
}
