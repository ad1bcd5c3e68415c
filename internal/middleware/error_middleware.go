package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors onto the JSON error
// envelope. Query and database failures are logged but never fatal; the
// client always receives a well-formed response.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		detail := dto.NewErrorDetail(code, message)
		if custom != nil && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidStudentID):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidIDNumber, "Student ID number must match NNNN-NNNN")
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrCollegeNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "College not found")
	case errors.Is(err, apperrors.ErrProgramNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "Program not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrCollegeAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeAlreadyExists, "College with this code already exists")
	case errors.Is(err, apperrors.ErrProgramAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeAlreadyExists, "Program with this code already exists")
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeAlreadyExists, "Student ID number already exists")
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeAlreadyExists, "Username already exists")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeAlreadyExists, "Resource already exists")

	case errors.Is(err, apperrors.ErrDatabase):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Database error")
		respond(http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "A database error occurred")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}
