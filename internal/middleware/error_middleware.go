package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
)

// message picks the client-safe message attached to the error, or the
// fallback when the error carries none.
func message(err error, fallback string) string {
	if msg := apperrors.UserMessage(err); msg != "" {
		return msg
	}
	return fallback
}

// HandleAPIError maps application errors to HTTP responses.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCode):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidOTP, message(err, "Invalid OTP or Email")),
		})
	case errors.Is(err, apperrors.ErrCodeExpired):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredOTP, message(err, "OTP has expired")),
		})
	case errors.Is(err, apperrors.ErrDomainRejected):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDomainRejected, message(err, "Email domain rejected")),
		})
	case errors.Is(err, apperrors.ErrNotVerified):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeNotVerified, message(err, "Email is not verified")),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message(err, "Validation failed")),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message(err, "Invalid email or password")),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Session expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid session"),
		})
	case errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message(err, "Resource not found")),
		})
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConflict, "You have already applied to this job"),
		})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrJobIDUnavailable):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConflict, message(err, "Request conflicts with existing data")),
		})
	case errors.Is(err, apperrors.ErrDeliveryFailure):
		c.JSON(502, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDeliveryFailure, "Could not deliver the email. Please try again."),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
