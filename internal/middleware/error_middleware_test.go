package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	HandleAPIError(ctx, err)

	var body dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return rec.Code, &body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"invalid code", apperrors.ErrInvalidCode, 400, dto.ErrorCodeInvalidOTP},
		{"expired code", apperrors.ErrCodeExpired, 400, dto.ErrorCodeExpiredOTP},
		{"domain rejected", apperrors.NewDomainRejectedError("Disposable emails are not allowed"), 400, dto.ErrorCodeDomainRejected},
		{"not verified", apperrors.ErrNotVerified, 400, dto.ErrorCodeNotVerified},
		{"validation", apperrors.NewValidationError("resume must be at most 2MB"), 400, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"company not found", apperrors.ErrCompanyNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"job not found", apperrors.ErrJobNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"conflict", apperrors.NewConflictError("You are already registered. Please go to login."), 409, dto.ErrorCodeConflict},
		{"duplicate application", apperrors.ErrAlreadyApplied, 409, dto.ErrorCodeConflict},
		{"delivery failure", apperrors.ErrDeliveryFailure, 502, dto.ErrorCodeDeliveryFailure},
		{"unknown", assertionError{}, 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if body.Error == nil {
				t.Fatal("response should carry an error detail")
			}
			if body.Error.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
		})
	}
}

func TestHandleAPIErrorUsesAttachedMessage(t *testing.T) {
	_, body := handleError(t, apperrors.NewConflictError("Multiple registration attempts detected. Please wait 2 minutes before trying again. Still facing the same problem? Contact us."))
	if body.Error.Message != "Multiple registration attempts detected. Please wait 2 minutes before trying again. Still facing the same problem? Contact us." {
		t.Errorf("message = %q, want the attached conflict message", body.Error.Message)
	}
}

type assertionError struct{}

func (assertionError) Error() string { return "boom" }
