package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/app/services"
	"github.com/snpzone/skillhunt/internal/middleware"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
)

// StudentController handles student registration, sessions and the job board.
type StudentController struct {
	studentService     *services.StudentService
	jobService         *services.JobService
	applicationService *services.ApplicationService
	jwtService         *auth.JWTService
	logger             zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService *services.StudentService,
	jobService *services.JobService,
	applicationService *services.ApplicationService,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService:     studentService,
		jobService:         jobService,
		applicationService: applicationService,
		jwtService:         jwtService,
		logger:             logger,
	}
}

// SendOTP starts a student registration and mails the challenge code.
func (c *StudentController) SendOTP(ctx *gin.Context) {
	var req dto.StudentSendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student send-otp payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "fullName and emailAddress are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.SendOTP(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("OTP sent to email address"),
	})
}

// VerifyOTP validates the challenge code submitted by a student.
func (c *StudentController) VerifyOTP(ctx *gin.Context) {
	var req dto.StudentVerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student verify-otp payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "emailAddress and otp are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.VerifyOTP(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Email verified successfully"),
	})
}

// CompleteRegistration applies the student profile, assigns the public
// student ID and activates the account.
func (c *StudentController) CompleteRegistration(ctx *gin.Context) {
	var req dto.StudentCompleteRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student complete-registration payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "emailAddress is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.studentService.CompleteRegistration(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// SendLoginPassword mails a fresh login password to the student.
func (c *StudentController) SendLoginPassword(ctx *gin.Context) {
	var req dto.StudentSendLoginPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "emailAddress is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.SendLoginPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Login password sent to email address"),
	})
}

// Login authenticates a student and sets the session cookie.
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "emailAddress and password are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, _, err := c.jwtService.GenerateSessionToken(auth.KindStudent, student.ID, student.Email)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to generate student session token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, middleware.StudentCookieName, token, int(c.jwtService.SessionExpiry().Seconds()))

	c.logger.Info().Int64("studentID", student.ID).Msg("Student logged in")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}

// CheckSession reports whether the request carries a valid student session.
func (c *StudentController) CheckSession(ctx *gin.Context) {
	checkSession(ctx, c.jwtService, auth.KindStudent)
}

// Logout clears the student session cookie.
func (c *StudentController) Logout(ctx *gin.Context) {
	clearSessionCookie(ctx, middleware.StudentCookieName)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Logged out successfully"),
	})
}

// ListAllJobs returns the job board with company name and logo.
func (c *StudentController) ListAllJobs(ctx *gin.Context) {
	jobs, err := c.jobService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: jobs})
}

// GetJob returns a posting by its public job ID.
func (c *StudentController) GetJob(ctx *gin.Context) {
	jobID := ctx.Param("jobId")

	job, err := c.jobService.GetByJobID(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: job})
}

// ApplyJob records an application by the logged-in student.
func (c *StudentController) ApplyJob(ctx *gin.Context) {
	studentID, ok := middleware.RecordIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ApplyJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "jobId and companyId are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), studentID, req.JobID, req.CompanyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: app})
}

// GetProfile returns the logged-in student's own record.
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := middleware.RecordIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}
